package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateTrackingID_Format(t *testing.T) {
	for i := 0; i < 100; i++ {
		assert.Regexp(t, `^CMP-\d{6}$`, GenerateTrackingID())
	}
}
