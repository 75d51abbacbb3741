package application

import (
	"fmt"
	"math/rand/v2"
)

const trackingPrefix = "CMP"

// trackingIDAttempts bounds the uniqueness retry loop during submission.
const trackingIDAttempts = 5

// GenerateTrackingID draws a citizen-facing id with a six-digit random
// suffix. The format is published on paper receipts, so collisions are
// handled by retrying against the store (and backstopped by a unique index)
// rather than by widening the id.
var GenerateTrackingID = func() string {
	return fmt.Sprintf("%s-%06d", trackingPrefix, 100000+rand.IntN(900000))
}
