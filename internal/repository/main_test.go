package repository_test

import (
	"os"
	"testing"

	"github.com/citizenconnect/complaints-api/internal/repository"
	"github.com/citizenconnect/complaints-api/internal/testutils"
)

var repos *repository.Repos

func TestMain(m *testing.M) {
	db, cleanup := testutils.SetupPostgres()
	repos = repository.NewRepositories(db)

	code := m.Run()
	cleanup()
	os.Exit(code)
}
