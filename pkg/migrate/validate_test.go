package migrate_test

import (
	"testing"

	"github.com/felipeimp22/menuflow-backend/pkg/migrate"
)

func TestValidateDirAcceptsCheckedInMigrations(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("validate migrations dir: %v", err)
	}
}
