// Package migrate runs database migrations from embedded SQL files using golang-migrate.
package migrate

import (
	"errors"
	"fmt"

	"tenant-core/internal/db"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// ErrNoChange is returned when Up/Down has nothing to do (already at target version).
var ErrNoChange = migrate.ErrNoChange

// Run applies the migrations of dataset in the given direction using the provided DSN.
// direction must be "up" or "down". Returns nil on success, including when already at the
// target version; other errors for DB or I/O failures.
func Run(dsn string, dataset db.Dataset, direction string) error {
	if dsn == "" {
		return fmt.Errorf("%s dataset DSN is not set; create a .env from .env.example or set %s", dataset, envKey(dataset))
	}
	if dataset != db.DatasetUser && dataset != db.DatasetFeature {
		return fmt.Errorf("dataset must be user or feature, got %q", dataset)
	}
	if direction != "up" && direction != "down" {
		return fmt.Errorf("direction must be up or down, got %q", direction)
	}

	sourceDriver, err := iofs.New(db.MigrationFS, db.MigrationDir(dataset))
	if err != nil {
		return fmt.Errorf("migrate source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", sourceDriver, dsn)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	switch direction {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func envKey(d db.Dataset) string {
	if d == db.DatasetFeature {
		return "FEATURE_DATABASE_URL"
	}
	return "USER_DATABASE_URL"
}
