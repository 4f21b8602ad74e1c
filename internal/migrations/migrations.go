package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed *.sql
var Files embed.FS

// Run brings the sales and orders schema up to date.
// With autoMigrate false it only reports the current version.
func Run(db *sql.DB, autoMigrate bool) error {
	m, err := newMigrator(db)
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	if dirty {
		if err := resetDirty(m, version); err != nil {
			return err
		}
	}

	if !autoMigrate {
		slog.Info("[Migrations] Auto-migrate disabled", "version", version, "dirty", dirty)
		return nil
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			slog.Info("[Migrations] Schema up to date", "version", version)
			return nil
		}
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	newVersion, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to read schema version after migrating: %w", err)
	}
	slog.Info("[Migrations] Applied", "from_version", version, "to_version", newVersion)
	return nil
}

// forcer is the part of *migrate.Migrate dirty-state recovery needs.
type forcer interface {
	Force(version int) error
}

// resetDirty rolls the recorded version back one step after an interrupted
// migration. Every migration is idempotent (IF NOT EXISTS), so Up can
// re-run the interrupted one. A dirty first migration resets to no version.
func resetDirty(m forcer, version uint) error {
	slog.Warn("[Migrations] Schema is dirty, a previous migration was interrupted",
		"version", version)

	target := dirtyTarget(version)
	if err := m.Force(target); err != nil {
		return fmt.Errorf("failed to reset dirty schema at version %d: %w", version, err)
	}
	slog.Info("[Migrations] Dirty state cleared", "version", version, "reset_to", target)
	return nil
}

func dirtyTarget(version uint) int {
	if version <= 1 {
		return database.NilVersion
	}
	return int(version) - 1
}

func newMigrator(db *sql.DB) (*migrate.Migrate, error) {
	source, err := iofs.New(Files, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrator: %w", err)
	}
	return m, nil
}
