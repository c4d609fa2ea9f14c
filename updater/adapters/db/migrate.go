package db

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate brings the schema up to date. The migrator is not closed since that
// would close the shared connection pool as well.
func (db *DB) Migrate() error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open migrations: %w", err)
	}
	defer func() {
		if err := src.Close(); err != nil {
			db.log.Warn("failed to close migration source", "error", err)
		}
	}()

	var driver database.Driver
	switch db.driver {
	case driverPostgres:
		driver, err = pgxmigrate.WithInstance(db.conn.DB, &pgxmigrate.Config{})
	default:
		driver, err = sqlitemigrate.WithInstance(db.conn.DB, &sqlitemigrate.Config{})
	}
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, db.driver, driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	version, dirty, err := m.Version()
	if err == nil {
		db.log.Debug("database schema is up to date", "version", version, "dirty", dirty)
	}
	return nil
}
