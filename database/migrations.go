// Package database provides database migration tooling.
package database

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // Registers the pgx5:// scheme
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

//go:embed prime.sql.tmpl
var primeTemplate []byte

// Migrator is the interface for the migration tooling.
type Migrator interface {
	Up() error
	Down() error
	Steps(int) error
	Version() (uint, bool, error)
	Close() (error, error)
}

var _ Migrator = (*migrate.Migrate)(nil)

// migrationsFromSource returns a migration source driver from the embedded migrations.
func migrationsFromSource() (source.Driver, error) {
	return iofs.New(migrationsFS, "migrations")
}

// pgx5ConnString rewrites a postgres:// URL to the scheme used by the pgx/v5 migrate driver.
func pgx5ConnString(connString string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(connString, prefix) {
			return "pgx5://" + strings.TrimPrefix(connString, prefix)
		}
	}
	return connString
}

// GetMigrate returns a new migration instance from the given connection string.
func GetMigrate(connString string) (*migrate.Migrate, error) {
	d, err := migrationsFromSource()
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded migrations: %w", err)
	}
	return migrate.NewWithSourceInstance("iofs", d, pgx5ConnString(connString))
}

// MigrateUp applies every pending migration. It is a no-op when the schema is current.
func MigrateUp(connString string) error {
	m, err := GetMigrate(connString)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// GetVersion returns the current schema version and dirty flag.
func GetVersion(connString string) (uint, bool, error) {
	m, err := GetMigrate(connString)
	if err != nil {
		return 0, false, err
	}
	defer m.Close()

	return m.Version()
}

// GetPrimeTemplate returns the SQL template used by the prime-db command.
func GetPrimeTemplate() ([]byte, error) {
	if len(primeTemplate) == 0 {
		return nil, errors.New("prime template is empty")
	}
	return primeTemplate, nil
}
