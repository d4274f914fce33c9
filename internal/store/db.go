// store/db.go - Postgres connection, migrations, degraded mode
package store

import (
	"errors"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Compile-time check that DB implements Store
var _ Store = (*DB)(nil)

// ErrConflict wraps unique-constraint violations so callers can answer 409
// instead of 500.
var ErrConflict = errors.New("conflict")

// DB is the Postgres-backed project store. A DB without a live connection
// is valid: every operation degrades to a logged empty result, so a caller
// can render a "service unavailable" state instead of crashing.
type DB struct {
	db *sqlx.DB
}

// New connects to Postgres and applies pending migrations. A missing or
// unreachable DATABASE_URL is a recoverable condition and yields a
// disconnected store; a migration failure against a reachable database is
// not and returns an error.
func New(databaseURL, migrationsPath string) (*DB, error) {
	if databaseURL == "" {
		log.Printf("[store] DATABASE_URL not configured, store disconnected")
		return &DB{}, nil
	}

	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		log.Printf("[store] cannot reach database, store disconnected: %v", err)
		return &DB{}, nil
	}

	if migrationsPath != "" {
		if err := runMigrations(databaseURL, migrationsPath); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	return &DB{db: db}, nil
}

func runMigrations(databaseURL, path string) error {
	m, err := migrate.New("file://"+path, databaseURL)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// Close releases the connection pool. Safe on a disconnected store.
func (s *DB) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// available reports whether the store has a live connection and logs the
// skipped operation when it does not.
func (s *DB) available(op string) bool {
	if s.db == nil {
		log.Printf("[store] unavailable, %s returned no result", op)
		return false
	}
	return true
}
