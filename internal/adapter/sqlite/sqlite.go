// Package sqlite implements the persistence ports on a single local
// database file, which is also the unit the backup coordinator snapshots.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"weightbot/internal/domain"
)

// DB wraps a *sql.DB and implements the domain repository interfaces.
type DB struct {
	sql  *sql.DB
	path string
}

var _ domain.MeasurementRepository = (*DB)(nil)
var _ domain.PreferenceRepository = (*DB)(nil)

// Open opens the database file, creating its directory if needed, pings,
// and runs migrations.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	s, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// sqlite allows a single writer; serialise access through one conn.
	s.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	d := &DB{sql: s, path: path}
	if err := d.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying database.
func (d *DB) Close() error {
	return d.sql.Close()
}

// Path returns the on-disk location of the store file. The backup
// coordinator snapshots this file, not the API.
func (d *DB) Path() string {
	return d.path
}

func (d *DB) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS weights (
			user_id INTEGER NOT NULL,
			date TEXT NOT NULL,
			weight TEXT NOT NULL,
			PRIMARY KEY (user_id, date)
		);`,
		`CREATE TABLE IF NOT EXISTS user_preferences (
			user_id INTEGER PRIMARY KEY,
			language TEXT NOT NULL DEFAULT 'es',
			reminders_enabled INTEGER NOT NULL DEFAULT 1
		);`,
	}
	for _, stmt := range stmts {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
