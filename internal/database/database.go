package database

import (
	"database/sql"
	"fmt"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DefaultPath returns the path to the single shared database.
func DefaultPath() string {
	return filepath.Join("data", "anp-sightings.db")
}

// Open opens the sqlite database with the usual pragmas applied.
func Open(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")
	return db, nil
}

// EnsureSchema ensures the observations table exists. The unique index on
// (registration, timestamp) backs the idempotent-insert invariant: a
// repeated sighting of the same vessel at the same instant is ignored,
// never duplicated.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS observations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			registration TEXT NOT NULL,
			vessel_name TEXT,
			captain_name TEXT,
			timestamp TEXT NOT NULL,
			latitude REAL NOT NULL,
			longitude REAL NOT NULL,
			vessel_type_id TEXT,
			status_category_id TEXT,
			notes TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE UNIQUE INDEX IF NOT EXISTS idx_observations_registration_ts
			ON observations(registration, timestamp);
	`)
	if err != nil {
		return fmt.Errorf("creating observations table: %w", err)
	}
	return nil
}
