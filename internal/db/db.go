package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Driver names accepted by Connect.
const (
	Postgres = "postgres"
	SQLite   = "sqlite3"
)

// Connect opens and pings a database. SQLite gets a single connection since it
// allows one writer at a time.
func Connect(driver, connString string) (*sql.DB, error) {
	db, err := sql.Open(driver, connString)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	if driver == SQLite {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		if _, err := db.Exec(`PRAGMA busy_timeout = 5000`); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlite pragma: %w", err)
		}
	}

	return db, nil
}

// Migrate creates the tables used by the SQL backends. Both statements are
// valid for PostgreSQL and SQLite.
func Migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS app_state (
			id         INTEGER PRIMARY KEY,
			document   TEXT NOT NULL,
			version    BIGINT NOT NULL DEFAULT 0,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS analytics_events (
			id               TEXT PRIMARY KEY,
			event_name       TEXT NOT NULL,
			event_time       TIMESTAMP NOT NULL,
			session_id       TEXT,
			platform         TEXT NOT NULL,
			app_version      TEXT NOT NULL,
			device_locale    TEXT,
			source_event_key TEXT UNIQUE,
			properties       TEXT NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
