// Package store provides the SQLite-backed repositories for the job board.
// Referential integrity between offers and applications is enforced by the
// database itself: the applications table declares a foreign key with
// ON DELETE CASCADE, so removing an offer removes its applications and an
// insert against a missing offer is rejected by the engine.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS job_offers (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	title         TEXT NOT NULL,
	description   TEXT NOT NULL,
	location      TEXT NOT NULL,
	salary        REAL NOT NULL,
	contract_type TEXT NOT NULL,
	date_posted   TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS job_applications (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	candidate_name  TEXT NOT NULL,
	candidate_email TEXT NOT NULL,
	job_offer_id    INTEGER NOT NULL,
	date_applied    TIMESTAMP NOT NULL,
	FOREIGN KEY(job_offer_id) REFERENCES job_offers(id) ON DELETE CASCADE
);
`

// Open opens a SQLite database at the given path and enables foreign keys.
// Cascade deletion does not work without the pragma, and pragmas are
// per-connection: they ride in the DSN so the driver applies them to every
// connection the pool opens, not just the first one.
func Open(path string, logger *slog.Logger) (*sql.DB, error) {
	dsn := path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if logger != nil {
		logger.Info("database opened",
			slog.String("path", path),
			slog.Bool("foreign_keys", true),
		)
	}
	return db, nil
}

// Migrate creates the schema if it does not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// isForeignKeyViolation reports whether err is a SQLite foreign-key
// rejection. The driver returns its own error type, so the message is the
// only stable signal.
func isForeignKeyViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
