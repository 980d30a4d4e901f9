// Package sqlite stores crawl runs, records and their sections in SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB is a single-connection SQLite handle. Writes are serialised by
// SQLite anyway, so one connection avoids "database is locked" churn.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB returns an unopened DB for path; ":memory:" is accepted.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// pragmas run in order on every Open. Foreign keys drive the run cascade.
func (db *DB) pragmas() []string {
	p := []string{"PRAGMA busy_timeout = 5000"}
	if db.path != ":memory:" {
		p = append(p, "PRAGMA journal_mode = WAL")
	}
	return append(p, "PRAGMA foreign_keys = ON")
}

// Open connects, applies pragmas and creates missing tables.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("open %s: %w", db.path, err)
	}
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("connect %s: %w", db.path, err)
	}
	for _, pragma := range db.pragmas() {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return fmt.Errorf("%s: %w", pragma, err)
		}
	}
	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return fmt.Errorf("create schema: %w", err)
	}

	db.db = conn
	return nil
}

// Close closes the connection if Open succeeded.
func (db *DB) Close() error {
	if db.db == nil {
		return nil
	}
	return db.db.Close()
}

func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// BeginTx starts a transaction with default options.
func (db *DB) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return db.db.BeginTx(ctx, nil)
}

const schema = `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		seed_url TEXT NOT NULL,
		mode TEXT NOT NULL DEFAULT '',
		started_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS records (
		id TEXT PRIMARY KEY,
		run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		position INTEGER NOT NULL DEFAULT 0,
		url TEXT NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		authors TEXT NOT NULL DEFAULT '',
		publication_date TEXT NOT NULL DEFAULT '',
		full_text_url TEXT NOT NULL DEFAULT '',
		available INTEGER NOT NULL DEFAULT 0,
		content_hash TEXT NOT NULL DEFAULT '',
		tokens INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS sections (
		record_id TEXT NOT NULL REFERENCES records(id) ON DELETE CASCADE,
		ordinal INTEGER NOT NULL,
		name TEXT NOT NULL,
		found INTEGER NOT NULL DEFAULT 0,
		text TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (record_id, name)
	);

	CREATE INDEX IF NOT EXISTS idx_records_run_id ON records(run_id);
	CREATE INDEX IF NOT EXISTS idx_records_url ON records(url);
`
