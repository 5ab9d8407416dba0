// Package history records palette command invocations in sqlite. The store
// only informs cursor preselection and a recent-commands readout; matching
// and ordering in the palette never depend on it.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS invocations (
	seq        INTEGER PRIMARY KEY AUTOINCREMENT,
	id         TEXT NOT NULL UNIQUE,
	title      TEXT NOT NULL,
	invoked_at TIMESTAMP NOT NULL
);
`

// Invocation is one executed palette command.
type Invocation struct {
	ID        string
	Title     string
	InvokedAt time.Time
}

// Store wraps the sqlite handle.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database with sensible
// sqlite defaults and ensures the schema exists.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir history dir: %w", err)
	}
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1) // sqlite
	db.SetConnMaxLifetime(0)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record logs one invocation by command title.
func (s *Store) Record(ctx context.Context, title string) error {
	if s == nil || s.db == nil {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO invocations (id, title, invoked_at) VALUES (?, ?, ?)`,
		uuid.NewString(), title, now())
	return err
}

// Recent returns up to n invocations, newest first.
func (s *Store) Recent(ctx context.Context, n int) ([]Invocation, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, invoked_at FROM invocations ORDER BY seq DESC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Invocation
	for rows.Next() {
		var inv Invocation
		if err := rows.Scan(&inv.ID, &inv.Title, &inv.InvokedAt); err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

// LastTitle returns the most recently invoked command title, or "" if the
// history is empty.
func (s *Store) LastTitle(ctx context.Context) (string, error) {
	if s == nil || s.db == nil {
		return "", nil
	}
	var title string
	err := s.db.QueryRowContext(ctx,
		`SELECT title FROM invocations ORDER BY seq DESC LIMIT 1`).Scan(&title)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return title, nil
}

// Prune keeps only the newest keep invocations.
func (s *Store) Prune(ctx context.Context, keep int) error {
	if s == nil || s.db == nil {
		return nil
	}
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM invocations WHERE seq NOT IN (
			SELECT seq FROM invocations ORDER BY seq DESC LIMIT ?
		)`, keep)
	return err
}

// now returns UTC time truncated to seconds (consistent with SQLite default).
func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
