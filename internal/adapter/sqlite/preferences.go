// Package sqlite stores viewer preferences in a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS preferences (
	viewer_id  TEXT PRIMARY KEY,
	language   TEXT NOT NULL,
	updated_at TEXT NOT NULL
)`

// Store persists each viewer's language.
// It implements journey.Preferences.
type Store struct {
	db    *sql.DB
	clock clockwork.Clock
}

// Open connects to the database at path and creates the schema if needed.
// ":memory:" opens a private in-memory database.
func Open(ctx context.Context, path string, clock clockwork.Clock) (*Store, error) {
	dsn := path
	if path != ":memory:" {
		dsn = path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if path == ":memory:" {
		// each connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db, clock: clock}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Language returns the stored language for a viewer, or "" when none is
// stored.
func (s *Store) Language(ctx context.Context, viewerID string) (string, error) {
	var lang string
	err := s.db.QueryRowContext(ctx,
		`SELECT language FROM preferences WHERE viewer_id = ?`, viewerID,
	).Scan(&lang)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("query language: %w", err)
	}
	return lang, nil
}

// SetLanguage stores a viewer's language, replacing any earlier choice.
func (s *Store) SetLanguage(ctx context.Context, viewerID, lang string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (viewer_id, language, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(viewer_id) DO UPDATE SET
			language = excluded.language,
			updated_at = excluded.updated_at`,
		viewerID, lang, s.clock.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("store language: %w", err)
	}
	return nil
}
