// Package history keeps a local log of session lifecycle events.
// It is purely informational: failures here never affect multiplexer state.
package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS events (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    session    TEXT NOT NULL,
    backend    TEXT NOT NULL,
    action     TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

// Actions recorded per event.
const (
	ActionCreate = "create"
	ActionAttach = "attach"
	ActionKill   = "kill"
)

// Store wraps a SQLite database of session events.
type Store struct {
	db *sql.DB
}

// Open creates or opens the history database at $XDG_STATE_HOME/hs/history.db.
func Open() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		stateHome = filepath.Join(home, ".local", "state")
	}
	dir := filepath.Join(stateHome, "hs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, "history.db"))
	if err != nil {
		return nil, err
	}

	// WAL mode for safe concurrent access
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record logs one lifecycle event.
func (s *Store) Record(session, backend, action string) error {
	_, err := s.db.Exec(
		"INSERT INTO events (session, backend, action) VALUES (?, ?, ?)",
		session, backend, action)
	return err
}

// Event is one recorded lifecycle action.
type Event struct {
	Session string
	Backend string
	Action  string
	At      time.Time
}

// Recent returns the most recent events, newest first.
func (s *Store) Recent(limit int) ([]Event, error) {
	rows, err := s.db.Query(`
		SELECT session, backend, action, created_at
		FROM events
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Event
	for rows.Next() {
		var ev Event
		var at string
		if err := rows.Scan(&ev.Session, &ev.Backend, &ev.Action, &at); err != nil {
			return nil, err
		}
		ev.At, _ = time.Parse("2006-01-02 15:04:05", at)
		result = append(result, ev)
	}
	return result, rows.Err()
}
