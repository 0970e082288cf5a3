package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

func init() {
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Store holds the database handle and provides access to repositories.
type Store struct {
	db  *sqlx.DB
	seq *sequenceCounter
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite allows a single writer; one connection also keeps
	// in-memory databases from splitting per connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, seq: seq}, nil
}

// DB returns the underlying *sqlx.DB for raw queries.
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// EventRepo returns an EventRepo backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{db: s.db, seq: s.seq}
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sqlx.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS quiz_sessions (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence    INTEGER NOT NULL UNIQUE,
		session_id  TEXT    NOT NULL UNIQUE,
		section     TEXT    NOT NULL,
		difficulty  TEXT    NOT NULL,
		score       INTEGER NOT NULL,
		correct     INTEGER NOT NULL,
		answered    INTEGER NOT NULL,
		total       INTEGER NOT NULL,
		best_streak INTEGER NOT NULL,
		timeouts    INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		started_at  INTEGER NOT NULL,
		finished_at INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_quiz_sessions_section ON quiz_sessions (section, score)`,
	`CREATE TABLE IF NOT EXISTS quiz_answers (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence       INTEGER NOT NULL UNIQUE,
		session_id     TEXT    NOT NULL,
		section        TEXT    NOT NULL,
		question_index INTEGER NOT NULL,
		prompt         TEXT    NOT NULL,
		selected       TEXT    NOT NULL,
		correct_answer TEXT    NOT NULL,
		is_correct     BOOLEAN NOT NULL,
		time_taken_ms  INTEGER NOT NULL,
		answered_at    INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_quiz_answers_session ON quiz_answers (session_id, question_index)`,
}

// migrate creates the tables if they don't exist.
func migrate(db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. BRAINQUIZ_DB environment variable
// 2. $XDG_DATA_HOME/brainquiz/brainquiz.db
// 3. ~/.local/share/brainquiz/brainquiz.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("BRAINQUIZ_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "brainquiz", "brainquiz.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
