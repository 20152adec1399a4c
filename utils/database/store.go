package database

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// ErrStoreUnavailable is returned when a statement is issued before Open or
// after Close. Callers surface it as a generic failure; the detail stays in
// the operational log.
var ErrStoreUnavailable = errors.New("database: store is not connected")

const schema = `
CREATE TABLE IF NOT EXISTS warnings (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	guild_id TEXT NOT NULL,
	user_id TEXT NOT NULL,
	moderator_id TEXT NOT NULL,
	reason TEXT,
	timestamp TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS guild_settings (
	guild_id TEXT PRIMARY KEY,
	log_channel_id TEXT,
	suggestions_config TEXT,
	feedback_channel_id TEXT,
	birthday_channel_id TEXT,
	ticket_config TEXT,
	automod_config TEXT
);

CREATE TABLE IF NOT EXISTS temp_bans (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	guild_id TEXT NOT NULL,
	user_id TEXT NOT NULL,
	unban_timestamp INTEGER NOT NULL,
	UNIQUE (guild_id, user_id)
);

CREATE TABLE IF NOT EXISTS marriages (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	guild_id TEXT NOT NULL,
	user1_id TEXT NOT NULL,
	user2_id TEXT NOT NULL,
	marriage_timestamp TEXT NOT NULL,
	UNIQUE (guild_id, user1_id, user2_id)
);

CREATE TABLE IF NOT EXISTS prison (
	guild_id TEXT NOT NULL,
	user_id TEXT NOT NULL,
	prison_channel_id TEXT NOT NULL,
	moderator_id TEXT NOT NULL,
	reason TEXT,
	timestamp TEXT NOT NULL,
	saved_roles TEXT,
	PRIMARY KEY (guild_id, user_id)
);

CREATE TABLE IF NOT EXISTS user_data (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	guild_id TEXT NOT NULL,
	user_id TEXT NOT NULL,
	xp INTEGER DEFAULT 0,
	level INTEGER DEFAULT 0,
	money INTEGER DEFAULT 0,
	UNIQUE (guild_id, user_id)
);`

// Store wraps the shared sqlite connection. Every mutating operation is a
// single autocommitted statement; no operation spans a transaction, so
// concurrent callers may interleave (the engine serializes individual
// statements).
type Store struct {
	db *sqlx.DB
}

// Open connects to the sqlite file at path, creating parent directories as
// needed, and initializes the schema in one transaction.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// initSchema creates all tables inside one transaction so a fresh database
// ends up with either the full schema or none of it.
func (s *Store) initSchema() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin schema transaction: %w", err)
	}
	if _, err := tx.Exec(schema); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return tx.Commit()
}

// Close releases the connection. Further calls return ErrStoreUnavailable.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Execute runs a single mutating statement and commits it.
func (s *Store) Execute(query string, args ...any) (sql.Result, error) {
	if s.db == nil {
		return nil, ErrStoreUnavailable
	}
	return s.db.Exec(query, args...)
}

// FetchOne runs a read statement and scans the first row into dest,
// reporting whether a row was found.
func (s *Store) FetchOne(dest any, query string, args ...any) (bool, error) {
	if s.db == nil {
		return false, ErrStoreUnavailable
	}
	err := s.db.Get(dest, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// FetchAll runs a read statement and scans every row into dest, which must
// be a pointer to a slice.
func (s *Store) FetchAll(dest any, query string, args ...any) error {
	if s.db == nil {
		return ErrStoreUnavailable
	}
	return s.db.Select(dest, query, args...)
}
