package store

import (
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"
)

// SchemaVersion is the current SQLite schema version.
const SchemaVersion = "1"

const (
	driverName = "sqlite"
	lastResult = "last_result"
)

// SQLite is a SQLite-backed store.
type SQLite struct {
	mu sync.Mutex
	db *sql.DB
}

// NewSQLite opens or creates the database at path.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	s, err := newSQLite(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func newSQLite(db *sql.DB) (*SQLite, error) {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS state (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS metadata (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		return nil, fmt.Errorf("create tables: %w", err)
	}

	s := &SQLite{db: db}

	version, err := s.get("metadata", "schema_version")
	if err != nil {
		return nil, err
	}
	switch version {
	case "":
		if err := s.set("metadata", "schema_version", SchemaVersion); err != nil {
			return nil, err
		}
	case SchemaVersion:
	default:
		return nil, fmt.Errorf("unsupported schema version: %s (expected %s)", version, SchemaVersion)
	}
	return s, nil
}

// Load returns the last saved result.
func (s *SQLite) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get("state", lastResult)
}

// Save records result.
func (s *SQLite) Save(result string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set("state", lastResult, result)
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// get reads key from table without locking (caller must hold lock).
func (s *SQLite) get(table, key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM "+table+" WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s.%s: %w", table, key, err)
	}
	return value, nil
}

// set upserts key in table without locking (caller must hold lock).
func (s *SQLite) set(table, key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO `+table+` (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("write %s.%s: %w", table, key, err)
	}
	return nil
}
