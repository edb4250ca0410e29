package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"prodreport/local-app/internal/log"
)

// SQLiteStore implements the Store interface on a single-table SQLite
// database. This is the default driver.
type SQLiteStore struct {
	db     *sql.DB
	logger *log.Logger
}

// NewSQLiteStore opens (creating if necessary) the SQLite database at
// the given path and ensures the key-value table exists.
func NewSQLiteStore(path string, logger *log.Logger) (*SQLiteStore, error) {
	logger.Info(context.Background(), "Opening SQLite store", log.Fields{"dbPath": filepath.Base(path)})

	// Ensure the directory for the database file exists
	dbDir := filepath.Dir(path)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		logger.Error(context.Background(), "Failed to create database directory", log.Fields{"error": err, "directory": dbDir})
		return nil, fmt.Errorf("failed to create database directory '%s': %w", dbDir, err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		logger.Error(context.Background(), "Failed to open SQLite database", log.Fields{"error": err})
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if _, err := db.Exec("PRAGMA synchronous = NORMAL"); err != nil {
		db.Close()
		logger.Error(context.Background(), "Failed to set SQLite synchronous pragma", log.Fields{"error": err})
		return nil, fmt.Errorf("failed to set SQLite synchronous pragma: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		logger.Error(context.Background(), "Failed to verify database connection", log.Fields{"error": err})
		return nil, fmt.Errorf("failed to verify database connection: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`); err != nil {
		db.Close()
		logger.Error(context.Background(), "Failed to create kv table", log.Fields{"error": err})
		return nil, fmt.Errorf("failed to create kv table: %w", err)
	}

	logger.Info(context.Background(), "SQLite store opened successfully", nil)
	return &SQLiteStore{db: db, logger: logger}, nil
}

// Get returns the stored value for key.
func (s *SQLiteStore) Get(key string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read key '%s': %w", key, err)
	}
	return []byte(value), true, nil
}

// Set stores value under key, replacing any previous value.
func (s *SQLiteStore) Set(key string, value []byte) error {
	_, err := s.db.Exec(
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, string(value),
	)
	if err != nil {
		return fmt.Errorf("failed to write key '%s': %w", key, err)
	}
	return nil
}

// Remove deletes the value stored under key, if any.
func (s *SQLiteStore) Remove(key string) error {
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to remove key '%s': %w", key, err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	s.logger.Info(context.Background(), "Closing SQLite store", nil)
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close SQLite database: %w", err)
	}
	return nil
}
