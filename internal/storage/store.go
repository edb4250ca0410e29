// Package storage provides functionality for persisting and retrieving
// application data. This file defines the key-value store contract and
// the driver factory.
package storage

import (
	"fmt"

	"prodreport/local-app/internal/log"
)

// Driver represents the type of key-value store backend.
type Driver string

const (
	SQLite Driver = "sqlite"
	File   Driver = "file"
	Memory Driver = "memory"
)

// Store is a synchronous key-value store of string keys to opaque
// serialized JSON values. The store itself has no type awareness;
// typed access lives one level up in the collection accessors.
type Store interface {
	// Get returns the stored value for key and whether it was present.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Remove(key string) error
	Close() error
}

// NewStore creates a Store instance based on the specified driver.
// For the sqlite and file drivers, path names the backing file.
func NewStore(driver Driver, path string, logger *log.Logger) (Store, error) {
	switch driver {
	case SQLite:
		return NewSQLiteStore(path, logger)
	case File:
		return NewFileStore(path, logger)
	case Memory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", driver)
	}
}

// ParseDriver checks if the provided driver name is supported.
func ParseDriver(name string) (Driver, error) {
	switch Driver(name) {
	case SQLite, File, Memory:
		return Driver(name), nil
	default:
		return "", fmt.Errorf("unsupported storage driver: %s", name)
	}
}
