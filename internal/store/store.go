// Package store persists the last committed result between runs.
package store

import (
	"errors"
	"fmt"
)

// Store keeps the last committed result.
type Store interface {
	// Load returns the last saved result, or "" if there is none.
	Load() (string, error)
	// Save records result, overwriting the previous one.
	Save(result string) error
	// Close releases resources.
	Close() error
}

// Drivers accepted by Open.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverBolt   = "bolt"
)

// ErrNoPath is returned when a file-backed driver is opened without a path.
var ErrNoPath = errors.New("store path is not set")

// Open returns the store for driver. An empty driver means memory.
func Open(driver, path string) (Store, error) {
	switch driver {
	case "", DriverMemory:
		return NewMemory(), nil
	case DriverSQLite:
		if path == "" {
			return nil, ErrNoPath
		}
		return NewSQLite(path)
	case DriverBolt:
		if path == "" {
			return nil, ErrNoPath
		}
		return NewBolt(path)
	}
	return nil, fmt.Errorf("unknown store driver: %s", driver)
}
