// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"time"

	"github.com/pulseboard/pulseboard/schema"
)

// SnapshotStore defines the interface for snapshot data storage.
// This allows mocking the store for testing.
type SnapshotStore interface {
	// Get returns the payload, schema version and fetch timestamp for a key.
	Get(key string) ([]byte, int, int64, error)

	// Set stores a payload under a key with its schema version and fetch timestamp.
	Set(key string, value []byte, version int, timestamp int64) error

	// GetAll returns every stored payload keyed by snapshot key. Used by
	// the parquet export path.
	GetAll() (map[string][]byte, error)

	// GetStatus returns status information about the store.
	GetStatus() (schema.SnapshotStatus, error)

	// Close releases the underlying connection.
	Close() error
}

// SnapshotManager defines the interface for managing snapshot stores.
type SnapshotManager interface {
	GetSnapshotStore() SnapshotStore
}

// Timer is the cancelable handle returned by Clock.AfterFunc.
type Timer interface {
	Stop() bool
}

// Clock abstracts wall time and timer scheduling so the notification queue
// and session container are testable without real sleeps.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// RealClock is the production Clock backed by the time package.
type RealClock struct{}

// Now implements Clock.
func (RealClock) Now() time.Time { return time.Now() }

// AfterFunc implements Clock.
func (RealClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }
