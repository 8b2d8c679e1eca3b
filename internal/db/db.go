// Package db defines the storage facade implemented by the file and redis
// drivers.
package db

import (
	"context"
	"time"
)

// Store is the main storage facade.
type Store interface {
	Pinger
	RecordStore
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks storage availability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RecordStore provides keyed record operations. Values are opaque serialized
// records; insertion order is preserved across mutations.
type RecordStore interface {
	// PutNX stores data under id, failing with ErrKeyExists if the id is taken.
	PutNX(ctx context.Context, id string, data []byte) error
	// Get returns the data stored under id, or ErrKeyNotFound.
	Get(ctx context.Context, id string) ([]byte, error)
	// Delete removes the data stored under id, or fails with ErrKeyNotFound.
	Delete(ctx context.Context, id string) error
	// List returns all stored records in insertion order.
	List(ctx context.Context) ([][]byte, error)
}
