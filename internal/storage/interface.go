// Package storage provides the local key-value store backing all CourseNotes
// state. Each key holds one serialized JSON blob; callers own serialization.
package storage

import "context"

// Repository describes the keyed blob storage operations. Implementations
// are backed by a local SQLite database.
type Repository interface {
	// Get returns the value stored under key, or nil if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Removing an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns all stored key-value pairs.
	List(ctx context.Context) (map[string][]byte, error)

	// Clear removes every stored key.
	Clear(ctx context.Context) error
}
