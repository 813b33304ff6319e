package store

import "context"

// Store is an external key-value facility addressed by string keys.
// Values are opaque strings; the typed helpers handle serialization.
type Store interface {
	// Get returns the value stored at key. ok is false if the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set writes value at key, overwriting any existing value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}
