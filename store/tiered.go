package store

import "context"

// Compile-time interface check.
var _ Store = (*TieredStore)(nil)

// TieredStore wraps an in-memory store (fast path) with a persistent backend
// (durable path). Writes go to both stores (write-through); reads check memory
// first and fall back to the persistent store on a miss.
type TieredStore struct {
	memory     *MemoryStore
	persistent Store
}

// NewTieredStore creates a TieredStore backed by the given persistent store.
// An internal MemoryStore is created automatically.
func NewTieredStore(persistent Store) *TieredStore {
	return &TieredStore{
		memory:     NewMemoryStore(),
		persistent: persistent,
	}
}

// Get reads from memory first. On a miss it falls back to the persistent
// store and backfills memory.
func (t *TieredStore) Get(ctx context.Context, key string) (string, bool, error) {
	if v, ok, err := t.memory.Get(ctx, key); err != nil {
		return "", false, err
	} else if ok {
		return v, true, nil
	}

	v, ok, err := t.persistent.Get(ctx, key)
	if err != nil || !ok {
		return "", false, err
	}

	if err := t.memory.Set(ctx, key, v); err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Set writes to the persistent backend first, then memory. Memory is only
// updated once the durable write succeeds.
func (t *TieredStore) Set(ctx context.Context, key, value string) error {
	if err := t.persistent.Set(ctx, key, value); err != nil {
		return err
	}
	return t.memory.Set(ctx, key, value)
}

// Delete removes the entry from the persistent backend, then memory. If the
// durable delete fails, memory keeps the entry so reads stay consistent with
// the persistent store.
func (t *TieredStore) Delete(ctx context.Context, key string) error {
	if err := t.persistent.Delete(ctx, key); err != nil {
		return err
	}
	return t.memory.Delete(ctx, key)
}

// Close closes the persistent backend. The in-memory store needs no cleanup.
func (t *TieredStore) Close() error {
	return t.persistent.Close()
}
