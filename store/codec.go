package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrSerialization is returned by Save when a value cannot be encoded.
	ErrSerialization = errors.New("pacer/store: serialization failed")

	// ErrDeserialization is returned by Load when stored text cannot be
	// decoded into the requested type.
	ErrDeserialization = errors.New("pacer/store: deserialization failed")
)

// SerializationError reports the key whose value could not be encoded.
type SerializationError struct {
	Key string
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("pacer/store: cannot serialize value for %q: %v", e.Key, e.Err)
}

func (e *SerializationError) Unwrap() []error {
	return []error{ErrSerialization, e.Err}
}

// DeserializationError reports the key whose stored text is corrupt.
type DeserializationError struct {
	Key string
	Err error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("pacer/store: cannot deserialize value at %q: %v", e.Key, e.Err)
}

func (e *DeserializationError) Unwrap() []error {
	return []error{ErrDeserialization, e.Err}
}

// Save encodes value as JSON and writes it at key, overwriting any existing
// value.
func Save(ctx context.Context, s Store, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return &SerializationError{Key: key, Err: err}
	}
	if err := s.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("pacer/store: save %q: %w", key, err)
	}
	return nil
}

// Load reads the value at key and decodes it into a T. If the key is absent,
// ok is false and err is nil. Text that is present but does not decode yields
// a *DeserializationError rather than a missing result.
func Load[T any](ctx context.Context, s Store, key string) (value T, ok bool, err error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return value, false, fmt.Errorf("pacer/store: load %q: %w", key, err)
	}
	if !ok {
		return value, false, nil
	}
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		var zero T
		return zero, false, &DeserializationError{Key: key, Err: err}
	}
	return value, true, nil
}

// Remove deletes the entry at key. Removing an absent key is not an error.
func Remove(ctx context.Context, s Store, key string) error {
	if err := s.Delete(ctx, key); err != nil {
		return fmt.Errorf("pacer/store: remove %q: %w", key, err)
	}
	return nil
}
