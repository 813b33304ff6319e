// Package postgres provides a PostgreSQL-backed store.Store.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ryhazerus/pacer/store"
)

// Compile-time interface check.
var _ store.Store = (*PostgresStore)(nil)

// PostgresStore is a Store backed by a single PostgreSQL table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore wraps pool and creates the pacer_kv table if needed.
// The store takes ownership of the pool; Close closes it.
func NewPostgresStore(ctx context.Context, pool *pgxpool.Pool) (*PostgresStore, error) {
	if _, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS pacer_kv (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`); err != nil {
		return nil, fmt.Errorf("pacer/store/postgres: create table: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Open connects to dsn and returns a ready store.
func Open(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pacer/store/postgres: connect: %w", err)
	}
	s, err := NewPostgresStore(ctx, pool)
	if err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

// Get returns the value at key.
func (p *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := p.pool.QueryRow(ctx, `SELECT value FROM pacer_kv WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("pacer/store/postgres: get: %w", err)
	}
	return value, true, nil
}

// Set upserts value at key.
func (p *PostgresStore) Set(ctx context.Context, key, value string) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO pacer_kv (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("pacer/store/postgres: set: %w", err)
	}
	return nil
}

// Delete removes the entry for key.
func (p *PostgresStore) Delete(ctx context.Context, key string) error {
	if _, err := p.pool.Exec(ctx, `DELETE FROM pacer_kv WHERE key = $1`, key); err != nil {
		return fmt.Errorf("pacer/store/postgres: delete: %w", err)
	}
	return nil
}

// Close closes the connection pool.
func (p *PostgresStore) Close() error {
	p.pool.Close()
	return nil
}
