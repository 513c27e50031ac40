// Package db provides PostgreSQL access for user profiles.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Ping verifies the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

const profilesTableDDL = `
CREATE TABLE IF NOT EXISTS profiles (
	user_id            UUID PRIMARY KEY,
	age                INTEGER,
	native_language    TEXT NOT NULL,
	learning_languages JSONB NOT NULL DEFAULT '[]',
	location           TEXT NOT NULL DEFAULT '',
	country_code       TEXT NOT NULL DEFAULT '',
	lat                DOUBLE PRECISION,
	lon                DOUBLE PRECISION,
	is_online          BOOLEAN NOT NULL DEFAULT FALSE,
	preferences        JSONB NOT NULL DEFAULT '{}',
	is_complete        BOOLEAN NOT NULL DEFAULT FALSE,
	updated_at         TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// EnsureSchema creates the profiles table if it does not exist.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, profilesTableDDL); err != nil {
		return fmt.Errorf("failed to create profiles table: %w", err)
	}
	return nil
}
