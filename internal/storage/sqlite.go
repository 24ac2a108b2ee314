package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/dkrastev/wellkeeper/internal/common"
	"github.com/dkrastev/wellkeeper/internal/storage/migrations"
)

// DBTX is the subset of *sql.DB / *sql.Tx the adapter needs, so it can run
// inside or outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SQLiteAdapter implements Adapter on a single kv table.
type SQLiteAdapter struct {
	db DBTX
}

// NewSQLiteAdapter returns an adapter bound to the given DBTX. The kv table
// must already exist (see Open / RunMigrations).
func NewSQLiteAdapter(db DBTX) *SQLiteAdapter {
	return &SQLiteAdapter{db: db}
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if necessary) the device database at dsn, applies
// migrations and returns a ready adapter together with the underlying
// handle so the caller can close it.
func Open(ctx context.Context, dsn string) (*SQLiteAdapter, *sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return NewSQLiteAdapter(db), db, nil
}

// Get returns the value stored under key, or common.ErrNotFound.
func (a *SQLiteAdapter) Get(ctx context.Context, key string) (string, error) {
	var value string
	query := `SELECT value FROM kv WHERE key = ?`
	err := a.db.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", common.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to select key %q: %w", key, err)
	}
	return value, nil
}

// Set upserts value under key.
func (a *SQLiteAdapter) Set(ctx context.Context, key string, value string) error {
	query := `INSERT INTO kv (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := a.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to upsert key %q: %w", key, err)
	}
	return nil
}
