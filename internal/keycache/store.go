// Package keycache persists derived document keys on the local machine.
// Keys are wrapped under a local wrapping key before they touch disk, and
// entries are never evicted or overwritten.
package keycache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/dtroode/notekeeper/internal/keycache/migrations"
	"github.com/dtroode/notekeeper/internal/model"
)

const dbFileName = "keycache.db"

// Store is the SQLite table of wrapped keys.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the key cache database under dataDir and
// applies migrations.
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dsn := filepath.Join(dataDir, dbFileName) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open key cache: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate key cache: %w", err)
	}

	return &Store{db: db}, nil
}

// NewStoreWithDB wraps an already migrated database.
func NewStoreWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

func migrate(db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.Up(db, ".")
}

// Get returns the wrapped key stored under cacheKey or model.ErrNotFound.
func (s *Store) Get(ctx context.Context, cacheKey string) ([]byte, error) {
	const query = `SELECT wrapped_key FROM derived_keys WHERE cache_key = ?`

	var wrapped []byte
	err := s.db.QueryRowContext(ctx, query, cacheKey).Scan(&wrapped)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read key: %w", err)
	}

	return wrapped, nil
}

// Insert stores a wrapped key unless one is already present for cacheKey.
func (s *Store) Insert(ctx context.Context, cacheKey string, wrapped []byte) error {
	const query = `INSERT INTO derived_keys (cache_key, wrapped_key, created_at) VALUES (?, ?, ?)
		ON CONFLICT (cache_key) DO NOTHING`

	if _, err := s.db.ExecContext(ctx, query, cacheKey, wrapped, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to store key: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
