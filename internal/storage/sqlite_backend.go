package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteTimeLayout = time.RFC3339Nano

type SQLiteBackend struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteBackend(db *sql.DB) (*SQLiteBackend, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if err := MigrateUp(db); err != nil {
		return nil, err
	}
	return &SQLiteBackend{db: db, now: time.Now}, nil
}

func OpenSQLite(path string) (*SQLiteBackend, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage: sqlite path is required")
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	backend, err := NewSQLiteBackend(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return backend, nil
}

func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}

func (b *SQLiteBackend) Get(ctx context.Context, c Collection) (string, error) {
	var payload string
	err := b.db.QueryRowContext(ctx, `SELECT payload FROM collections WHERE name = ?`, string(c)).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return payload, nil
}

func (b *SQLiteBackend) Put(ctx context.Context, c Collection, payload string) error {
	_, err := b.db.ExecContext(ctx, `
		INSERT INTO collections (name, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		string(c), payload, b.now().UTC().Format(sqliteTimeLayout),
	)
	return err
}

// UpdatedAt reports when the collection was last written.
func (b *SQLiteBackend) UpdatedAt(ctx context.Context, c Collection) (time.Time, error) {
	var raw string
	err := b.db.QueryRowContext(ctx, `SELECT updated_at FROM collections WHERE name = ?`, string(c)).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, ErrNotFound
		}
		return time.Time{}, err
	}
	return time.Parse(sqliteTimeLayout, raw)
}
