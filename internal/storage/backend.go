package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var ErrNotFound = errors.New("storage: not found")

// Collection names one persisted entry. Each holds the full JSON array.
type Collection string

const (
	CollectionTasks  Collection = "tasks"
	CollectionHabits Collection = "habits"
	CollectionGoals  Collection = "goals"
)

func (c Collection) IsValid() bool {
	switch c {
	case CollectionTasks, CollectionHabits, CollectionGoals:
		return true
	default:
		return false
	}
}

// Backend is a string key-value store holding one payload per collection.
// Get returns ErrNotFound when the collection was never written.
type Backend interface {
	Get(ctx context.Context, c Collection) (string, error)
	Put(ctx context.Context, c Collection, payload string) error
	Close() error
}

const (
	DriverSQLite = "sqlite"
	DriverFile   = "file"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

type Options struct {
	Driver string
	// Path is the sqlite database file or the directory for the file driver.
	Path     string
	RedisURL string
	Prefix   string
}

// Open builds the backend named by opts.Driver.
func Open(ctx context.Context, opts Options) (Backend, error) {
	var (
		backend Backend
		err     error
	)
	switch strings.ToLower(strings.TrimSpace(opts.Driver)) {
	case "", DriverSQLite:
		if err := ensureParent(opts.Path); err != nil {
			return nil, err
		}
		backend, err = OpenSQLite(opts.Path)
	case DriverFile:
		backend, err = NewFileBackend(opts.Path)
	case DriverRedis:
		backend, err = OpenRedis(ctx, opts.RedisURL, opts.Prefix)
	case DriverMemory:
		backend = NewMemoryBackend()
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", opts.Driver)
	}
	if err != nil {
		return nil, err
	}
	return backend, nil
}

func ensureParent(path string) error {
	dir := filepath.Dir(strings.TrimSpace(path))
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: create data dir: %w", err)
	}
	return nil
}
