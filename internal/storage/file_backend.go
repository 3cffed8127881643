package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileBackend keeps each collection in <dir>/<name>.json.
type FileBackend struct {
	dir string
}

func NewFileBackend(dir string) (*FileBackend, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("storage: file backend directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create dir: %w", err)
	}
	return &FileBackend{dir: dir}, nil
}

func (b *FileBackend) path(c Collection) string {
	return filepath.Join(b.dir, string(c)+".json")
}

func (b *FileBackend) Get(_ context.Context, c Collection) (string, error) {
	raw, err := os.ReadFile(b.path(c))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", err
	}
	return string(raw), nil
}

func (b *FileBackend) Put(_ context.Context, c Collection, payload string) error {
	target := b.path(c)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, []byte(payload), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}

func (b *FileBackend) Close() error { return nil }
