package storage

import (
	"context"
	"sync"
)

type MemoryBackend struct {
	mu     sync.Mutex
	values map[Collection]string
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[Collection]string)}
}

func (b *MemoryBackend) Get(_ context.Context, c Collection) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	payload, ok := b.values[c]
	if !ok {
		return "", ErrNotFound
	}
	return payload, nil
}

func (b *MemoryBackend) Put(_ context.Context, c Collection, payload string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.values[c] = payload
	return nil
}

func (b *MemoryBackend) Close() error { return nil }
