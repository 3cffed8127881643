package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

const defaultRedisPrefix = "focusflow"

// RedisBackend stores each collection under "<prefix>:<name>".
type RedisBackend struct {
	client *redis.Client
	prefix string
}

func NewRedisBackend(client *redis.Client, prefix string) *RedisBackend {
	if strings.TrimSpace(prefix) == "" {
		prefix = defaultRedisPrefix
	}
	return &RedisBackend{client: client, prefix: prefix}
}

func OpenRedis(ctx context.Context, url, prefix string) (*RedisBackend, error) {
	if strings.TrimSpace(url) == "" {
		return nil, errors.New("storage: redis url is required")
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewRedisBackend(client, prefix), nil
}

func (b *RedisBackend) key(c Collection) string {
	return b.prefix + ":" + string(c)
}

func (b *RedisBackend) Get(ctx context.Context, c Collection) (string, error) {
	payload, err := b.client.Get(ctx, b.key(c)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", err
	}
	return payload, nil
}

func (b *RedisBackend) Put(ctx context.Context, c Collection, payload string) error {
	return b.client.Set(ctx, b.key(c), payload, 0).Err()
}

func (b *RedisBackend) Close() error {
	return b.client.Close()
}
