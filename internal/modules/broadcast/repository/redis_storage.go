package repository

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/samber/oops"
)

// RedisStorage implements DocumentStore with one string key per document.
// SET replaces the value atomically.
type RedisStorage struct {
	client *redis.Client
	prefix string
}

// NewRedisStorage connects to the server at url and verifies it answers
func NewRedisStorage(ctx context.Context, url, prefix string) (*RedisStorage, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, oops.With("context", "invalid redis url").Wrap(err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, oops.With("addr", opts.Addr, "context", "failed to ping redis").Wrap(err)
	}

	return &RedisStorage{client: client, prefix: prefix}, nil
}

func (s *RedisStorage) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrDocumentNotFound
		}
		return nil, oops.With("document", key, "context", "failed to get document").Wrap(err)
	}
	return data, nil
}

func (s *RedisStorage) Put(ctx context.Context, key string, data []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, data, 0).Err(); err != nil {
		return oops.With("document", key, "context", "failed to set document").Wrap(err)
	}
	return nil
}

func (s *RedisStorage) Close() error {
	return s.client.Close()
}

func (s *RedisStorage) Shutdown() error {
	return s.Close()
}
