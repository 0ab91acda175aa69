package redis

import (
	"context"

	goredis "github.com/redis/go-redis/v9"
)

// Store is the Redis-backed key-value medium. Values never expire;
// the repository owns their lifecycle.
type Store struct {
	client *goredis.Client
}

func NewStore(addr string) (*Store, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr: addr, // e.g., "localhost:6379"
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}
	return &Store{client: client}, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, key, value, 0).Err()
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}
