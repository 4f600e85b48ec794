package kvstore

import (
	"context"
	"medicore-service/internal/app/contracts"
	"medicore-service/internal/pkg/exceptions"

	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) contracts.KeyValueStore {
	return &redisStore{client: client}
}

func (s *redisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	} else if err != nil {
		return "", false, exceptions.ErrKVStoreGet(err, key)
	}
	return value, true, nil
}

func (s *redisStore) Set(ctx context.Context, key string, value string) error {
	// Values never expire; the store is durable application state, not
	// a cache.
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return exceptions.ErrKVStoreSet(err, key)
	}
	return nil
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return exceptions.ErrKVStoreDelete(err, key)
	}
	return nil
}
