package draft

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is the production Store: one redis key per session key, with a
// TTL so abandoned drafts expire on their own.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) redisKey(sessionID, key string) string {
	return fmt.Sprintf("draft:%s:%s", sessionID, key)
}

func (s *RedisStore) Get(ctx context.Context, sessionID, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.redisKey(sessionID, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading draft key %s: %w", key, err)
	}
	return data, nil
}

func (s *RedisStore) Set(ctx context.Context, sessionID, key string, value []byte) error {
	if err := s.client.Set(ctx, s.redisKey(sessionID, key), value, s.ttl).Err(); err != nil {
		return fmt.Errorf("writing draft key %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string, keys ...string) error {
	redisKeys := make([]string, len(keys))
	for i, key := range keys {
		redisKeys[i] = s.redisKey(sessionID, key)
	}
	if err := s.client.Del(ctx, redisKeys...).Err(); err != nil {
		return fmt.Errorf("deleting draft keys: %w", err)
	}
	return nil
}
