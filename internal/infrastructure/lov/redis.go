package lov

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stylelink/backend/internal/domain/plm"
)

// redisTTL approximates process-lifetime caching for a shared store. Long
// enough to outlive any deployment, short enough to pick up PLM releases.
const redisTTL = 30 * 24 * time.Hour

const redisKeyPrefix = "lov:"

// RedisStore shares resolved LOV display values across instances.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a redis-backed LOV store
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Get returns the cached display value for a code, if present
func (s *RedisStore) Get(ctx context.Context, key plm.LOVKey, code string) (string, bool, error) {
	value, err := s.client.Get(ctx, redisKey(key, code)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("lov: redis get failed: %w", err)
	}
	return value, true, nil
}

// Set caches the display value for a code
func (s *RedisStore) Set(ctx context.Context, key plm.LOVKey, code, value string) error {
	if err := s.client.Set(ctx, redisKey(key, code), value, redisTTL).Err(); err != nil {
		return fmt.Errorf("lov: redis set failed: %w", err)
	}
	return nil
}

func redisKey(key plm.LOVKey, code string) string {
	return fmt.Sprintf("%s%s:%s", redisKeyPrefix, key, code)
}

var _ Store = (*RedisStore)(nil)
