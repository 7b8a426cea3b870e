package lov

import "github.com/redis/go-redis/v9"

// NewStore selects the LOV store backend. With a redis client the cache is
// shared across instances; without one it lives in process memory.
func NewStore(redisClient *redis.Client) Store {
	if redisClient != nil {
		return NewRedisStore(redisClient)
	}
	return NewMemoryStore()
}
