package ratelimit

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStore shares the fixed window between processes: INCR the key,
// set the window TTL on first hit.
type RedisStore struct {
	client      *redis.Client
	windowSize  time.Duration
	maxRequests int
}

func NewRedisStore(client *redis.Client, windowSize time.Duration, maxRequests int) *RedisStore {
	return &RedisStore{
		client:      client,
		windowSize:  windowSize,
		maxRequests: maxRequests,
	}
}

func NewRedisStoreFromURL(url string, windowSize time.Duration, maxRequests int) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return NewRedisStore(redis.NewClient(opts), windowSize, maxRequests), nil
}

func (s *RedisStore) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := "ratelimit:" + key

	count, err := s.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, err
	}

	if count == 1 {
		if err := s.client.Expire(ctx, redisKey, s.windowSize).Err(); err != nil {
			return false, err
		}
	}

	return count <= int64(s.maxRequests), nil
}
