// Package ratelimit counts requests per client in a sliding window kept in Redis.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Reset(ctx context.Context, key string) error
}

// RedisRateLimiter stores one sorted set per key, scored by request time.
// All panel instances share the counters through Redis.
type RedisRateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

func NewRedisRateLimiter(client *redis.Client, limit int, window time.Duration) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		limit:  limit,
		window: window,
	}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if l.limit <= 0 {
		return true, nil
	}

	now := time.Now()
	redisKey := l.getKey(key)
	windowStart := now.Add(-l.window).UnixNano()
	nowNano := now.UnixNano()

	pipe := l.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", fmt.Sprintf("%d", windowStart))
	zcard := pipe.ZCard(ctx, redisKey)
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(nowNano), Member: nowNano})
	pipe.Expire(ctx, redisKey, l.window+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to execute pipeline: %w", err)
	}

	return zcard.Val() < int64(l.limit), nil
}

func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, l.getKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", l.getKey(key), err)
	}
	return nil
}

func (l *RedisRateLimiter) getKey(identifier string) string {
	return fmt.Sprintf("ratelimit:%s:%s", identifier, l.window.String())
}
