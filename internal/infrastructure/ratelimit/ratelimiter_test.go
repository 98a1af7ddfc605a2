package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)
	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	return client
}

func TestRedisRateLimiter_Allow(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client, 5, time.Minute)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(ctx, "admin:127.0.0.1")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(ctx, "admin:127.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed, "6th request should be denied")

	allowed, err = limiter.Allow(ctx, "admin:10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed, "keys are counted separately")
}

func TestRedisRateLimiter_Reset(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client, 1, time.Minute)
	ctx := context.Background()

	_, err := limiter.Allow(ctx, "k")
	require.NoError(t, err)
	allowed, err := limiter.Allow(ctx, "k")
	require.NoError(t, err)
	assert.False(t, allowed)

	require.NoError(t, limiter.Reset(ctx, "k"))
	allowed, err = limiter.Allow(ctx, "k")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisRateLimiter_Unlimited(t *testing.T) {
	limiter := NewRedisRateLimiter(nil, 0, time.Minute)
	allowed, err := limiter.Allow(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, allowed)
}
