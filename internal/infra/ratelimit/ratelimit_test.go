package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestMemoryLimiter_Burst(t *testing.T) {
	limiter := NewMemoryLimiter(1, 2).(*memoryLimiter)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }
	ctx := context.Background()

	for range 2 {
		ok, err := limiter.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, _ := limiter.Allow(ctx, "1.2.3.4")
	assert.False(t, ok, "third request inside the burst must be rejected")

	ok, _ = limiter.Allow(ctx, "5.6.7.8")
	assert.True(t, ok, "keys are limited independently")

	now = now.Add(time.Second)
	ok, _ = limiter.Allow(ctx, "1.2.3.4")
	assert.True(t, ok, "bucket refills over time")
}

func TestMemoryLimiter_EvictsIdleKeys(t *testing.T) {
	limiter := NewMemoryLimiter(1, 1).(*memoryLimiter)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	_, _ = limiter.Allow(context.Background(), "a")
	now = now.Add(idleEviction + time.Second)
	_, _ = limiter.Allow(context.Background(), "b")

	assert.NotContains(t, limiter.visitors, "a")
	assert.Contains(t, limiter.visitors, "b")
}

func TestMemoryLimiter_SweepsOncePerInterval(t *testing.T) {
	limiter := NewMemoryLimiter(1, 1).(*memoryLimiter)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }
	ctx := context.Background()

	_, _ = limiter.Allow(ctx, "a")
	limiter.visitors["stale"] = &visitor{limiter: rate.NewLimiter(1, 1), lastSeen: now.Add(-time.Hour)}

	now = now.Add(sweepInterval / 2)
	_, _ = limiter.Allow(ctx, "a")
	assert.Contains(t, limiter.visitors, "stale")

	now = now.Add(sweepInterval)
	_, _ = limiter.Allow(ctx, "a")
	assert.NotContains(t, limiter.visitors, "stale")
	assert.Contains(t, limiter.visitors, "a")
}

func TestRedisLimiter_FixedWindow(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	limiter := NewRedisLimiter(client, 3, time.Minute).(*redisLimiter)
	now := time.Date(2024, 1, 1, 0, 0, 10, 0, time.UTC)
	limiter.now = func() time.Time { return now }
	ctx := context.Background()

	for range 3 {
		ok, err := limiter.Allow(ctx, "user-1")
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, err := limiter.Allow(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, ok)

	keys := mr.Keys()
	require.Len(t, keys, 1)
	assert.Greater(t, mr.TTL(keys[0]), time.Duration(0))

	now = now.Add(time.Minute)
	ok, err = limiter.Allow(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, ok, "a new window starts a new count")
}

func TestRedisLimiter_Unavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	_, err := NewRedisLimiter(client, 1, time.Second).Allow(context.Background(), "k")

	assert.Error(t, err)
}
