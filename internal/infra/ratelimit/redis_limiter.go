package ratelimit

import (
	"context"
	"strconv"
	"time"

	"mytube/internal/domain/service"
	"mytube/internal/errors"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "mytube:ratelimit:"

// redisLimiter is a fixed window counter shared by every API replica.
type redisLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
	now    func() time.Time
}

// NewRedisLimiter allows limit requests per key in each window.
func NewRedisLimiter(client *redis.Client, limit int64, window time.Duration) service.RateLimiter {
	if window <= 0 {
		window = time.Second
	}

	return &redisLimiter{client: client, limit: limit, window: window, now: time.Now}
}

func (l *redisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	bucket := l.now().UnixNano() / int64(l.window)
	redisKey := keyPrefix + key + ":" + strconv.FormatInt(bucket, 10)

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to increment rate limit counter")
	}
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return false, errors.Wrap(err, "failed to set rate limit expiry")
		}
	}

	return count <= l.limit, nil
}
