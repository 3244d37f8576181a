package service

import "context"

// RateLimiter decides whether a client may make another request.
type RateLimiter interface {
	// Allow consumes one request for key and reports whether it fits the limit.
	Allow(ctx context.Context, key string) (bool, error)
}
