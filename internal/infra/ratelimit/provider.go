package ratelimit

import (
	"context"
	"log/slog"
	"math"

	"mytube/config"
	"mytube/internal/domain/constants"
	"mytube/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// LimiterParams holds dependencies for RateLimiter, injected by Fx
type LimiterParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewRateLimiter returns nil when rate limiting is disabled.
func NewRateLimiter(params LimiterParams) (service.RateLimiter, error) {
	cfg := params.Config.RateLimit
	logger := params.Logger

	if cfg == nil || !cfg.Enabled {
		logger.Info("Rate limiting disabled")

		return nil, nil
	}

	switch cfg.Backend {
	case "", constants.RateLimitBackendMemory:
		logger.Info("Using in-memory rate limiter",
			slog.Float64("requests_per_second", cfg.RequestsPerSecond),
			slog.Int("burst", cfg.Burst),
		)

		return NewMemoryLimiter(cfg.RequestsPerSecond, cfg.Burst), nil

	case constants.RateLimitBackendRedis:
		if params.Config.Redis == nil || params.Config.Redis.Addr == "" {
			return nil, errors.New("redis address is required for redis rate limiter")
		}

		client := redis.NewClient(&redis.Options{
			Addr:     params.Config.Redis.Addr,
			Password: params.Config.Redis.Password,
			DB:       params.Config.Redis.DB,
		})

		params.Lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				return errors.Wrap(client.Ping(ctx).Err(), "failed to ping redis")
			},
			OnStop: func(context.Context) error {
				logger.Info("Closing redis client")

				return errors.WithStack(client.Close())
			},
		})

		limit := int64(math.Ceil(cfg.RequestsPerSecond * cfg.Window.Seconds()))
		if limit < int64(cfg.Burst) {
			limit = int64(cfg.Burst)
		}

		logger.Info("Using redis rate limiter",
			slog.String("addr", params.Config.Redis.Addr),
			slog.Int64("limit", limit),
			slog.Duration("window", cfg.Window),
		)

		return NewRedisLimiter(client, limit, cfg.Window), nil

	default:
		return nil, errors.Errorf("unknown rate limit backend: %s", cfg.Backend)
	}
}

//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRateLimiter),
)
