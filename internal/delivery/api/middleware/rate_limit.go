package middleware

import (
	"log/slog"
	"strconv"

	"mytube/internal/delivery/api/response"
	deliverycontext "mytube/internal/delivery/context"
	domainerrors "mytube/internal/domain/errors"
	"mytube/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// RateLimitMiddleware limits requests per client IP.
type RateLimitMiddleware struct {
	limiter    service.RateLimiter
	logger     *slog.Logger
	retryAfter int
}

// NewRateLimitMiddleware wraps a limiter. A nil limiter disables the middleware.
func NewRateLimitMiddleware(limiter service.RateLimiter, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter, logger: logger, retryAfter: 1}
}

// Handle answers 429 once the client is over its limit. Limiter failures let the request through.
func (m *RateLimitMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	if m.limiter == nil {
		return next
	}

	return func(c echo.Context) error {
		ctx := c.Request().Context()

		allowed, err := m.limiter.Allow(ctx, "ip:"+c.RealIP())
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Rate limiter unavailable, allowing request",
				slog.Any("error", err),
			)

			return next(c)
		}
		if !allowed {
			c.Response().Header().Set("Retry-After", strconv.Itoa(m.retryAfter))

			return response.AppError(c, domainerrors.ErrTooManyRequests)
		}

		return next(c)
	}
}
