// Package context carries the request scope (request id, caller, logger) from the
// delivery layer down to usecases and repositories.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is read from incoming requests and echoed on every response.
const HeaderXRequestID = echo.HeaderXRequestID

type scopeKey struct{}

type scope struct {
	requestID string
	userID    uuid.UUID
	logger    *slog.Logger
}

func scopeOf(ctx context.Context) scope {
	s, _ := ctx.Value(scopeKey{}).(scope)

	return s
}

func withScope(ctx context.Context, update func(*scope)) context.Context {
	s := scopeOf(ctx)
	update(&s)

	return context.WithValue(ctx, scopeKey{}, s)
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return withScope(ctx, func(s *scope) { s.requestID = requestID })
}

// GetRequestIDFromContext returns the request ID, or "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	return scopeOf(ctx).requestID
}

// GetRequestID is GetRequestIDFromContext for an echo request.
func GetRequestID(c echo.Context) string {
	return GetRequestIDFromContext(c.Request().Context())
}

// WithUserID records the authenticated caller.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return withScope(ctx, func(s *scope) { s.userID = userID })
}

// GetUserIDFromContext returns the authenticated caller, if any.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID := scopeOf(ctx).userID

	return userID, userID != uuid.Nil
}

// WithLogger returns a new context with the request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return withScope(ctx, func(s *scope) { s.logger = logger })
}

// GetLogger returns the request-scoped logger or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	return scopeOf(ctx).logger
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to the given one.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}
