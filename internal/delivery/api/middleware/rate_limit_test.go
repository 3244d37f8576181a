package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	mockService "mytube/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func serveRateLimited(t *testing.T, mw *RateLimitMiddleware) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	rec := httptest.NewRecorder()

	require.NoError(t, mw.Handle(okHandler)(e.NewContext(req, rec)))

	return rec
}

func TestRateLimitMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("allowed", func(t *testing.T) {
		limiter := mockService.NewMockRateLimiter(t)
		limiter.EXPECT().Allow(mock.Anything, "ip:10.0.0.1").Return(true, nil)

		rec := serveRateLimited(t, NewRateLimitMiddleware(limiter, logger))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("rejected", func(t *testing.T) {
		limiter := mockService.NewMockRateLimiter(t)
		limiter.EXPECT().Allow(mock.Anything, "ip:10.0.0.1").Return(false, nil)

		rec := serveRateLimited(t, NewRateLimitMiddleware(limiter, logger))

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	})

	t.Run("limiter failure fails open", func(t *testing.T) {
		limiter := mockService.NewMockRateLimiter(t)
		limiter.EXPECT().Allow(mock.Anything, mock.Anything).Return(false, errors.New("redis down"))

		rec := serveRateLimited(t, NewRateLimitMiddleware(limiter, logger))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("disabled", func(t *testing.T) {
		rec := serveRateLimited(t, NewRateLimitMiddleware(nil, logger))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
