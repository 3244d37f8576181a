package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mytube/config"
	deliverycontext "mytube/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "generated when missing", incoming: ""},
		{name: "client id kept", incoming: "abc-123", keep: true},
		{name: "unsafe client id replaced", incoming: "bad id\nwith newline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			var seen string
			e.Use(NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).Process)
			e.GET("/", func(c echo.Context) error {
				seen = deliverycontext.GetRequestID(c)
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return c.NoContent(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(echo.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.NotEmpty(t, seen)
			assert.Equal(t, seen, rec.Header().Get(echo.HeaderXRequestID))
			if tt.keep {
				assert.Equal(t, tt.incoming, seen)
			} else {
				assert.NotEqual(t, tt.incoming, seen)
			}
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	newServer := func(debug bool, buf *bytes.Buffer) *echo.Echo {
		logger := slog.New(slog.NewTextHandler(buf, nil))
		cfg := &config.Config{}
		cfg.Env.Debug = debug

		e := echo.New()
		e.Use(NewRequestIDMiddleware(logger).Process)
		e.Use(NewLoggerMiddleware(logger, cfg).Handle)
		e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
		e.GET("/videos/:videoId", func(c echo.Context) error { return c.String(http.StatusNotFound, "missing") })

		return e
	}

	t.Run("debug logs route and status", func(t *testing.T) {
		var buf bytes.Buffer
		e := newServer(true, &buf)

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/videos/123?x=1", nil))

		line := buf.String()
		assert.Contains(t, line, "route=/videos/:videoId")
		assert.Contains(t, line, "status=404")
		assert.Contains(t, line, "level=WARN")
		assert.Contains(t, line, "request_id=")
		assert.Contains(t, line, `query="x=1"`)
	})

	t.Run("health is skipped", func(t *testing.T) {
		var buf bytes.Buffer
		e := newServer(true, &buf)

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.False(t, strings.Contains(buf.String(), "HTTP request"))
	})

	t.Run("silent without debug", func(t *testing.T) {
		var buf bytes.Buffer
		e := newServer(false, &buf)

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/videos/123", nil))

		assert.Empty(t, buf.String())
	})
}
