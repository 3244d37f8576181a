package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"mytube/internal/delivery/api/response"
	domainerrors "mytube/internal/domain/errors"
	"mytube/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantFields int
	}{
		{
			name:       "validation error keeps field context",
			err:        errors.Wrap(domainerrors.Required("title", "description"), "publish"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
			wantFields: 2,
		},
		{
			name:       "not found",
			err:        domainerrors.ErrVideoNotFound.WrapMessage("detail"),
			wantStatus: http.StatusNotFound,
			wantCode:   "VIDEO_NOT_FOUND",
		},
		{
			name:       "media timeout",
			err:        errors.Mark(domainerrors.ErrMediaTimeout, errors.New("deadline"), "upload"),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "MEDIA_TIMEOUT",
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "METHOD_NOT_ALLOWED",
		},
		{
			name:       "upload over the body limit",
			err:        echo.ErrStatusRequestEntityTooLarge,
			wantStatus: http.StatusRequestEntityTooLarge,
			wantCode:   "PAYLOAD_TOO_LARGE",
		},
		{
			name:       "unmapped echo error",
			err:        echo.NewHTTPError(http.StatusTeapot),
			wantStatus: http.StatusTeapot,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "echo 5xx hides message",
			err:        echo.NewHTTPError(http.StatusBadGateway, "upstream pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
		{
			name:       "unknown error hides internals",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, body.StatusCode)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.False(t, body.Success)
			assert.Nil(t, body.Data)
			assert.Len(t, body.Errors, tt.wantFields)
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}
