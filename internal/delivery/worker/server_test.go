package worker

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mytube/config"
	"mytube/internal/delivery/worker/handler"
	mockService "mytube/internal/mocks/service"

	"github.com/stretchr/testify/assert"
)

func newTestWorkerEcho(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{
		PubSub: &config.PubSubConfig{},
		Worker: &config.WorkerConfig{Port: 8081, MaxPushBodySize: "1KB"},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return newEcho(ServerParams{
		Cfg:    cfg,
		Logger: logger,
		CleanupHandler: handler.NewCleanupHandler(handler.CleanupHandlerParams{
			Config:  cfg,
			Logger:  logger,
			Storage: mockService.NewMockMediaStorage(t),
		}),
	})
}

func TestWorker_Health(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestWorkerEcho(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "mediaworker")
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestWorker_PushBodyLimit(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(`{"message":{"data":"`+strings.Repeat("A", 4096)+`"}}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newTestWorkerEcho(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
