package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"mytube/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocalPublisher(t *testing.T, endpoint string) *localHTTPPublisher {
	t.Helper()

	p, ok := NewLocalHTTPPublisher(endpoint, slog.New(slog.NewTextHandler(io.Discard, nil))).(*localHTTPPublisher)
	require.True(t, ok)
	p.backoff = 0

	return p
}

func TestLocalHTTPPublisher_PublishAssetCleanup(t *testing.T) {
	var received PushEnvelope
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	publisher := newTestLocalPublisher(t, srv.URL)
	event := &service.AssetCleanupEvent{RequestID: "req-1", StorageID: "avatars/a.png", Kind: "image", Reason: "superseded"}

	require.NoError(t, publisher.PublishAssetCleanup(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, LocalSubscription, received.Subscription)
	assert.Equal(t, "avatars/a.png", received.Message.Attributes[AttrStorageID])
	assert.Equal(t, "req-1", received.RequestID(nil))

	decoded, err := received.CleanupEvent()
	require.NoError(t, err)
	assert.Equal(t, event, decoded)
}

func TestLocalHTTPPublisher_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 2 {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	publisher := newTestLocalPublisher(t, srv.URL)

	require.NoError(t, publisher.PublishAssetCleanup(context.Background(), &service.AssetCleanupEvent{StorageID: "x", Kind: "video"}))
	assert.Equal(t, int32(2), calls.Load())
}

func TestLocalHTTPPublisher_GivesUp(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantCalls int32
		wantErr   string
	}{
		{name: "server error after all attempts", status: http.StatusServiceUnavailable, wantCalls: localMaxAttempts, wantErr: "503"},
		{name: "client error immediately", status: http.StatusBadRequest, wantCalls: 1, wantErr: "400"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			publisher := newTestLocalPublisher(t, srv.URL)

			err := publisher.PublishAssetCleanup(context.Background(), &service.AssetCleanupEvent{StorageID: "x", Kind: "video"})

			assert.ErrorContains(t, err, tt.wantErr)
			assert.Equal(t, tt.wantCalls, calls.Load())
		})
	}
}
