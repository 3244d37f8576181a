package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "mytube/internal/delivery/context"
	"mytube/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localMaxAttempts = 3
	localBackoff     = 200 * time.Millisecond
)

// localHTTPPublisher stands in for a push subscription during development: it POSTs
// the same envelope Pub/Sub would send straight to the media worker and, like
// Pub/Sub, redelivers when the worker answers 5xx.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	backoff    time.Duration
	logger     *slog.Logger
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		backoff:    localBackoff,
		logger:     logger,
	}
}

func (p *localHTTPPublisher) PublishAssetCleanup(ctx context.Context, event *service.AssetCleanupEvent) error {
	envelope, err := NewPushEnvelope(event, LocalSubscription)
	if err != nil {
		return err
	}
	body, err := json.Marshal(envelope)
	if err != nil {
		return errors.WithStack(err)
	}

	for attempt := 1; ; attempt++ {
		status, err := p.post(ctx, body, event.RequestID)
		if err == nil && status < http.StatusMultipleChoices {
			deliverycontext.GetLoggerOrDefault(ctx, p.logger).Info("[LocalPubSub] Cleanup event delivered",
				slog.String("storage_id", event.StorageID),
				slog.String("message_id", envelope.Message.MessageID),
				slog.Int("attempt", attempt),
			)

			return nil
		}
		if err == nil {
			err = errors.Errorf("worker returned status %d", status)
		}

		// 4xx means the worker will never accept this message.
		if (status >= http.StatusBadRequest && status < http.StatusInternalServerError) || attempt == localMaxAttempts {
			return err
		}

		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-time.After(p.backoff * time.Duration(attempt)):
		}
	}
}

func (p *localHTTPPublisher) post(ctx context.Context, body []byte, requestID string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, errors.Wrap(err, "failed to reach media worker")
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}

func (p *localHTTPPublisher) Close() error {
	p.httpClient.CloseIdleConnections()

	return nil
}
