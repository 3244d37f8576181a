package pubsub

import (
	"encoding/json"
	"time"

	"mytube/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Message attribute keys shared by the publishers and the media worker.
const (
	AttrRequestID = "request_id"
	AttrStorageID = "storage_id"
	AttrKind      = "kind"
)

// LocalSubscription names the push subscription the local publisher pretends to be.
const LocalSubscription = "projects/local/subscriptions/asset-cleanup-sub"

// PushEnvelope is the body Pub/Sub POSTs to a push endpoint.
// Data is base64 on the wire, which encoding/json handles for []byte.
type PushEnvelope struct {
	Message      PushedMessage `json:"message"`
	Subscription string        `json:"subscription"`
}

type PushedMessage struct {
	Data        []byte            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime time.Time         `json:"publishTime"`
}

// NewPushEnvelope wraps a cleanup event the way a push subscription delivers it.
func NewPushEnvelope(event *service.AssetCleanupEvent, subscription string) (*PushEnvelope, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode cleanup event")
	}

	return &PushEnvelope{
		Message: PushedMessage{
			Data:        data,
			Attributes:  eventAttributes(event),
			MessageID:   uuid.NewString(),
			PublishTime: time.Now().UTC(),
		},
		Subscription: subscription,
	}, nil
}

// CleanupEvent decodes the message payload.
func (e *PushEnvelope) CleanupEvent() (*service.AssetCleanupEvent, error) {
	if len(e.Message.Data) == 0 {
		return nil, errors.New("push message has no data")
	}

	var event service.AssetCleanupEvent
	if err := json.Unmarshal(e.Message.Data, &event); err != nil {
		return nil, errors.Wrap(err, "failed to decode cleanup event")
	}

	return &event, nil
}

// RequestID returns the id to log the delivery under: the attribute set by the
// publisher, then the one inside the event.
func (e *PushEnvelope) RequestID(event *service.AssetCleanupEvent) string {
	if id := e.Message.Attributes[AttrRequestID]; id != "" {
		return id
	}
	if event != nil {
		return event.RequestID
	}

	return ""
}

func eventAttributes(event *service.AssetCleanupEvent) map[string]string {
	attributes := map[string]string{
		AttrStorageID: event.StorageID,
		AttrKind:      event.Kind,
	}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	return attributes
}
