package pubsub

import (
	"testing"

	"mytube/config"
	"mytube/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushEnvelope_RequestID(t *testing.T) {
	event := &service.AssetCleanupEvent{RequestID: "from-event", StorageID: "videos/a.mp4", Kind: "video"}

	envelope, err := NewPushEnvelope(event, LocalSubscription)
	require.NoError(t, err)
	assert.Equal(t, "from-event", envelope.RequestID(event))

	envelope.Message.Attributes[AttrRequestID] = "from-attr"
	assert.Equal(t, "from-attr", envelope.RequestID(event))

	delete(envelope.Message.Attributes, AttrRequestID)
	assert.Empty(t, envelope.RequestID(nil))
}

func TestPushEnvelope_CleanupEventRejectsEmptyData(t *testing.T) {
	_, err := (&PushEnvelope{}).CleanupEvent()

	assert.ErrorContains(t, err, "no data")
}

func TestValidate(t *testing.T) {
	assert.Error(t, validate(&config.PubSubConfig{Provider: "local"}))
	assert.Error(t, validate(&config.PubSubConfig{Provider: "google", ProjectID: "p"}))
	assert.Error(t, validate(&config.PubSubConfig{Provider: "kafka"}))
	assert.NoError(t, validate(&config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"}))
	assert.NoError(t, validate(&config.PubSubConfig{Provider: "google", ProjectID: "p", TopicID: "t"}))
}
