package pubsub

import (
	"context"
	"log/slog"

	"mytube/config"
	deliverycontext "mytube/internal/delivery/context"
	"mytube/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher sends cleanup events to a Pub/Sub topic whose push
// subscription targets the media worker.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topic     string
	logger    *slog.Logger
}

// NewGooglePubSubPublisher fails when the topic does not exist.
func NewGooglePubSubPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Pub/Sub client")
	}

	topic := "projects/" + cfg.ProjectID + "/topics/" + cfg.TopicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topic)
	}

	return &googlePubSubPublisher{
		client:    client,
		publisher: client.Publisher(cfg.TopicID),
		topic:     topic,
		logger:    logger,
	}, nil
}

// PublishAssetCleanup blocks until the server acknowledges the message.
func (p *googlePubSubPublisher) PublishAssetCleanup(ctx context.Context, event *service.AssetCleanupEvent) error {
	envelope, err := NewPushEnvelope(event, "")
	if err != nil {
		return err
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       envelope.Message.Data,
		Attributes: envelope.Message.Attributes,
	})
	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "failed to publish to %s", p.topic)
	}

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Info("[GooglePubSub] Cleanup event published",
		slog.String("storage_id", event.StorageID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending messages before closing the client.
func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
