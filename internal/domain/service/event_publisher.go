package service

import (
	"context"
)

// AssetCleanupEvent asks the media worker to delete an orphaned asset.
type AssetCleanupEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	StorageID string `json:"storage_id"`
	Kind      string `json:"kind"`
	Reason    string `json:"reason,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAssetCleanup queues a failed asset deletion for retry
	PublishAssetCleanup(ctx context.Context, event *AssetCleanupEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
