package repository

import (
	"context"

	"github.com/google/uuid"
)

// WatchHistoryRepository maintains the ordered, duplicate-free watch history of a user.
type WatchHistoryRepository interface {
	// Add appends the video. Adding a video already in the history is a no-op.
	Add(ctx context.Context, userID, videoID uuid.UUID) error

	// Remove drops the video. Removing an absent video is a no-op.
	Remove(ctx context.Context, userID, videoID uuid.UUID) error
}
