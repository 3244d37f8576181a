package usecase

import (
	"context"

	"mytube/internal/domain/entity"

	"github.com/google/uuid"
)

// ChannelUsecase serves the public channel views and the caller's watch history.
type ChannelUsecase interface {
	// Profile resolves a channel by username. viewerID is nil for anonymous callers.
	Profile(ctx context.Context, username string, viewerID *uuid.UUID) (*entity.ChannelProfile, error)

	// ChannelVideos lists the published videos of a channel.
	ChannelVideos(ctx context.Context, ownerID uuid.UUID) ([]*entity.VideoWithOwner, error)

	WatchHistory(ctx context.Context, userID uuid.UUID) ([]*entity.VideoWithOwner, error)
	AddToWatchHistory(ctx context.Context, userID, videoID uuid.UUID) error
	RemoveFromWatchHistory(ctx context.Context, userID, videoID uuid.UUID) error
}

// DashboardUsecase serves the owner's view of their own channel.
type DashboardUsecase interface {
	Stats(ctx context.Context, ownerID uuid.UUID) (*entity.ChannelStats, error)

	// Videos lists every video of the owner, unpublished ones included.
	Videos(ctx context.Context, ownerID uuid.UUID) ([]*entity.VideoWithOwner, error)
}
