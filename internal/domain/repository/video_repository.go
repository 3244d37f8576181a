package repository

import (
	"context"

	"mytube/internal/domain/entity"
	"mytube/internal/errors"

	"github.com/google/uuid"
)

// ErrVideoNotFound is returned when a video id does not resolve.
var ErrVideoNotFound = errors.New("video not found")

// VideoRepository persists videos.
type VideoRepository interface {
	Create(ctx context.Context, video *entity.Video) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Video, error)

	// Update applies the patch and returns the updated video.
	Update(ctx context.Context, id uuid.UUID, patch entity.VideoPatch) (*entity.Video, error)

	// SetPublished sets the publish flag and returns the updated video.
	SetPublished(ctx context.Context, id uuid.UUID, published bool) (*entity.Video, error)

	// IncrementViews atomically adds one view and returns the updated video.
	IncrementViews(ctx context.Context, id uuid.UUID) (*entity.Video, error)

	// Delete removes the video. Playlist membership, watch history, likes and
	// comments referencing it are removed by the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
