package usecase

import (
	"context"

	"mytube/internal/domain/entity"

	"github.com/google/uuid"
)

// FeedInput is the raw search request. Paging and sorting are normalized by the usecase.
type FeedInput struct {
	Query    string
	OwnerID  *uuid.UUID
	ViewerID *uuid.UUID
	SortBy   string
	SortType string // "asc", "desc", "1" or "-1"; ascending when empty.
	Page     int
	Limit    int
}

// PublishVideoInput carries the metadata and the local files of a new video.
type PublishVideoInput struct {
	Title         string
	Description   string
	VideoPath     string
	ThumbnailPath string
}

// UpdateVideoInput replaces title and description and, when ThumbnailPath is set, the thumbnail.
type UpdateVideoInput struct {
	Title         string
	Description   string
	ThumbnailPath string
}

// VideoUsecase defines the video lifecycle and the feed.
type VideoUsecase interface {
	Feed(ctx context.Context, input *FeedInput) ([]*entity.VideoWithOwner, error)
	Publish(ctx context.Context, ownerID uuid.UUID, input *PublishVideoInput) (*entity.Video, error)

	// Detail hides unpublished videos from everyone but their owner.
	Detail(ctx context.Context, videoID uuid.UUID, viewerID *uuid.UUID) (*entity.VideoDetail, error)

	Update(ctx context.Context, callerID, videoID uuid.UUID, input *UpdateVideoInput) (*entity.Video, error)

	// Delete removes the stored media first and the record only once both are gone.
	Delete(ctx context.Context, callerID, videoID uuid.UUID) error

	TogglePublish(ctx context.Context, callerID, videoID uuid.UUID) (*entity.Video, error)
	IncrementViews(ctx context.Context, videoID uuid.UUID, viewerID *uuid.UUID) (*entity.Video, error)
}
