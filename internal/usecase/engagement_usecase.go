package usecase

import (
	"context"

	"mytube/internal/domain/entity"

	"github.com/google/uuid"
)

// CommentUsecase defines comment operations on videos.
type CommentUsecase interface {
	List(ctx context.Context, viewerID *uuid.UUID, videoID uuid.UUID, page, limit int) ([]*entity.CommentWithOwner, error)
	Add(ctx context.Context, callerID, videoID uuid.UUID, content string) (*entity.Comment, error)
	Update(ctx context.Context, callerID, commentID uuid.UUID, content string) (*entity.Comment, error)
	Delete(ctx context.Context, callerID, commentID uuid.UUID) error
}

// TweetUsecase defines channel post operations.
type TweetUsecase interface {
	Create(ctx context.Context, callerID uuid.UUID, content string) (*entity.Tweet, error)
	ListByUser(ctx context.Context, ownerID uuid.UUID) ([]*entity.TweetWithOwner, error)
	Update(ctx context.Context, callerID, tweetID uuid.UUID, content string) (*entity.Tweet, error)
	Delete(ctx context.Context, callerID, tweetID uuid.UUID) error
}

// LikeUsecase toggles likes. A toggle creates the like when absent and removes it when present.
type LikeUsecase interface {
	Toggle(ctx context.Context, callerID uuid.UUID, subject entity.LikeSubject) (*entity.ToggleResult, error)
	LikedVideos(ctx context.Context, callerID uuid.UUID) ([]*entity.LikedVideo, error)
}

// SubscriptionUsecase toggles and lists channel subscriptions.
type SubscriptionUsecase interface {
	Toggle(ctx context.Context, subscriberID, channelID uuid.UUID) (*entity.ToggleResult, error)
	Subscribers(ctx context.Context, channelID uuid.UUID) ([]*entity.ChannelSummary, error)
	SubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]*entity.ChannelSummary, error)
	Status(ctx context.Context, subscriberID, channelID uuid.UUID) (*entity.SubscriptionStatus, error)
}
