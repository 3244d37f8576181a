package repository

import (
	"context"

	"mytube/internal/domain/entity"

	"github.com/google/uuid"
)

// RelationshipResolver answers the read-side questions that join several tables.
// Lists come back empty rather than failing when nothing matches.
type RelationshipResolver interface {
	// VideoFeed searches title or description case-insensitively and pages the result.
	VideoFeed(ctx context.Context, query entity.VideoFeedQuery) ([]*entity.VideoWithOwner, error)

	// VideoDetail returns ErrVideoNotFound when the id does not resolve.
	VideoDetail(ctx context.Context, videoID uuid.UUID) (*entity.VideoDetail, error)

	// ChannelVideos lists a channel's videos, newest first.
	ChannelVideos(ctx context.Context, ownerID uuid.UUID, includeUnpublished bool) ([]*entity.VideoWithOwner, error)

	// WatchHistory lists the user's watched videos in stored order.
	WatchHistory(ctx context.Context, userID uuid.UUID) ([]*entity.VideoWithOwner, error)

	ChannelSubscribers(ctx context.Context, channelID uuid.UUID) ([]*entity.ChannelSummary, error)
	SubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]*entity.ChannelSummary, error)

	// LikedVideos lists videos the user liked, most recent like first.
	LikedVideos(ctx context.Context, userID uuid.UUID) ([]*entity.LikedVideo, error)

	VideoComments(ctx context.Context, videoID uuid.UUID, page entity.Page) ([]*entity.CommentWithOwner, error)

	UserTweets(ctx context.Context, ownerID uuid.UUID) ([]*entity.TweetWithOwner, error)

	UserPlaylists(ctx context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error)

	// PlaylistVideos lists member videos in playlist order. Unpublished members are only
	// included for their owner.
	PlaylistVideos(ctx context.Context, playlistID uuid.UUID, viewerID *uuid.UUID) ([]*entity.VideoWithOwner, error)

	OwnerSummary(ctx context.Context, userID uuid.UUID) (*entity.OwnerSummary, error)

	// Aggregates used by the channel profile and the dashboard.
	CountChannelVideos(ctx context.Context, ownerID uuid.UUID) (int64, error)
	SumChannelViews(ctx context.Context, ownerID uuid.UUID) (int64, error)
	CountChannelVideoLikes(ctx context.Context, ownerID uuid.UUID) (int64, error)
	CountSubscribers(ctx context.Context, channelID uuid.UUID) (int64, error)
	CountSubscriptions(ctx context.Context, subscriberID uuid.UUID) (int64, error)
	IsSubscribed(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error)
}
