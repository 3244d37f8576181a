package entity

import (
	"time"

	"github.com/google/uuid"
)

// The types below are read models assembled by joins. They are never written back.

// OwnerSummary is the public face of a channel attached to content it owns.
type OwnerSummary struct {
	ID         uuid.UUID   `json:"id"`
	Username   string      `json:"username"`
	Fullname   string      `json:"fullname"`
	Avatar     MediaAsset  `json:"avatar"`
	CoverImage *MediaAsset `json:"coverImage,omitempty"`
}

// VideoWithOwner is a video with its owner's summary.
type VideoWithOwner struct {
	Video
	Owner OwnerSummary `json:"owner"`
}

// VideoDetail is the single-video view.
type VideoDetail struct {
	VideoWithOwner
	Likes int64 `json:"likes"`
}

// CommentOwner is the slimmer summary used on comments.
type CommentOwner struct {
	ID       uuid.UUID  `json:"id"`
	Fullname string     `json:"fullname"`
	Avatar   MediaAsset `json:"avatar"`
}

// CommentWithOwner is a comment with its author.
type CommentWithOwner struct {
	Comment
	Owner CommentOwner `json:"owner"`
}

// TweetWithOwner is a tweet with its author.
type TweetWithOwner struct {
	Tweet
	Owner OwnerSummary `json:"owner"`
}

// ChannelSummary is one entry in a subscriber or subscription list.
type ChannelSummary struct {
	ID           uuid.UUID   `json:"id"`
	Username     string      `json:"username"`
	Fullname     string      `json:"fullname"`
	Email        string      `json:"email"`
	Avatar       MediaAsset  `json:"avatar"`
	CoverImage   *MediaAsset `json:"coverImage,omitempty"`
	SubscribedAt time.Time   `json:"subscribedAt"`
}

// ChannelProfile is the public channel page for a username.
type ChannelProfile struct {
	ID                     uuid.UUID   `json:"id"`
	Username               string      `json:"username"`
	Fullname               string      `json:"fullname"`
	Email                  string      `json:"email"`
	Avatar                 MediaAsset  `json:"avatar"`
	CoverImage             *MediaAsset `json:"coverImage,omitempty"`
	SubscriberCount        int64       `json:"subscriberCount"`
	ChannelSubscribedCount int64       `json:"channelSubscribedCount"`
	IsSubscribed           bool        `json:"isSubscribed"`
	Videos                 []Video     `json:"videos"`
	CreatedAt              time.Time   `json:"createdAt"`
}

// ChannelStats backs the owner dashboard.
type ChannelStats struct {
	TotalVideos             int64 `json:"totalVideos"`
	TotalViews              int64 `json:"totalViews"`
	TotalLikes              int64 `json:"totalLikes"`
	TotalSubscribers        int64 `json:"totalSubscribers"`
	TotalSubscribedChannels int64 `json:"totalSubscribedChannels"`
}

// LikedVideo is one entry of the caller's liked videos.
type LikedVideo struct {
	LikeID  uuid.UUID      `json:"likeId"`
	LikedAt time.Time      `json:"likedAt"`
	Video   VideoWithOwner `json:"video"`
}

// PlaylistDetail is a playlist with its videos resolved.
type PlaylistDetail struct {
	Playlist
	Owner  OwnerSummary     `json:"owner"`
	Videos []VideoWithOwner `json:"videos"`
}
