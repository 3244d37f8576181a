package entity

import (
	"time"

	"github.com/google/uuid"
)

// Video is a published (or hidden) upload owned by a channel.
type Video struct {
	ID          uuid.UUID  `json:"id"`
	VideoFile   MediaAsset `json:"videoFile"`
	Thumbnail   MediaAsset `json:"thumbnail"`
	OwnerID     uuid.UUID  `json:"owner"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Duration    float64    `json:"duration"` // Seconds.
	Views       int64      `json:"views"`
	IsPublished bool       `json:"isPublished"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// VideoPatch carries the mutable fields of a video. Nil fields are left untouched.
type VideoPatch struct {
	Title       *string
	Description *string
	Thumbnail   *MediaAsset
}

// VideoSortField is a column the feed may be ordered by.
type VideoSortField string

const (
	VideoSortViews     VideoSortField = "views"
	VideoSortCreatedAt VideoSortField = "createdAt"
	VideoSortDuration  VideoSortField = "duration"
	VideoSortTitle     VideoSortField = "title"
)

// ParseVideoSortField maps user input to a sortable column, falling back to views.
func ParseVideoSortField(s string) VideoSortField {
	switch VideoSortField(s) {
	case VideoSortCreatedAt, VideoSortDuration, VideoSortTitle:
		return VideoSortField(s)
	default:
		return VideoSortViews
	}
}

// VideoFeedQuery drives the search feed.
type VideoFeedQuery struct {
	Query    string
	OwnerID  *uuid.UUID // Restrict to one channel.
	ViewerID *uuid.UUID // Lets an owner see their own unpublished videos.
	SortBy   VideoSortField
	SortDesc bool
	Page     Page
}
