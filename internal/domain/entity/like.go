package entity

import (
	"time"

	"github.com/google/uuid"
)

// LikeTarget is the kind of thing a like points at.
type LikeTarget string

const (
	LikeTargetVideo   LikeTarget = "video"
	LikeTargetComment LikeTarget = "comment"
	LikeTargetTweet   LikeTarget = "tweet"
)

// LikeSubject identifies exactly one likeable record.
type LikeSubject struct {
	Target LikeTarget
	ID     uuid.UUID
}

// Like exists while LikedBy likes the subject. Exactly one of VideoID, CommentID
// and TweetID is set.
type Like struct {
	ID        uuid.UUID  `json:"id"`
	VideoID   *uuid.UUID `json:"video,omitempty"`
	CommentID *uuid.UUID `json:"comment,omitempty"`
	TweetID   *uuid.UUID `json:"tweet,omitempty"`
	LikedBy   uuid.UUID  `json:"likedBy"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// NewLike builds the like record for a subject.
func NewLike(subject LikeSubject, likedBy uuid.UUID) *Like {
	id := subject.ID
	like := &Like{LikedBy: likedBy}
	switch subject.Target {
	case LikeTargetVideo:
		like.VideoID = &id
	case LikeTargetComment:
		like.CommentID = &id
	case LikeTargetTweet:
		like.TweetID = &id
	}

	return like
}

// ToggleResult reports the state after a toggle.
type ToggleResult struct {
	// Active is true when the toggle created the record, false when it removed it.
	Active bool `json:"active"`
}
