package model

import (
	"time"

	"github.com/google/uuid"
)

// LikeModel mirrors the 'likes' table. Exactly one subject column is set, and each
// (subject, liked_by) pair is unique. NULL subjects never collide in a unique index.
type LikeModel struct {
	ID        uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VideoID   *uuid.UUID    `gorm:"type:uuid;uniqueIndex:idx_likes_video_liked_by,priority:1"`
	Video     *VideoModel   `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE"`
	CommentID *uuid.UUID    `gorm:"type:uuid;uniqueIndex:idx_likes_comment_liked_by,priority:1"`
	Comment   *CommentModel `gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE"`
	TweetID   *uuid.UUID    `gorm:"type:uuid;uniqueIndex:idx_likes_tweet_liked_by,priority:1"`
	Tweet     *TweetModel   `gorm:"foreignKey:TweetID;constraint:OnDelete:CASCADE"`
	LikedBy   uuid.UUID     `gorm:"type:uuid;not null;index;uniqueIndex:idx_likes_video_liked_by,priority:2;uniqueIndex:idx_likes_comment_liked_by,priority:2;uniqueIndex:idx_likes_tweet_liked_by,priority:2;check:chk_likes_single_subject,num_nonnulls(video_id, comment_id, tweet_id) = 1"`
	Liker     *UserModel    `gorm:"foreignKey:LikedBy;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LikeModel) TableName() string {
	return "likes"
}
