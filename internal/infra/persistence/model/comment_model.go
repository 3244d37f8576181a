package model

import (
	"time"

	"github.com/google/uuid"
)

// CommentModel mirrors the 'comments' table.
type CommentModel struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Content   string      `gorm:"type:text;not null"`
	VideoID   uuid.UUID   `gorm:"type:uuid;not null;index:idx_comments_video_created,priority:1"`
	Video     *VideoModel `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE"`
	OwnerID   uuid.UUID   `gorm:"type:uuid;not null;index"`
	Owner     *UserModel  `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time   `gorm:"index:idx_comments_video_created,priority:2"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}
