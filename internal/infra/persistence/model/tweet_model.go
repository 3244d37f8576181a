package model

import (
	"time"

	"github.com/google/uuid"
)

// TweetModel mirrors the 'tweets' table.
type TweetModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Content   string     `gorm:"type:text;not null"`
	OwnerID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Owner     *UserModel `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TweetModel) TableName() string {
	return "tweets"
}
