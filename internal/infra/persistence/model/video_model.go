package model

import (
	"time"

	"github.com/google/uuid"
)

// VideoModel mirrors the 'videos' table.
type VideoModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OwnerID            uuid.UUID  `gorm:"type:uuid;not null;index"`
	Owner              *UserModel `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	VideoURL           string     `gorm:"type:text;not null"`
	VideoStorageID     string     `gorm:"type:text;not null"`
	ThumbnailURL       string     `gorm:"type:text;not null"`
	ThumbnailStorageID string     `gorm:"type:text;not null"`
	Title              string     `gorm:"type:varchar(255);not null"`
	Description        string     `gorm:"type:text;not null"`
	Duration           float64    `gorm:"type:double precision;not null;default:0"`
	Views              int64      `gorm:"not null;default:0;check:chk_videos_views_non_negative,views >= 0"`
	IsPublished        bool       `gorm:"not null"` // No column default, so an explicit false is written.
	CreatedAt          time.Time  `gorm:"index"`
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (VideoModel) TableName() string {
	return "videos"
}
