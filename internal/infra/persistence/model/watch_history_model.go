package model

import (
	"time"

	"github.com/google/uuid"
)

// WatchHistoryModel mirrors 'watch_history'. Seq keeps the order videos were added.
type WatchHistoryModel struct {
	UserID    uuid.UUID   `gorm:"type:uuid;primaryKey"`
	User      *UserModel  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	VideoID   uuid.UUID   `gorm:"type:uuid;primaryKey;index"`
	Video     *VideoModel `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE"`
	Seq       int64       `gorm:"autoIncrement;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (WatchHistoryModel) TableName() string {
	return "watch_history"
}
