package model

import (
	"time"

	"github.com/google/uuid"
)

// PlaylistModel mirrors the 'playlists' table.
type PlaylistModel struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name                string     `gorm:"type:varchar(255);not null"`
	Description         string     `gorm:"type:text;not null"`
	OwnerID             uuid.UUID  `gorm:"type:uuid;not null;index"`
	Owner               *UserModel `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	CoverImageURL       *string    `gorm:"type:text"`
	CoverImageStorageID *string    `gorm:"type:text"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlaylistModel) TableName() string {
	return "playlists"
}

// PlaylistVideoModel mirrors 'playlist_videos'. Seq keeps insertion order.
type PlaylistVideoModel struct {
	PlaylistID uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Playlist   *PlaylistModel `gorm:"foreignKey:PlaylistID;constraint:OnDelete:CASCADE"`
	VideoID    uuid.UUID      `gorm:"type:uuid;primaryKey;index"`
	Video      *VideoModel    `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE"`
	Seq        int64          `gorm:"autoIncrement;not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlaylistVideoModel) TableName() string {
	return "playlist_videos"
}
