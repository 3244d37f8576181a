package model

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// All lists every table model in dependency order.
func All() []any {
	return []any{
		&UserModel{},
		&VideoModel{},
		&CommentModel{},
		&TweetModel{},
		&LikeModel{},
		&PlaylistModel{},
		&PlaylistVideoModel{},
		&SubscriptionModel{},
		&WatchHistoryModel{},
	}
}

// searchIndexes speed up the case-insensitive feed search.
var searchIndexes = []string{
	`CREATE EXTENSION IF NOT EXISTS pg_trgm`,
	`CREATE INDEX IF NOT EXISTS idx_videos_title_trgm ON videos USING gin (title gin_trgm_ops)`,
	`CREATE INDEX IF NOT EXISTS idx_videos_description_trgm ON videos USING gin (description gin_trgm_ops)`,
}

// AutoMigrate creates or updates the schema.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(All()...); err != nil {
		return errors.Wrap(err, "auto migrate")
	}

	for _, stmt := range searchIndexes {
		if err := db.Exec(stmt).Error; err != nil {
			return errors.Wrapf(err, "exec %q", stmt)
		}
	}

	return nil
}
