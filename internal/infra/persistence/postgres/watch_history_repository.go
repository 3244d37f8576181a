package postgres

import (
	"context"

	"mytube/internal/domain/repository"
	"mytube/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type watchHistoryRepository struct {
	db *gorm.DB
}

func NewWatchHistoryRepository(db *gorm.DB) repository.WatchHistoryRepository {
	return &watchHistoryRepository{db: db}
}

// Add keeps the first position of a video; re-watching does not move it.
func (repo *watchHistoryRepository) Add(ctx context.Context, userID, videoID uuid.UUID) error {
	err := repo.db.WithContext(ctx).Exec(
		`INSERT INTO watch_history (user_id, video_id, created_at) VALUES (?, ?, NOW())
		 ON CONFLICT (user_id, video_id) DO NOTHING`,
		userID, videoID,
	).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrVideoNotFound
		}

		return errors.Wrap(err, "failed to add to watch history")
	}

	return nil
}

func (repo *watchHistoryRepository) Remove(ctx context.Context, userID, videoID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND video_id = ?", userID, videoID).
		Delete(&model.WatchHistoryModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to remove from watch history")
	}

	return nil
}
