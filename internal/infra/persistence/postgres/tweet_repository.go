package postgres

import (
	"context"

	"mytube/internal/domain/entity"
	domainerrors "mytube/internal/domain/errors"
	"mytube/internal/domain/repository"
	"mytube/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type tweetRepository struct {
	db *gorm.DB
}

func NewTweetRepository(db *gorm.DB) repository.TweetRepository {
	return &tweetRepository{db: db}
}

func (repo *tweetRepository) Create(ctx context.Context, tweet *entity.Tweet) error {
	tweetM := &model.TweetModel{
		Content: tweet.Content,
		OwnerID: tweet.OwnerID,
	}

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(tweetM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create tweet")
	}

	tweet.ID = tweetM.ID
	tweet.CreatedAt = tweetM.CreatedAt
	tweet.UpdatedAt = tweetM.UpdatedAt

	return nil
}

func (repo *tweetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tweet, error) {
	var tweetM model.TweetModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&tweetM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTweetNotFound
		}

		return nil, errors.Wrap(err, "failed to find tweet by ID")
	}

	return toTweetDomain(&tweetM), nil
}

func (repo *tweetRepository) UpdateContent(ctx context.Context, id uuid.UUID, content string) (*entity.Tweet, error) {
	var tweetM model.TweetModel
	result := repo.db.WithContext(ctx).
		Model(&tweetM).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update("content", content)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update tweet")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrTweetNotFound
	}

	return toTweetDomain(&tweetM), nil
}

func (repo *tweetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.TweetModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete tweet")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTweetNotFound
	}

	return nil
}

func toTweetDomain(data *model.TweetModel) *entity.Tweet {
	return &entity.Tweet{
		ID:        data.ID,
		Content:   data.Content,
		OwnerID:   data.OwnerID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
