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

// likeRepository implements the repository.LikeRepository interface.
type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository is the constructor for likeRepository.
func NewLikeRepository(db *gorm.DB) repository.LikeRepository {
	return &likeRepository{db: db}
}

// Find looks a like up by (subject, likedBy).
func (repo *likeRepository) Find(ctx context.Context, subject entity.LikeSubject, likedBy uuid.UUID) (*entity.Like, error) {
	column, err := likeSubjectColumn(subject.Target)
	if err != nil {
		return nil, err
	}

	var likeM model.LikeModel
	if err := repo.db.WithContext(ctx).
		Where(column+" = ? AND liked_by = ?", subject.ID, likedBy).
		First(&likeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLikeNotFound
		}

		return nil, errors.Wrap(err, "failed to find like")
	}

	return toLikeDomain(&likeM), nil
}

// Create persists a like. A concurrent duplicate surfaces as ErrDuplicateLike.
func (repo *likeRepository) Create(ctx context.Context, like *entity.Like) error {
	likeM := &model.LikeModel{
		VideoID:   like.VideoID,
		CommentID: like.CommentID,
		TweetID:   like.TweetID,
		LikedBy:   like.LikedBy,
	}

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(likeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateLike
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("a like must reference exactly one subject")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("liked subject does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create like")
	}

	like.ID = likeM.ID
	like.CreatedAt = likeM.CreatedAt
	like.UpdatedAt = likeM.UpdatedAt

	return nil
}

func (repo *likeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.LikeModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete like")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLikeNotFound
	}

	return nil
}

func likeSubjectColumn(target entity.LikeTarget) (string, error) {
	switch target {
	case entity.LikeTargetVideo:
		return "video_id", nil
	case entity.LikeTargetComment:
		return "comment_id", nil
	case entity.LikeTargetTweet:
		return "tweet_id", nil
	default:
		return "", errors.Errorf("unknown like target %q", target)
	}
}

func toLikeDomain(data *model.LikeModel) *entity.Like {
	return &entity.Like{
		ID:        data.ID,
		VideoID:   data.VideoID,
		CommentID: data.CommentID,
		TweetID:   data.TweetID,
		LikedBy:   data.LikedBy,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
