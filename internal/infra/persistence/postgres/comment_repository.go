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

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentM := &model.CommentModel{
		Content: comment.Content,
		VideoID: comment.VideoID,
		OwnerID: comment.OwnerID,
	}

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrVideoNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt
	comment.UpdatedAt = commentM.UpdatedAt

	return nil
}

func (repo *commentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	var commentM model.CommentModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&commentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment by ID")
	}

	return toCommentDomain(&commentM), nil
}

func (repo *commentRepository) UpdateContent(ctx context.Context, id uuid.UUID, content string) (*entity.Comment, error) {
	var commentM model.CommentModel
	result := repo.db.WithContext(ctx).
		Model(&commentM).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update("content", content)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update comment")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrCommentNotFound
	}

	return toCommentDomain(&commentM), nil
}

func (repo *commentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CommentModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete comment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

func toCommentDomain(data *model.CommentModel) *entity.Comment {
	return &entity.Comment{
		ID:        data.ID,
		Content:   data.Content,
		VideoID:   data.VideoID,
		OwnerID:   data.OwnerID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
