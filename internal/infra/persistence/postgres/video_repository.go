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

// videoRepository implements the repository.VideoRepository interface.
type videoRepository struct {
	db *gorm.DB
}

// NewVideoRepository is the constructor for videoRepository.
func NewVideoRepository(db *gorm.DB) repository.VideoRepository {
	return &videoRepository{db: db}
}

func (repo *videoRepository) Create(ctx context.Context, video *entity.Video) error {
	videoM := fromVideoDomain(video)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(videoM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid video data")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create video")
	}

	video.ID = videoM.ID
	video.CreatedAt = videoM.CreatedAt
	video.UpdatedAt = videoM.UpdatedAt

	return nil
}

func (repo *videoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Video, error) {
	var videoM model.VideoModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&videoM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVideoNotFound
		}

		return nil, errors.Wrap(err, "failed to find video by ID")
	}

	return toVideoDomain(&videoM), nil
}

func (repo *videoRepository) Update(ctx context.Context, id uuid.UUID, patch entity.VideoPatch) (*entity.Video, error) {
	updates := map[string]any{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Thumbnail != nil {
		updates["thumbnail_url"] = patch.Thumbnail.URL
		updates["thumbnail_storage_id"] = patch.Thumbnail.StorageID
	}
	if len(updates) == 0 {
		return repo.FindByID(ctx, id)
	}

	return repo.updateReturning(ctx, id, updates)
}

func (repo *videoRepository) SetPublished(ctx context.Context, id uuid.UUID, published bool) (*entity.Video, error) {
	return repo.updateReturning(ctx, id, map[string]any{"is_published": published})
}

// IncrementViews uses a single UPDATE so concurrent views are never lost.
func (repo *videoRepository) IncrementViews(ctx context.Context, id uuid.UUID) (*entity.Video, error) {
	return repo.updateReturning(ctx, id, map[string]any{"views": gorm.Expr("views + 1")})
}

func (repo *videoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.VideoModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete video")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVideoNotFound
	}

	return nil
}

func (repo *videoRepository) updateReturning(ctx context.Context, id uuid.UUID, updates map[string]any) (*entity.Video, error) {
	var videoM model.VideoModel
	result := repo.db.WithContext(ctx).
		Model(&videoM).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update video")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrVideoNotFound
	}

	return toVideoDomain(&videoM), nil
}

func toVideoDomain(data *model.VideoModel) *entity.Video {
	if data == nil {
		return nil
	}

	return &entity.Video{
		ID:          data.ID,
		VideoFile:   entity.MediaAsset{URL: data.VideoURL, StorageID: data.VideoStorageID},
		Thumbnail:   entity.MediaAsset{URL: data.ThumbnailURL, StorageID: data.ThumbnailStorageID},
		OwnerID:     data.OwnerID,
		Title:       data.Title,
		Description: data.Description,
		Duration:    data.Duration,
		Views:       data.Views,
		IsPublished: data.IsPublished,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromVideoDomain(data *entity.Video) *model.VideoModel {
	if data == nil {
		return nil
	}

	return &model.VideoModel{
		ID:                 data.ID,
		OwnerID:            data.OwnerID,
		VideoURL:           data.VideoFile.URL,
		VideoStorageID:     data.VideoFile.StorageID,
		ThumbnailURL:       data.Thumbnail.URL,
		ThumbnailStorageID: data.Thumbnail.StorageID,
		Title:              data.Title,
		Description:        data.Description,
		Duration:           data.Duration,
		Views:              data.Views,
		IsPublished:        data.IsPublished,
	}
}
