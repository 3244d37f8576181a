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

type playlistRepository struct {
	db *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) repository.PlaylistRepository {
	return &playlistRepository{db: db}
}

func (repo *playlistRepository) Create(ctx context.Context, playlist *entity.Playlist) error {
	playlistM := &model.PlaylistModel{
		Name:        playlist.Name,
		Description: playlist.Description,
		OwnerID:     playlist.OwnerID,
	}
	playlistM.CoverImageURL, playlistM.CoverImageStorageID = fromOptionalAsset(playlist.CoverImage)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(playlistM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create playlist")
	}

	playlist.ID = playlistM.ID
	playlist.CreatedAt = playlistM.CreatedAt
	playlist.UpdatedAt = playlistM.UpdatedAt
	if playlist.VideoIDs == nil {
		playlist.VideoIDs = []uuid.UUID{}
	}

	return nil
}

// FindByID loads the playlist and its member ids in insertion order.
func (repo *playlistRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Playlist, error) {
	var playlistM model.PlaylistModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&playlistM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlaylistNotFound
		}

		return nil, errors.Wrap(err, "failed to find playlist by ID")
	}

	videoIDs := make([]uuid.UUID, 0)
	if err := repo.db.WithContext(ctx).
		Model(&model.PlaylistVideoModel{}).
		Where("playlist_id = ?", id).
		Order("seq ASC").
		Pluck("video_id", &videoIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load playlist videos")
	}

	return toPlaylistDomain(&playlistM, videoIDs), nil
}

func (repo *playlistRepository) Update(ctx context.Context, id uuid.UUID, patch entity.PlaylistPatch) (*entity.Playlist, error) {
	updates := map[string]any{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if len(updates) == 0 {
		return repo.FindByID(ctx, id)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.PlaylistModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update playlist")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrPlaylistNotFound
	}

	return repo.FindByID(ctx, id)
}

func (repo *playlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PlaylistModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete playlist")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlaylistNotFound
	}

	return nil
}

// AddVideo appends the video; the primary key on (playlist_id, video_id) turns repeats into no-ops.
func (repo *playlistRepository) AddVideo(ctx context.Context, playlistID, videoID uuid.UUID) error {
	err := repo.db.WithContext(ctx).Exec(
		`INSERT INTO playlist_videos (playlist_id, video_id, created_at) VALUES (?, ?, NOW())
		 ON CONFLICT (playlist_id, video_id) DO NOTHING`,
		playlistID, videoID,
	).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrVideoNotFound
		}

		return errors.Wrap(err, "failed to add video to playlist")
	}

	return nil
}

func (repo *playlistRepository) RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&model.PlaylistVideoModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to remove video from playlist")
	}

	return nil
}

func toPlaylistDomain(data *model.PlaylistModel, videoIDs []uuid.UUID) *entity.Playlist {
	return &entity.Playlist{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		OwnerID:     data.OwnerID,
		VideoIDs:    videoIDs,
		CoverImage:  toOptionalAsset(data.CoverImageURL, data.CoverImageStorageID),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
