package usecase

import (
	"context"

	"mytube/internal/domain/entity"

	"github.com/google/uuid"
)

// PlaylistInput carries the editable playlist fields.
type PlaylistInput struct {
	Name        string
	Description string
}

// PlaylistUsecase defines playlist lifecycle and membership operations.
// Membership changes are idempotent.
type PlaylistUsecase interface {
	Create(ctx context.Context, callerID uuid.UUID, input *PlaylistInput) (*entity.Playlist, error)
	Get(ctx context.Context, playlistID uuid.UUID, viewerID *uuid.UUID) (*entity.PlaylistDetail, error)
	ListByUser(ctx context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error)
	Videos(ctx context.Context, playlistID uuid.UUID, viewerID *uuid.UUID) ([]*entity.VideoWithOwner, error)

	// Update applies the non-nil fields of the patch; each applied field must be non-blank.
	Update(ctx context.Context, callerID, playlistID uuid.UUID, patch entity.PlaylistPatch) (*entity.Playlist, error)
	Delete(ctx context.Context, callerID, playlistID uuid.UUID) error

	AddVideo(ctx context.Context, callerID, playlistID, videoID uuid.UUID) (*entity.Playlist, error)
	RemoveVideo(ctx context.Context, callerID, playlistID, videoID uuid.UUID) (*entity.Playlist, error)
}
