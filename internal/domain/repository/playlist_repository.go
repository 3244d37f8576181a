package repository

import (
	"context"

	"mytube/internal/domain/entity"
	"mytube/internal/errors"

	"github.com/google/uuid"
)

var ErrPlaylistNotFound = errors.New("playlist not found")

// PlaylistRepository persists playlists and their ordered membership.
type PlaylistRepository interface {
	Create(ctx context.Context, playlist *entity.Playlist) error

	// FindByID returns the playlist with VideoIDs in insertion order.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Playlist, error)

	Update(ctx context.Context, id uuid.UUID, patch entity.PlaylistPatch) (*entity.Playlist, error)

	Delete(ctx context.Context, id uuid.UUID) error

	// AddVideo appends the video. Adding an existing member is a no-op.
	AddVideo(ctx context.Context, playlistID, videoID uuid.UUID) error

	// RemoveVideo drops the video. Removing a non-member is a no-op.
	RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID) error
}
