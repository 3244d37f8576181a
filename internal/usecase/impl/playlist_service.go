package impl

import (
	"context"
	"strings"

	"mytube/internal/domain/entity"
	domainerrors "mytube/internal/domain/errors"
	"mytube/internal/domain/repository"
	"mytube/internal/errors"
	"mytube/internal/usecase"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type playlistService struct {
	playlistRepo repository.PlaylistRepository
	videoRepo    repository.VideoRepository
	userRepo     repository.UserRepository
	resolver     repository.RelationshipResolver
}

// NewPlaylistService is the constructor for playlistService.
func NewPlaylistService(
	playlistRepo repository.PlaylistRepository,
	videoRepo repository.VideoRepository,
	userRepo repository.UserRepository,
	resolver repository.RelationshipResolver,
) usecase.PlaylistUsecase {
	return &playlistService{
		playlistRepo: playlistRepo,
		videoRepo:    videoRepo,
		userRepo:     userRepo,
		resolver:     resolver,
	}
}

func (srv *playlistService) Create(ctx context.Context, callerID uuid.UUID, input *usecase.PlaylistInput) (*entity.Playlist, error) {
	if err := requireFields(
		field{"name", input.Name},
		field{"description", input.Description},
	); err != nil {
		return nil, err
	}

	playlist := &entity.Playlist{
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		OwnerID:     callerID,
		VideoIDs:    []uuid.UUID{},
	}
	if err := srv.playlistRepo.Create(ctx, playlist); err != nil {
		return nil, errors.Wrap(err, "failed to create playlist")
	}

	return playlist, nil
}

// Get resolves the owner and the member videos alongside the playlist.
func (srv *playlistService) Get(ctx context.Context, playlistID uuid.UUID, viewerID *uuid.UUID) (*entity.PlaylistDetail, error) {
	playlist, err := srv.findPlaylist(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	detail := &entity.PlaylistDetail{Playlist: *playlist}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		owner, err := srv.resolver.OwnerSummary(gctx, playlist.OwnerID)
		if err != nil {
			return errors.Wrap(err, "failed to resolve playlist owner")
		}
		detail.Owner = *owner

		return nil
	})
	g.Go(func() error {
		videos, err := srv.resolver.PlaylistVideos(gctx, playlistID, viewerID)
		if err != nil {
			return errors.Wrap(err, "failed to resolve playlist videos")
		}
		detail.Videos = make([]entity.VideoWithOwner, 0, len(videos))
		for _, v := range videos {
			detail.Videos = append(detail.Videos, *v)
		}

		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return detail, nil
}

func (srv *playlistService) ListByUser(ctx context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error) {
	if _, err := srv.userRepo.FindByID(ctx, ownerID); err != nil {
		return nil, translate(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to find user")
	}

	playlists, err := srv.resolver.UserPlaylists(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list playlists")
	}

	return playlists, nil
}

func (srv *playlistService) Videos(ctx context.Context, playlistID uuid.UUID, viewerID *uuid.UUID) ([]*entity.VideoWithOwner, error) {
	if _, err := srv.findPlaylist(ctx, playlistID); err != nil {
		return nil, err
	}

	videos, err := srv.resolver.PlaylistVideos(ctx, playlistID, viewerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list playlist videos")
	}

	return videos, nil
}

func (srv *playlistService) Update(ctx context.Context, callerID, playlistID uuid.UUID, patch entity.PlaylistPatch) (*entity.Playlist, error) {
	if patch.Name == nil && patch.Description == nil {
		return nil, domainerrors.Required("name", "description")
	}

	var fields []field
	if patch.Name != nil {
		fields = append(fields, field{"name", *patch.Name})
		name := strings.TrimSpace(*patch.Name)
		patch.Name = &name
	}
	if patch.Description != nil {
		fields = append(fields, field{"description", *patch.Description})
		description := strings.TrimSpace(*patch.Description)
		patch.Description = &description
	}
	if err := requireFields(fields...); err != nil {
		return nil, err
	}

	if _, err := srv.ownedPlaylist(ctx, callerID, playlistID); err != nil {
		return nil, err
	}

	updated, err := srv.playlistRepo.Update(ctx, playlistID, patch)
	if err != nil {
		return nil, translate(err, repository.ErrPlaylistNotFound, domainerrors.ErrPlaylistNotFound, "failed to update playlist")
	}

	return updated, nil
}

func (srv *playlistService) Delete(ctx context.Context, callerID, playlistID uuid.UUID) error {
	if _, err := srv.ownedPlaylist(ctx, callerID, playlistID); err != nil {
		return err
	}

	if err := srv.playlistRepo.Delete(ctx, playlistID); err != nil {
		return translate(err, repository.ErrPlaylistNotFound, domainerrors.ErrPlaylistNotFound, "failed to delete playlist")
	}

	return nil
}

// AddVideo appends a video the caller can see. An existing member is returned unchanged.
func (srv *playlistService) AddVideo(ctx context.Context, callerID, playlistID, videoID uuid.UUID) (*entity.Playlist, error) {
	playlist, err := srv.ownedPlaylist(ctx, callerID, playlistID)
	if err != nil {
		return nil, err
	}

	video, err := srv.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		return nil, translate(err, repository.ErrVideoNotFound, domainerrors.ErrVideoNotFound, "failed to find video")
	}
	if err := ensureVisible(video.IsPublished, video.OwnerID, &callerID); err != nil {
		return nil, err
	}

	if playlist.Contains(videoID) {
		return playlist, nil
	}

	if err := srv.playlistRepo.AddVideo(ctx, playlistID, videoID); err != nil {
		return nil, translate(err, repository.ErrVideoNotFound, domainerrors.ErrVideoNotFound, "failed to add video")
	}

	return srv.findPlaylist(ctx, playlistID)
}

// RemoveVideo drops the video. Removing a non-member succeeds.
func (srv *playlistService) RemoveVideo(ctx context.Context, callerID, playlistID, videoID uuid.UUID) (*entity.Playlist, error) {
	playlist, err := srv.ownedPlaylist(ctx, callerID, playlistID)
	if err != nil {
		return nil, err
	}

	if !playlist.Contains(videoID) {
		return playlist, nil
	}

	if err := srv.playlistRepo.RemoveVideo(ctx, playlistID, videoID); err != nil {
		return nil, errors.Wrap(err, "failed to remove video")
	}

	return srv.findPlaylist(ctx, playlistID)
}

func (srv *playlistService) findPlaylist(ctx context.Context, playlistID uuid.UUID) (*entity.Playlist, error) {
	playlist, err := srv.playlistRepo.FindByID(ctx, playlistID)
	if err != nil {
		return nil, translate(err, repository.ErrPlaylistNotFound, domainerrors.ErrPlaylistNotFound, "failed to find playlist")
	}

	return playlist, nil
}

func (srv *playlistService) ownedPlaylist(ctx context.Context, callerID, playlistID uuid.UUID) (*entity.Playlist, error) {
	playlist, err := srv.findPlaylist(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	if err := ensureOwner(playlist.OwnerID, callerID); err != nil {
		return nil, err
	}

	return playlist, nil
}
