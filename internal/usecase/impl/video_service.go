package impl

import (
	"context"
	"log/slog"
	"strings"

	"mytube/config"
	deliverycontext "mytube/internal/delivery/context"
	"mytube/internal/domain/entity"
	domainerrors "mytube/internal/domain/errors"
	"mytube/internal/domain/repository"
	"mytube/internal/domain/service"
	"mytube/internal/errors"
	"mytube/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

type videoService struct {
	videoRepo    repository.VideoRepository
	resolver     repository.RelationshipResolver
	media        service.MediaStorage
	assets       *assetReleaser
	defaultLimit int
	maxLimit     int
	logger       *slog.Logger
}

// VideoServiceParams holds dependencies for VideoService, injected by Fx.
type VideoServiceParams struct {
	fx.In

	VideoRepo repository.VideoRepository
	Resolver  repository.RelationshipResolver
	Media     service.MediaStorage
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewVideoService is the constructor for videoService.
func NewVideoService(params VideoServiceParams) usecase.VideoUsecase {
	srv := &videoService{
		videoRepo: params.VideoRepo,
		resolver:  params.Resolver,
		media:     params.Media,
		assets:    newAssetReleaser(params.Media, params.Publisher, params.Logger),
		logger:    params.Logger,
	}
	if params.Config != nil && params.Config.Pagination != nil {
		srv.defaultLimit = params.Config.Pagination.FeedLimit
		srv.maxLimit = params.Config.Pagination.MaxLimit
	}

	return srv
}

func (srv *videoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Feed searches title and description. An empty query is rejected.
func (srv *videoService) Feed(ctx context.Context, input *usecase.FeedInput) ([]*entity.VideoWithOwner, error) {
	if err := requireFields(field{"query", input.Query}); err != nil {
		return nil, err
	}

	query := entity.VideoFeedQuery{
		Query:    strings.TrimSpace(input.Query),
		OwnerID:  input.OwnerID,
		ViewerID: input.ViewerID,
		SortBy:   entity.ParseVideoSortField(input.SortBy),
		SortDesc: isDescending(input.SortType),
		Page:     entity.NewPage(input.Page, input.Limit, srv.defaultLimit, srv.maxLimit),
	}

	videos, err := srv.resolver.VideoFeed(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search videos")
	}

	return videos, nil
}

func isDescending(sortType string) bool {
	switch strings.ToLower(strings.TrimSpace(sortType)) {
	case "desc", "-1", "descending":
		return true
	default:
		return false
	}
}

// Publish uploads the file and the thumbnail concurrently. If either fails, the other is
// released and nothing is stored.
func (srv *videoService) Publish(ctx context.Context, ownerID uuid.UUID, input *usecase.PublishVideoInput) (*entity.Video, error) {
	if err := requireFields(
		field{"title", input.Title},
		field{"description", input.Description},
	); err != nil {
		return nil, err
	}
	if input.VideoPath == "" {
		return nil, domainerrors.ErrMediaFileMissing.WithDetails("videoFile is required")
	}
	if input.ThumbnailPath == "" {
		return nil, domainerrors.ErrMediaFileMissing.WithDetails("thumbnail is required")
	}

	var videoFile, thumbnail *entity.UploadedMedia
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		videoFile, err = srv.media.Upload(gctx, input.VideoPath, entity.MediaKindVideo)

		return err
	})
	g.Go(func() error {
		var err error
		thumbnail, err = srv.media.Upload(gctx, input.ThumbnailPath, entity.MediaKindImage)

		return err
	})
	if err := g.Wait(); err != nil {
		if videoFile != nil {
			srv.assets.release(ctx, &videoFile.MediaAsset, entity.MediaKindVideo, "publish aborted")
		}
		if thumbnail != nil {
			srv.assets.release(ctx, &thumbnail.MediaAsset, entity.MediaKindImage, "publish aborted")
		}

		return nil, uploadError(err, "failed to upload video media")
	}

	video := &entity.Video{
		OwnerID:     ownerID,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		VideoFile:   videoFile.MediaAsset,
		Thumbnail:   thumbnail.MediaAsset,
		Duration:    videoFile.Duration,
		IsPublished: true,
	}

	if err := srv.videoRepo.Create(ctx, video); err != nil {
		srv.assets.release(ctx, &videoFile.MediaAsset, entity.MediaKindVideo, "publish aborted")
		srv.assets.release(ctx, &thumbnail.MediaAsset, entity.MediaKindImage, "publish aborted")

		return nil, errors.Wrap(err, "failed to create video")
	}

	srv.log(ctx).Info("Video published", slog.Any("videoID", video.ID), slog.Any("ownerID", ownerID))

	return video, nil
}

func (srv *videoService) Detail(ctx context.Context, videoID uuid.UUID, viewerID *uuid.UUID) (*entity.VideoDetail, error) {
	detail, err := srv.resolver.VideoDetail(ctx, videoID)
	if err != nil {
		return nil, translate(err, repository.ErrVideoNotFound, domainerrors.ErrVideoNotFound, "failed to load video")
	}

	if err := ensureVisible(detail.IsPublished, detail.OwnerID, viewerID); err != nil {
		return nil, err
	}

	return detail, nil
}

// Update replaces title and description, and the thumbnail when a new one is given.
func (srv *videoService) Update(ctx context.Context, callerID, videoID uuid.UUID, input *usecase.UpdateVideoInput) (*entity.Video, error) {
	if err := requireFields(
		field{"title", input.Title},
		field{"description", input.Description},
	); err != nil {
		return nil, err
	}

	video, err := srv.ownedVideo(ctx, callerID, videoID)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	patch := entity.VideoPatch{Title: &title, Description: &description}

	var uploaded *entity.UploadedMedia
	if input.ThumbnailPath != "" {
		uploaded, err = srv.media.Upload(ctx, input.ThumbnailPath, entity.MediaKindImage)
		if err != nil {
			return nil, uploadError(err, "failed to upload thumbnail")
		}
		patch.Thumbnail = &uploaded.MediaAsset
	}

	updated, err := srv.videoRepo.Update(ctx, videoID, patch)
	if err != nil {
		if uploaded != nil {
			srv.assets.release(ctx, &uploaded.MediaAsset, entity.MediaKindImage, "video update aborted")
		}

		return nil, translate(err, repository.ErrVideoNotFound, domainerrors.ErrVideoNotFound, "failed to update video")
	}

	if uploaded != nil {
		previous := video.Thumbnail
		srv.assets.release(ctx, &previous, entity.MediaKindImage, "thumbnail replaced")
	}

	return updated, nil
}

// Delete removes both stored assets before the record. If either remote delete fails the
// record stays, and a later retry completes since missing objects count as deleted.
func (srv *videoService) Delete(ctx context.Context, callerID, videoID uuid.UUID) error {
	video, err := srv.ownedVideo(ctx, callerID, videoID)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.media.Delete(gctx, video.VideoFile.StorageID, entity.MediaKindVideo)
	})
	g.Go(func() error {
		return srv.media.Delete(gctx, video.Thumbnail.StorageID, entity.MediaKindImage)
	})
	if err := g.Wait(); err != nil {
		srv.log(ctx).Error("Failed to delete video media, keeping record", slog.Any("videoID", videoID), slog.Any("error", err))

		return deleteError(err, "failed to delete video media")
	}

	if err := srv.videoRepo.Delete(ctx, videoID); err != nil {
		return translate(err, repository.ErrVideoNotFound, domainerrors.ErrVideoNotFound, "failed to delete video")
	}

	srv.log(ctx).Info("Video deleted", slog.Any("videoID", videoID))

	return nil
}

func (srv *videoService) TogglePublish(ctx context.Context, callerID, videoID uuid.UUID) (*entity.Video, error) {
	video, err := srv.ownedVideo(ctx, callerID, videoID)
	if err != nil {
		return nil, err
	}

	updated, err := srv.videoRepo.SetPublished(ctx, videoID, !video.IsPublished)
	if err != nil {
		return nil, translate(err, repository.ErrVideoNotFound, domainerrors.ErrVideoNotFound, "failed to toggle publish status")
	}

	return updated, nil
}

func (srv *videoService) IncrementViews(ctx context.Context, videoID uuid.UUID, viewerID *uuid.UUID) (*entity.Video, error) {
	current, err := srv.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		return nil, translate(err, repository.ErrVideoNotFound, domainerrors.ErrVideoNotFound, "failed to find video")
	}
	if err := ensureVisible(current.IsPublished, current.OwnerID, viewerID); err != nil {
		return nil, err
	}

	video, err := srv.videoRepo.IncrementViews(ctx, videoID)
	if err != nil {
		return nil, translate(err, repository.ErrVideoNotFound, domainerrors.ErrVideoNotFound, "failed to increment views")
	}

	return video, nil
}

func (srv *videoService) ownedVideo(ctx context.Context, callerID, videoID uuid.UUID) (*entity.Video, error) {
	video, err := srv.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		return nil, translate(err, repository.ErrVideoNotFound, domainerrors.ErrVideoNotFound, "failed to find video")
	}

	if err := ensureOwner(video.OwnerID, callerID); err != nil {
		return nil, err
	}

	return video, nil
}
