package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "mytube/internal/delivery/context"
	"mytube/internal/domain/entity"
	domainerrors "mytube/internal/domain/errors"
	"mytube/internal/domain/repository"
	"mytube/internal/errors"
	"mytube/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

type channelService struct {
	userRepo    repository.UserRepository
	videoRepo   repository.VideoRepository
	historyRepo repository.WatchHistoryRepository
	resolver    repository.RelationshipResolver
	logger      *slog.Logger
}

// ChannelServiceParams holds dependencies for ChannelService, injected by Fx.
type ChannelServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	VideoRepo   repository.VideoRepository
	HistoryRepo repository.WatchHistoryRepository
	Resolver    repository.RelationshipResolver
	Logger      *slog.Logger
}

// NewChannelService is the constructor for channelService.
func NewChannelService(params ChannelServiceParams) usecase.ChannelUsecase {
	return &channelService{
		userRepo:    params.UserRepo,
		videoRepo:   params.VideoRepo,
		historyRepo: params.HistoryRepo,
		resolver:    params.Resolver,
		logger:      params.Logger,
	}
}

func (srv *channelService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Profile assembles the channel page. The counts and the video list are independent
// queries and run concurrently.
func (srv *channelService) Profile(ctx context.Context, username string, viewerID *uuid.UUID) (*entity.ChannelProfile, error) {
	if err := requireFields(field{"username", username}); err != nil {
		return nil, err
	}

	channel, err := srv.userRepo.FindByUsername(ctx, strings.ToLower(strings.TrimSpace(username)))
	if err != nil {
		return nil, translate(err, repository.ErrUserNotFound, domainerrors.ErrChannelNotFound, "failed to find channel")
	}

	profile := &entity.ChannelProfile{
		ID:         channel.ID,
		Username:   channel.Username,
		Fullname:   channel.Fullname,
		Email:      channel.Email,
		Avatar:     channel.Avatar,
		CoverImage: channel.CoverImage,
		CreatedAt:  channel.CreatedAt,
	}
	isOwner := viewerID != nil && *viewerID == channel.ID

	var videos []*entity.VideoWithOwner
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := srv.resolver.CountSubscribers(gctx, channel.ID)
		profile.SubscriberCount = count

		return errors.Wrap(err, "failed to count subscribers")
	})
	g.Go(func() error {
		count, err := srv.resolver.CountSubscriptions(gctx, channel.ID)
		profile.ChannelSubscribedCount = count

		return errors.Wrap(err, "failed to count subscriptions")
	})
	if viewerID != nil && !isOwner {
		g.Go(func() error {
			subscribed, err := srv.resolver.IsSubscribed(gctx, *viewerID, channel.ID)
			profile.IsSubscribed = subscribed

			return errors.Wrap(err, "failed to resolve subscription")
		})
	}
	g.Go(func() error {
		var err error
		videos, err = srv.resolver.ChannelVideos(gctx, channel.ID, isOwner)

		return errors.Wrap(err, "failed to list channel videos")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	profile.Videos = make([]entity.Video, 0, len(videos))
	for _, v := range videos {
		profile.Videos = append(profile.Videos, v.Video)
	}

	return profile, nil
}

func (srv *channelService) ChannelVideos(ctx context.Context, ownerID uuid.UUID) ([]*entity.VideoWithOwner, error) {
	if _, err := srv.userRepo.FindByID(ctx, ownerID); err != nil {
		return nil, translate(err, repository.ErrUserNotFound, domainerrors.ErrChannelNotFound, "failed to find channel")
	}

	videos, err := srv.resolver.ChannelVideos(ctx, ownerID, false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list channel videos")
	}

	return videos, nil
}

func (srv *channelService) WatchHistory(ctx context.Context, userID uuid.UUID) ([]*entity.VideoWithOwner, error) {
	videos, err := srv.resolver.WatchHistory(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve watch history")
	}

	return videos, nil
}

// AddToWatchHistory appends a visible video. Repeating the call leaves one entry.
func (srv *channelService) AddToWatchHistory(ctx context.Context, userID, videoID uuid.UUID) error {
	video, err := srv.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		return translate(err, repository.ErrVideoNotFound, domainerrors.ErrVideoNotFound, "failed to find video")
	}
	if err := ensureVisible(video.IsPublished, video.OwnerID, &userID); err != nil {
		return err
	}

	if err := srv.historyRepo.Add(ctx, userID, videoID); err != nil {
		return translate(err, repository.ErrVideoNotFound, domainerrors.ErrVideoNotFound, "failed to add to watch history")
	}

	srv.log(ctx).Debug("Watch history updated", slog.Any("userID", userID), slog.Any("videoID", videoID))

	return nil
}

func (srv *channelService) RemoveFromWatchHistory(ctx context.Context, userID, videoID uuid.UUID) error {
	if err := srv.historyRepo.Remove(ctx, userID, videoID); err != nil {
		return errors.Wrap(err, "failed to remove from watch history")
	}

	return nil
}
