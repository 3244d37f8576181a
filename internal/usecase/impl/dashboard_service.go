package impl

import (
	"context"

	"mytube/internal/domain/entity"
	"mytube/internal/domain/repository"
	"mytube/internal/errors"
	"mytube/internal/usecase"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type dashboardService struct {
	resolver repository.RelationshipResolver
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(resolver repository.RelationshipResolver) usecase.DashboardUsecase {
	return &dashboardService{resolver: resolver}
}

// Stats runs the five aggregates concurrently.
func (srv *dashboardService) Stats(ctx context.Context, ownerID uuid.UUID) (*entity.ChannelStats, error) {
	stats := &entity.ChannelStats{}

	g, gctx := errgroup.WithContext(ctx)
	aggregate := func(target *int64, what string, fn func(context.Context, uuid.UUID) (int64, error)) {
		g.Go(func() error {
			n, err := fn(gctx, ownerID)
			if err != nil {
				return errors.Wrapf(err, "failed to compute %s", what)
			}
			*target = n

			return nil
		})
	}

	aggregate(&stats.TotalVideos, "total videos", srv.resolver.CountChannelVideos)
	aggregate(&stats.TotalViews, "total views", srv.resolver.SumChannelViews)
	aggregate(&stats.TotalLikes, "total likes", srv.resolver.CountChannelVideoLikes)
	aggregate(&stats.TotalSubscribers, "total subscribers", srv.resolver.CountSubscribers)
	aggregate(&stats.TotalSubscribedChannels, "total subscriptions", srv.resolver.CountSubscriptions)

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return stats, nil
}

func (srv *dashboardService) Videos(ctx context.Context, ownerID uuid.UUID) ([]*entity.VideoWithOwner, error) {
	videos, err := srv.resolver.ChannelVideos(ctx, ownerID, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list dashboard videos")
	}

	return videos, nil
}
