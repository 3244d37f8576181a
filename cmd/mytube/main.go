package main

import (
	"context"
	"log/slog"
	"os"

	"mytube/config"
	"mytube/internal/delivery"
	"mytube/internal/delivery/api"
	"mytube/internal/delivery/api/middleware"
	"mytube/internal/delivery/api/router/handler"
	"mytube/internal/infra/auth"
	logs "mytube/internal/infra/log"
	"mytube/internal/infra/media"
	"mytube/internal/infra/persistence/postgres"
	"mytube/internal/infra/pubsub"
	"mytube/internal/infra/ratelimit"
	"mytube/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		media.Module,
		pubsub.Module,
		ratelimit.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewVideoRepository,
			postgres.NewCommentRepository,
			postgres.NewLikeRepository,
			postgres.NewTweetRepository,
			postgres.NewPlaylistRepository,
			postgres.NewSubscriptionRepository,
			postgres.NewWatchHistoryRepository,
			postgres.NewRelationshipResolver,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewChannelService,
			impl.NewDashboardService,
			impl.NewVideoService,
			impl.NewCommentService,
			impl.NewTweetService,
			impl.NewLikeService,
			impl.NewSubscriptionService,
			impl.NewPlaylistService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewVideoHandler,
			handler.NewCommentHandler,
			handler.NewLikeHandler,
			handler.NewTweetHandler,
			handler.NewSubscriptionHandler,
			handler.NewPlaylistHandler,
			handler.NewDashboardHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
