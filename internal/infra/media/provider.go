package media

import (
	"context"
	"log/slog"

	"mytube/config"
	"mytube/internal/domain/constants"
	"mytube/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StorageParams holds dependencies for MediaStorage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewMediaStorage picks the backend named by media.provider.
func NewMediaStorage(params StorageParams) (service.MediaStorage, error) {
	cfg := params.Config.Media
	logger := params.Logger

	var store objectStore
	var err error

	switch cfg.Provider {
	case "", constants.MediaProviderBlob:
		logger.Info("Using gocloud blob media storage", slog.String("bucket_url", cfg.BucketURL))

		store, err = OpenBlobStore(params.Ctx, cfg.BucketURL)
	case constants.MediaProviderS3:
		logger.Info("Using S3 media storage",
			slog.String("bucket", cfg.S3.Bucket),
			slog.String("region", cfg.S3.Region),
		)

		store, err = NewS3Store(params.Ctx, cfg.S3)
	default:
		return nil, errors.Errorf("unknown media provider: %s", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	var probe service.MediaProbe
	if cfg.Probe.Enabled {
		probe = NewFFProbe(cfg.Probe.Binary)
	}

	delegate := NewDelegate(store, probe, cfg.PublicBaseURL, cfg.RequestTimeout, logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing media storage")

			return delegate.Close()
		},
	})

	return delegate, nil
}

// Module provides the media storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewMediaStorage),
)
