package storage

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"bazarbd/internal/domain/service"
	"bazarbd/internal/infrastructure/firebase"
	"bazarbd/pkg/config"
)

type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured image store and closes it on shutdown.
func New(p Params) (service.ImageStore, error) {
	ctx := context.Background()

	var (
		store service.ImageStore
		err   error
	)
	switch p.Config.ImageStoreDriver {
	case config.ImageDriverGCS:
		opts, optErr := firebase.ClientOptions(p.Config)
		if optErr != nil {
			return nil, optErr
		}
		store, err = NewCloudStorageClient(ctx, p.Config.StorageBucket, p.Logger, opts...)
	default:
		store, err = OpenBlobImageStore(ctx, p.Config.ImageBucketURL, p.Config.ImagePublicBaseURL)
	}
	if err != nil {
		return nil, err
	}

	p.Logger.Info("image store ready", "driver", p.Config.ImageStoreDriver)
	p.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.Wrap(store.Close(), "close image store")
		},
	})
	return store, nil
}
