// Package storage keeps uploaded files in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"log/slog"

	"fishers/config"
	"fishers/internal/domain/lifecycle"
	"fishers/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
)

// ProviderParams holds dependencies for FileStorage, injected by Fx
type ProviderParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewFileStorage opens the configured bucket and closes it on shutdown.
func NewFileStorage(params ProviderParams) (service.FileStorage, error) {
	bucketURL := params.Config.Storage.BucketURL

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Logger.Info("File storage bucket opened", slog.String("url", bucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobStorage(bucket), nil
}
