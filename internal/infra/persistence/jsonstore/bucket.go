// Package jsonstore persists record collections as whole JSON documents in a gocloud.dev blob bucket.
package jsonstore

import (
	"context"
	"log/slog"
	"path/filepath"

	"moosage/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"

	// Bucket URL schemes accepted in storage.bucketURL
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// BucketParams holds dependencies for the document bucket, injected by Fx.
type BucketParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBucket opens the configured bucket and closes it on shutdown.
func NewBucket(params BucketParams) (*blob.Bucket, error) {
	bucket, err := OpenBucket(params.Ctx, params.Config.Storage)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Document bucket opened",
		slog.String("bucket_url", params.Config.Storage.BucketURL),
		slog.String("data_dir", params.Config.Storage.DataDir),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing document bucket")

			return errors.WithStack(bucket.Close())
		},
	})

	return bucket, nil
}

// OpenBucket opens cfg.BucketURL, or a directory bucket at cfg.DataDir when no URL is set.
// The directory is created if missing.
func OpenBucket(ctx context.Context, cfg config.StorageConfig) (*blob.Bucket, error) {
	if cfg.BucketURL != "" {
		bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
		if err != nil {
			return nil, errors.Wrapf(err, "open bucket %s", cfg.BucketURL)
		}

		return bucket, nil
	}

	dir, err := filepath.Abs(cfg.DataDir)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve data dir %s", cfg.DataDir)
	}

	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{CreateDir: true})
	if err != nil {
		return nil, errors.Wrapf(err, "open data dir %s", dir)
	}

	return bucket, nil
}
