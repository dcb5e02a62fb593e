// Package storage keeps supporting files in a gocloud.dev bucket.
package storage

import (
	"context"
	"log/slog"

	"insureflow/config"
	"insureflow/internal/domain/service"
	"insureflow/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const defaultBucketURL = "mem://"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// BlobStorage implements service.FileStorage on a gocloud.dev bucket.
type BlobStorage struct {
	bucket *blob.Bucket
}

// New opens the bucket named by storage.bucketUrl and closes it on shutdown.
func New(params Params) (service.FileStorage, error) {
	bucketURL := defaultBucketURL
	if params.Config.Storage != nil && params.Config.Storage.BucketURL != "" {
		bucketURL = params.Config.Storage.BucketURL
	}

	storage, err := Open(context.Background(), bucketURL)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Supporting file storage opened", slog.String("bucket_url", bucketURL))

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return storage.Close()
		},
	})

	return storage, nil
}

// Open opens a bucket by URL.
func Open(ctx context.Context, bucketURL string) (*BlobStorage, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	return &BlobStorage{bucket: bucket}, nil
}

func (s *BlobStorage) Put(ctx context.Context, key string, data []byte, contentType string) error {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return errors.Wrapf(err, "failed to write %s", key)
	}

	return nil
}

func (s *BlobStorage) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", key)
	}

	return data, nil
}

func (s *BlobStorage) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}

// Close releases the bucket.
func (s *BlobStorage) Close() error {
	return errors.WithStack(s.bucket.Close())
}
