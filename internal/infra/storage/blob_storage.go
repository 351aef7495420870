package storage

import (
	"context"

	domainerrors "fishers/internal/domain/errors"
	"fishers/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

type blobStorage struct {
	bucket *blob.Bucket
}

// NewBlobStorage wraps an open bucket. The caller owns the bucket.
func NewBlobStorage(bucket *blob.Bucket) service.FileStorage {
	return &blobStorage{bucket: bucket}
}

func (s *blobStorage) Put(ctx context.Context, key string, data []byte, contentType string) error {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return errors.Wrap(domainerrors.ErrFileStorageFailed, err.Error())
	}

	return nil
}

func (s *blobStorage) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, domainerrors.ErrNotFound.WithDetails("stored file " + key)
		}

		return nil, errors.Wrapf(err, "failed to read %s", key)
	}

	return data, nil
}

// Delete ignores keys that are already gone.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}
