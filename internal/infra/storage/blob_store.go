// Package storage provides the blob-backed implementation of the domain
// MediaStore for uploaded food item images.
package storage

import (
	"context"
	"io"
	"log/slog"

	"foodbridge/config"
	"foodbridge/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Registered bucket drivers. fileblob serves local development,
	// gcsblob serves production.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

type blobStore struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// StoreParams holds dependencies for MediaStore, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobStore opens the configured bucket. A missing storage config is an
// error; media upload is an advertised capability of the posting API.
func NewBlobStore(params StoreParams) (service.MediaStore, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket url must be provided")
	}

	bucket, err := blob.OpenBucket(params.Ctx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", params.Config.Storage.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStore{
		bucket: bucket,
		logger: params.Logger,
	}, nil
}

// Save streams the content into the bucket under the given key and returns
// the key as the stored reference.
func (s *blobStore) Save(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()

		return "", errors.Wrapf(err, "failed to write blob %s", key)
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to finalize blob %s", key)
	}

	s.logger.Debug("Stored media blob", "key", key, "contentType", contentType)

	return key, nil
}

// Open returns a reader over a previously stored blob and its content type.
func (s *blobStore) Open(ctx context.Context, ref string) (io.ReadCloser, string, error) {
	r, err := s.bucket.NewReader(ctx, ref, nil)
	if err != nil {
		return nil, "", errors.Wrapf(err, "failed to open blob %s", ref)
	}

	return r, r.ContentType(), nil
}
