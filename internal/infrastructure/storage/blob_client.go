package storage

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"

	"bazarbd/internal/domain/service"
)

// BlobImageStore keeps images in any gocloud.dev bucket (mem://, file://,
// gs://) and serves them from publicBaseURL.
type BlobImageStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

func NewBlobImageStore(bucket *blob.Bucket, publicBaseURL string) *BlobImageStore {
	return &BlobImageStore{
		bucket:        bucket,
		publicBaseURL: publicBaseURL,
	}
}

func OpenBlobImageStore(ctx context.Context, bucketURL, publicBaseURL string) (*BlobImageStore, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}
	return NewBlobImageStore(bucket, publicBaseURL), nil
}

func (s *BlobImageStore) Upload(ctx context.Context, file io.Reader, contentType, folder string) (*service.UploadedImage, error) {
	key := objectName(folder, contentType)

	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=86400",
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open blob writer")
	}

	if _, err := io.Copy(w, file); err != nil {
		_ = w.Close()
		return nil, errors.Wrap(err, "failed to write blob")
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to close blob writer")
	}

	return &service.UploadedImage{
		URL:      s.publicBaseURL + "/" + key,
		PublicID: key,
	}, nil
}

func (s *BlobImageStore) Delete(ctx context.Context, publicID string) error {
	if err := s.bucket.Delete(ctx, publicID); err != nil {
		return errors.Wrapf(err, "failed to delete blob %s", publicID)
	}
	return nil
}

func (s *BlobImageStore) Close() error {
	return s.bucket.Close()
}
