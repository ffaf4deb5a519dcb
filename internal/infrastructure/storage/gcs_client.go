package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"cloud.google.com/go/storage"
	"github.com/pkg/errors"
	"google.golang.org/api/option"

	"bazarbd/internal/domain/service"
)

type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
	logger     *slog.Logger
}

func NewCloudStorageClient(ctx context.Context, bucketName string, logger *slog.Logger, opts ...option.ClientOption) (*CloudStorageClient, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create storage client")
	}

	storageClient := &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
		logger:     logger,
	}

	if err := storageClient.setBucketCORS(ctx); err != nil {
		logger.Warn("failed to set bucket CORS configuration", "bucket", bucketName, "error", err)
	}

	return storageClient, nil
}

// setBucketCORS lets browsers fetch images straight from the bucket. An
// existing CORS configuration is left alone.
func (c *CloudStorageClient) setBucketCORS(ctx context.Context) error {
	bucket := c.client.Bucket(c.bucketName)

	bucketAttrs, err := bucket.Attrs(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to get bucket attributes")
	}
	if len(bucketAttrs.CORS) > 0 {
		return nil
	}

	_, err = bucket.Update(ctx, storage.BucketAttrsToUpdate{
		CORS: []storage.CORS{{
			MaxAge:          3600,
			Methods:         []string{"GET", "HEAD"},
			Origins:         []string{"*"},
			ResponseHeaders: []string{"Content-Type"},
		}},
	})
	return errors.Wrap(err, "failed to update bucket CORS")
}

func (c *CloudStorageClient) Upload(ctx context.Context, file io.Reader, contentType, folder string) (*service.UploadedImage, error) {
	name := objectName(folder, contentType)

	obj := c.client.Bucket(c.bucketName).Object(name)
	wc := obj.NewWriter(ctx)
	wc.ContentType = contentType
	wc.CacheControl = "public, max-age=86400"

	if _, err := io.Copy(wc, file); err != nil {
		_ = wc.Close()
		return nil, errors.Wrap(err, "failed to copy file to GCS")
	}
	if err := wc.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to close GCS writer")
	}

	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return nil, errors.Wrap(err, "failed to set object ACL")
	}

	return &service.UploadedImage{
		URL:      fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, name),
		PublicID: name,
	}, nil
}

func (c *CloudStorageClient) Delete(ctx context.Context, publicID string) error {
	if err := c.client.Bucket(c.bucketName).Object(publicID).Delete(ctx); err != nil {
		return errors.Wrapf(err, "failed to delete object %s", publicID)
	}
	return nil
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}
