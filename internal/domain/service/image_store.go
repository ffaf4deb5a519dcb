package service

import (
	"context"
	"io"
)

// UploadedImage identifies an object in the image store. PublicID is the key
// to pass to Delete.
type UploadedImage struct {
	URL      string
	PublicID string
}

type ImageStore interface {
	Upload(ctx context.Context, file io.Reader, contentType, folder string) (*UploadedImage, error)
	Delete(ctx context.Context, publicID string) error
	Close() error
}
