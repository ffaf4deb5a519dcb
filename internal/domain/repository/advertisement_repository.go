package repository

import (
	"context"
	"time"

	"bazarbd/internal/domain/entity"
)

type AdvertisementFilter struct {
	Status      string
	VendorEmail string
}

// AdvertisementUpdate holds the fields to overwrite. Nil pointers are left
// untouched.
type AdvertisementUpdate struct {
	AdTitle       *string
	Description   *string
	ImageURL      *string
	ImagePublicID *string
	Status        *string
	UpdatedAt     time.Time
}

type AdvertisementRepository interface {
	Create(ctx context.Context, ad *entity.Advertisement) error
	GetByID(ctx context.Context, id string) (*entity.Advertisement, error)
	List(ctx context.Context, filter AdvertisementFilter) ([]*entity.Advertisement, error)
	Update(ctx context.Context, id string, update AdvertisementUpdate) error
	Delete(ctx context.Context, id string) error
}
