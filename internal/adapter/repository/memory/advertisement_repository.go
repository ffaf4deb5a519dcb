package memory

import (
	"context"
	"sort"

	"bazarbd/internal/domain/entity"
	"bazarbd/internal/domain/repository"
	"bazarbd/pkg/errors"
)

type advertisementRepository struct {
	ads *table[entity.Advertisement]
}

func NewAdvertisementRepository() repository.AdvertisementRepository {
	return &advertisementRepository{ads: newTable[entity.Advertisement](nil)}
}

func (r *advertisementRepository) Create(ctx context.Context, ad *entity.Advertisement) error {
	if ad.ID == "" {
		ad.ID = entity.NewID()
	}
	if !r.ads.insert(ad.ID, ad) {
		return errors.Conflict("Advertisement already exists")
	}
	return nil
}

func (r *advertisementRepository) GetByID(ctx context.Context, id string) (*entity.Advertisement, error) {
	ad, ok := r.ads.get(id)
	if !ok {
		return nil, errors.NotFound("Advertisement", nil)
	}
	return ad, nil
}

func (r *advertisementRepository) List(ctx context.Context, filter repository.AdvertisementFilter) ([]*entity.Advertisement, error) {
	ads := r.ads.filter(func(ad *entity.Advertisement) bool {
		if filter.Status != "" && ad.Status != filter.Status {
			return false
		}
		return filter.VendorEmail == "" || ad.VendorEmail == filter.VendorEmail
	})
	sort.SliceStable(ads, func(i, j int) bool {
		return ads[i].CreatedAt.After(ads[j].CreatedAt)
	})
	return ads, nil
}

func (r *advertisementRepository) Update(ctx context.Context, id string, update repository.AdvertisementUpdate) error {
	ok := r.ads.update(id, func(ad *entity.Advertisement) {
		if update.AdTitle != nil {
			ad.AdTitle = *update.AdTitle
		}
		if update.Description != nil {
			ad.Description = *update.Description
		}
		if update.ImageURL != nil {
			ad.ImageURL = *update.ImageURL
		}
		if update.ImagePublicID != nil {
			ad.ImagePublicID = *update.ImagePublicID
		}
		if update.Status != nil {
			ad.Status = *update.Status
		}
		ad.UpdatedAt = update.UpdatedAt
	})
	if !ok {
		return errors.NotFound("Advertisement", nil)
	}
	return nil
}

func (r *advertisementRepository) Delete(ctx context.Context, id string) error {
	if !r.ads.remove(id) {
		return errors.NotFound("Advertisement", nil)
	}
	return nil
}
