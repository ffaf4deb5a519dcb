package repository

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"

	"bazarbd/internal/domain/entity"
	"bazarbd/internal/domain/repository"
	"bazarbd/pkg/errors"
)

type firestoreAdvertisementRepository struct {
	client *firestore.Client
}

func NewFirestoreAdvertisementRepository(client *firestore.Client) repository.AdvertisementRepository {
	return &firestoreAdvertisementRepository{client: client}
}

func (r *firestoreAdvertisementRepository) Create(ctx context.Context, ad *entity.Advertisement) error {
	if ad.ID == "" {
		ad.ID = entity.NewID()
	}

	_, err := r.client.Collection(advertisementsCollection).Doc(ad.ID).Create(ctx, ad)
	if err != nil {
		if isAlreadyExists(err) {
			return errors.Conflict("Advertisement already exists")
		}
		return errors.Dependency("Failed to create advertisement", err)
	}
	return nil
}

func (r *firestoreAdvertisementRepository) GetByID(ctx context.Context, id string) (*entity.Advertisement, error) {
	doc, err := r.client.Collection(advertisementsCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Advertisement", err)
		}
		return nil, errors.Dependency("Failed to get advertisement", err)
	}

	var ad entity.Advertisement
	if err := doc.DataTo(&ad); err != nil {
		return nil, errors.Dependency("Failed to parse advertisement data", err)
	}
	return &ad, nil
}

func (r *firestoreAdvertisementRepository) List(ctx context.Context, filter repository.AdvertisementFilter) ([]*entity.Advertisement, error) {
	query := r.client.Collection(advertisementsCollection).Query
	if filter.Status != "" {
		query = query.Where("status", "==", filter.Status)
	}
	if filter.VendorEmail != "" {
		query = query.Where("vendorEmail", "==", filter.VendorEmail)
	}

	ads, err := collect[entity.Advertisement](query.Documents(ctx))
	if err != nil {
		return nil, errors.Dependency("Failed to list advertisements", err)
	}

	sort.SliceStable(ads, func(i, j int) bool {
		return ads[i].CreatedAt.After(ads[j].CreatedAt)
	})
	return ads, nil
}

func (r *firestoreAdvertisementRepository) Update(ctx context.Context, id string, update repository.AdvertisementUpdate) error {
	var updates []firestore.Update
	if update.AdTitle != nil {
		updates = append(updates, firestore.Update{Path: "adTitle", Value: *update.AdTitle})
	}
	if update.Description != nil {
		updates = append(updates, firestore.Update{Path: "description", Value: *update.Description})
	}
	if update.ImageURL != nil {
		updates = append(updates, firestore.Update{Path: "imageUrl", Value: *update.ImageURL})
	}
	if update.ImagePublicID != nil {
		updates = append(updates, firestore.Update{Path: "imagePublicId", Value: *update.ImagePublicID})
	}
	if update.Status != nil {
		updates = append(updates, firestore.Update{Path: "status", Value: *update.Status})
	}
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: update.UpdatedAt})

	_, err := r.client.Collection(advertisementsCollection).Doc(id).Update(ctx, updates)
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("Advertisement", err)
		}
		return errors.Dependency("Failed to update advertisement", err)
	}
	return nil
}

func (r *firestoreAdvertisementRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(advertisementsCollection).Doc(id).Delete(ctx, firestore.Exists)
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("Advertisement", err)
		}
		return errors.Dependency("Failed to delete advertisement", err)
	}
	return nil
}
