package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bazarbd/internal/domain/entity"
	"bazarbd/internal/domain/repository"
	"bazarbd/pkg/errors"
)

type advertisementRepository struct {
	coll *mongo.Collection
}

func NewAdvertisementRepository(db *mongo.Database) repository.AdvertisementRepository {
	return &advertisementRepository{coll: db.Collection(advertisementsCollection)}
}

func (r *advertisementRepository) Create(ctx context.Context, ad *entity.Advertisement) error {
	if ad.ID == "" {
		ad.ID = entity.NewID()
	}
	if _, err := r.coll.InsertOne(ctx, ad); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.Conflict("Advertisement already exists")
		}
		return errors.Dependency("Failed to create advertisement", err)
	}
	return nil
}

func (r *advertisementRepository) GetByID(ctx context.Context, id string) (*entity.Advertisement, error) {
	var ad entity.Advertisement
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ad); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Advertisement", err)
		}
		return nil, errors.Dependency("Failed to get advertisement", err)
	}
	return &ad, nil
}

func (r *advertisementRepository) List(ctx context.Context, filter repository.AdvertisementFilter) ([]*entity.Advertisement, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.VendorEmail != "" {
		query["vendorEmail"] = filter.VendorEmail
	}

	ads, err := findAll[entity.Advertisement](ctx, r.coll, query, newestFirst("createdAt"))
	if err != nil {
		return nil, errors.Dependency("Failed to list advertisements", err)
	}
	return ads, nil
}

func (r *advertisementRepository) Update(ctx context.Context, id string, update repository.AdvertisementUpdate) error {
	set := bson.M{"updatedAt": update.UpdatedAt}
	if update.AdTitle != nil {
		set["adTitle"] = *update.AdTitle
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.ImageURL != nil {
		set["imageUrl"] = *update.ImageURL
	}
	if update.ImagePublicID != nil {
		set["imagePublicId"] = *update.ImagePublicID
	}
	if update.Status != nil {
		set["status"] = *update.Status
	}

	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return errors.Dependency("Failed to update advertisement", err)
	}
	if res.MatchedCount == 0 {
		return errors.NotFound("Advertisement", nil)
	}
	return nil
}

func (r *advertisementRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Dependency("Failed to delete advertisement", err)
	}
	if res.DeletedCount == 0 {
		return errors.NotFound("Advertisement", nil)
	}
	return nil
}
