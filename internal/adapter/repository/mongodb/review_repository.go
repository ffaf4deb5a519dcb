package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bazarbd/internal/domain/entity"
	"bazarbd/internal/domain/repository"
	"bazarbd/pkg/errors"
)

type reviewRepository struct {
	coll *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) repository.ReviewRepository {
	return &reviewRepository{coll: db.Collection(reviewsCollection)}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if review.ID == "" {
		review.ID = entity.NewID()
	}
	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		return errors.Dependency("Failed to create review", err)
	}
	return nil
}

func (r *reviewRepository) List(ctx context.Context, filter repository.ReviewFilter) ([]*entity.Review, error) {
	query := bson.M{}
	if filter.ProductID != "" {
		query["productId"] = filter.ProductID
	}
	if filter.Rating != 0 {
		query["rating"] = filter.Rating
	}

	direction := -1
	if filter.Ascending {
		direction = 1
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: direction}, {Key: "_id", Value: 1}})

	reviews, err := findAll[entity.Review](ctx, r.coll, query, opts)
	if err != nil {
		return nil, errors.Dependency("Failed to list reviews", err)
	}
	return reviews, nil
}
