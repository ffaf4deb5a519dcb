package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bazarbd/internal/domain/entity"
	"bazarbd/internal/domain/repository"
	"bazarbd/pkg/errors"
)

type newsletterRepository struct {
	coll *mongo.Collection
}

func NewNewsletterRepository(db *mongo.Database) repository.NewsletterRepository {
	return &newsletterRepository{coll: db.Collection(newsletterCollection)}
}

func (r *newsletterRepository) Exists(ctx context.Context, email string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": entity.SubscriberID(email)})
	if err != nil {
		return false, errors.Dependency("Failed to check subscription", err)
	}
	return n > 0, nil
}

func (r *newsletterRepository) Create(ctx context.Context, subscriber *entity.Subscriber) error {
	if _, err := r.coll.InsertOne(ctx, subscriber); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.Conflict("Email already subscribed")
		}
		return errors.Dependency("Failed to subscribe", err)
	}
	return nil
}

func (r *newsletterRepository) List(ctx context.Context) ([]*entity.Subscriber, error) {
	subscribers, err := findAll[entity.Subscriber](ctx, r.coll, bson.M{}, newestFirst("subscribedAt"))
	if err != nil {
		return nil, errors.Dependency("Failed to list subscribers", err)
	}
	return subscribers, nil
}
