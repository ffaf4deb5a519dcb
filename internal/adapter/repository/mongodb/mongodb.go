// Package mongodb implements the repository interfaces on MongoDB. Documents
// use the service-issued string ID as _id, so unique keys are enforced by the
// primary index.
package mongodb

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bazarbd/pkg/errors"
)

const (
	productsCollection       = "products"
	usersCollection          = "users"
	reviewsCollection        = "reviews"
	watchlistCollection      = "watchlist"
	advertisementsCollection = "advertisements"
	ordersCollection         = "purchase"
	newsletterCollection     = "newsletter"
)

// EnsureIndexes creates the secondary indexes the queries below filter on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		productsCollection: {
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: 1}}},
			{Keys: bson.D{{Key: "vendorEmail", Value: 1}}},
			{Keys: bson.D{{Key: "prices.date", Value: 1}}},
		},
		reviewsCollection: {
			{Keys: bson.D{{Key: "productId", Value: 1}, {Key: "date", Value: -1}}},
		},
		watchlistCollection: {
			{Keys: bson.D{{Key: "userEmail", Value: 1}}},
		},
		advertisementsCollection: {
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		ordersCollection: {
			{Keys: bson.D{{Key: "buyerEmail", Value: 1}}},
		},
	}

	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return errors.Dependency("Failed to create indexes on "+name, err)
		}
	}
	return nil
}

// equalFold builds a case-insensitive exact match on a string field.
func equalFold(value string) bson.M {
	return bson.M{"$regex": "^" + regexp.QuoteMeta(value) + "$", "$options": "i"}
}

func contains(value string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(value), "$options": "i"}
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter interface{}, opts ...*options.FindOptions) ([]*T, error) {
	cur, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []*T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func newestFirst(field string) *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: field, Value: -1}, {Key: "_id", Value: 1}})
}
