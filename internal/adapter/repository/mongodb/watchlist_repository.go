package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bazarbd/internal/domain/entity"
	"bazarbd/internal/domain/repository"
	"bazarbd/pkg/errors"
)

type watchlistRepository struct {
	coll *mongo.Collection
}

func NewWatchlistRepository(db *mongo.Database) repository.WatchlistRepository {
	return &watchlistRepository{coll: db.Collection(watchlistCollection)}
}

func (r *watchlistRepository) Exists(ctx context.Context, productID, userEmail string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": entity.WatchlistEntryID(productID, userEmail)})
	if err != nil {
		return false, errors.Dependency("Failed to check watchlist", err)
	}
	return n > 0, nil
}

func (r *watchlistRepository) Create(ctx context.Context, entry *entity.WatchlistEntry) error {
	if _, err := r.coll.InsertOne(ctx, entry); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.Conflict("Product already in watchlist")
		}
		return errors.Dependency("Failed to add to watchlist", err)
	}
	return nil
}

func (r *watchlistRepository) ListByUser(ctx context.Context, userEmail string) ([]*entity.WatchlistEntry, error) {
	return r.list(ctx, bson.M{"userEmail": userEmail})
}

func (r *watchlistRepository) ListAll(ctx context.Context) ([]*entity.WatchlistEntry, error) {
	return r.list(ctx, bson.M{})
}

func (r *watchlistRepository) list(ctx context.Context, filter bson.M) ([]*entity.WatchlistEntry, error) {
	entries, err := findAll[entity.WatchlistEntry](ctx, r.coll, filter, newestFirst("date"))
	if err != nil {
		return nil, errors.Dependency("Failed to get watchlist", err)
	}
	return entries, nil
}

func (r *watchlistRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Dependency("Failed to remove from watchlist", err)
	}
	if res.DeletedCount == 0 {
		return errors.NotFound("Watchlist entry", nil)
	}
	return nil
}
