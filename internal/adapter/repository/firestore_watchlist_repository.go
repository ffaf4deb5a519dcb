package repository

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"

	"bazarbd/internal/domain/entity"
	"bazarbd/internal/domain/repository"
	"bazarbd/pkg/errors"
)

type firestoreWatchlistRepository struct {
	client *firestore.Client
}

func NewFirestoreWatchlistRepository(client *firestore.Client) repository.WatchlistRepository {
	return &firestoreWatchlistRepository{client: client}
}

func (r *firestoreWatchlistRepository) Exists(ctx context.Context, productID, userEmail string) (bool, error) {
	id := entity.WatchlistEntryID(productID, userEmail)

	doc, err := r.client.Collection(watchlistCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, errors.Dependency("Failed to check watchlist", err)
	}

	return doc.Exists(), nil
}

func (r *firestoreWatchlistRepository) Create(ctx context.Context, entry *entity.WatchlistEntry) error {
	_, err := r.client.Collection(watchlistCollection).Doc(entry.ID).Create(ctx, entry)
	if err != nil {
		if isAlreadyExists(err) {
			return errors.Conflict("Product already in watchlist")
		}
		return errors.Dependency("Failed to add to watchlist", err)
	}
	return nil
}

func (r *firestoreWatchlistRepository) ListByUser(ctx context.Context, userEmail string) ([]*entity.WatchlistEntry, error) {
	query := r.client.Collection(watchlistCollection).Where("userEmail", "==", userEmail)
	return r.list(ctx, query)
}

func (r *firestoreWatchlistRepository) ListAll(ctx context.Context) ([]*entity.WatchlistEntry, error) {
	return r.list(ctx, r.client.Collection(watchlistCollection).Query)
}

func (r *firestoreWatchlistRepository) list(ctx context.Context, query firestore.Query) ([]*entity.WatchlistEntry, error) {
	entries, err := collect[entity.WatchlistEntry](query.Documents(ctx))
	if err != nil {
		return nil, errors.Dependency("Failed to get watchlist", err)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	return entries, nil
}

func (r *firestoreWatchlistRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(watchlistCollection).Doc(id).Delete(ctx, firestore.Exists)
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("Watchlist entry", err)
		}
		return errors.Dependency("Failed to remove from watchlist", err)
	}
	return nil
}
