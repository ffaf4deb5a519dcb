package memory

import (
	"context"
	"sort"

	"bazarbd/internal/domain/entity"
	"bazarbd/internal/domain/repository"
	"bazarbd/pkg/errors"
)

type watchlistRepository struct {
	entries *table[entity.WatchlistEntry]
}

func NewWatchlistRepository() repository.WatchlistRepository {
	return &watchlistRepository{entries: newTable[entity.WatchlistEntry](nil)}
}

func (r *watchlistRepository) Exists(ctx context.Context, productID, userEmail string) (bool, error) {
	return r.entries.has(entity.WatchlistEntryID(productID, userEmail)), nil
}

func (r *watchlistRepository) Create(ctx context.Context, entry *entity.WatchlistEntry) error {
	if !r.entries.insert(entry.ID, entry) {
		return errors.Conflict("Product already in watchlist")
	}
	return nil
}

func (r *watchlistRepository) ListByUser(ctx context.Context, userEmail string) ([]*entity.WatchlistEntry, error) {
	entries := r.entries.filter(func(e *entity.WatchlistEntry) bool {
		return e.UserEmail == userEmail
	})
	newestFirst(entries)
	return entries, nil
}

func (r *watchlistRepository) ListAll(ctx context.Context) ([]*entity.WatchlistEntry, error) {
	entries := r.entries.filter(nil)
	newestFirst(entries)
	return entries, nil
}

func (r *watchlistRepository) Delete(ctx context.Context, id string) error {
	if !r.entries.remove(id) {
		return errors.NotFound("Watchlist entry", nil)
	}
	return nil
}

func newestFirst(entries []*entity.WatchlistEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
}
