package repository

import (
	"context"

	"bazarbd/internal/domain/entity"
)

type WatchlistRepository interface {
	Exists(ctx context.Context, productID, userEmail string) (bool, error)
	// Create inserts the entry only if its ID is unused and fails with a
	// conflict otherwise.
	Create(ctx context.Context, entry *entity.WatchlistEntry) error
	ListByUser(ctx context.Context, userEmail string) ([]*entity.WatchlistEntry, error)
	ListAll(ctx context.Context) ([]*entity.WatchlistEntry, error)
	Delete(ctx context.Context, id string) error
}
