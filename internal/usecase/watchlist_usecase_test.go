package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bazarbd/internal/adapter/repository/memory"
	"bazarbd/internal/domain/entity"
	apperrors "bazarbd/pkg/errors"
	"bazarbd/pkg/logger"
)

func TestWatchlist(t *testing.T) {
	products := memory.NewProductRepository()
	uc := NewWatchlistUseCase(memory.NewWatchlistRepository(), products, logger.Discard())
	ctx := context.Background()

	p := seed(t, products, "Tomato")

	entry, err := uc.AddToWatchlist(ctx, AddToWatchlistInput{ProductID: p.ID, UserEmail: "Buyer@Example.com"})
	require.NoError(t, err)
	assert.Equal(t, "buyer@example.com", entry.UserEmail)
	assert.Equal(t, "Tomato", entry.ItemName)
	assert.Equal(t, "Karwan Bazar", entry.MarketName)
	assert.Equal(t, entity.WatchlistEntryID(p.ID, "buyer@example.com"), entry.ID)

	_, err = uc.AddToWatchlist(ctx, AddToWatchlistInput{ProductID: p.ID, UserEmail: " buyer@EXAMPLE.com"})
	assert.True(t, apperrors.IsConflict(err))

	_, err = uc.AddToWatchlist(ctx, AddToWatchlistInput{ProductID: entity.NewID(), UserEmail: "buyer@example.com"})
	assert.True(t, apperrors.IsNotFound(err))

	_, err = uc.AddToWatchlist(ctx, AddToWatchlistInput{ProductID: p.ID})
	assert.True(t, apperrors.Is(err, "VALIDATION_ERROR"))

	mine, err := uc.GetUserWatchlist(ctx, "BUYER@example.com")
	require.NoError(t, err)
	require.Len(t, mine, 1)

	require.NoError(t, uc.RemoveFromWatchlist(ctx, mine[0].ID))
	assert.True(t, apperrors.IsNotFound(uc.RemoveFromWatchlist(ctx, mine[0].ID)))

	all, err := uc.GetAllWatchlist(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestWatchlistConcurrentAddsKeepOneEntry(t *testing.T) {
	products := memory.NewProductRepository()
	uc := NewWatchlistUseCase(memory.NewWatchlistRepository(), products, logger.Discard())
	ctx := context.Background()
	p := seed(t, products, "Chili")

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := uc.AddToWatchlist(ctx, AddToWatchlistInput{ProductID: p.ID, UserEmail: "buyer@example.com"}); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	all, err := uc.GetAllWatchlist(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestWatchlistNewestFirst(t *testing.T) {
	repo := memory.NewWatchlistRepository()
	uc := NewWatchlistUseCase(repo, memory.NewProductRepository(), logger.Discard())
	ctx := context.Background()

	base := time.Now()
	for name, offset := range map[string]time.Duration{"old": 0, "new": 2 * time.Hour, "mid": time.Hour} {
		require.NoError(t, repo.Create(ctx, &entity.WatchlistEntry{
			ID:        entity.NewID(),
			ProductID: entity.NewID(),
			UserEmail: "a@example.com",
			ItemName:  name,
			Date:      base.Add(offset),
		}))
	}

	entries, err := uc.GetUserWatchlist(ctx, "a@example.com")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, []string{"new", "mid", "old"}, []string{entries[0].ItemName, entries[1].ItemName, entries[2].ItemName})
}
