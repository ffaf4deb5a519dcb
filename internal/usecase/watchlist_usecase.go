package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"bazarbd/internal/domain/entity"
	"bazarbd/internal/domain/repository"
	"bazarbd/pkg/errors"
)

type WatchlistUseCase struct {
	watchlistRepo repository.WatchlistRepository
	productRepo   repository.ProductRepository
	logger        *slog.Logger
}

func NewWatchlistUseCase(
	watchlistRepo repository.WatchlistRepository,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) *WatchlistUseCase {
	return &WatchlistUseCase{
		watchlistRepo: watchlistRepo,
		productRepo:   productRepo,
		logger:        logger,
	}
}

type AddToWatchlistInput struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	UserEmail string `json:"userEmail" validate:"required,email"`
}

// AddToWatchlist stores at most one entry per product and user. The early
// existence check gives a cheap answer; the conditional insert under the
// derived ID settles concurrent adds.
func (u *WatchlistUseCase) AddToWatchlist(ctx context.Context, input AddToWatchlistInput) (*entity.WatchlistEntry, error) {
	productID := strings.TrimSpace(input.ProductID)
	email := entity.NormalizeEmail(input.UserEmail)
	if productID == "" || email == "" {
		return nil, errors.Validation("productId and userEmail are required")
	}

	exists, err := u.watchlistRepo.Exists(ctx, productID, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.Conflict("Product already in watchlist")
	}

	product, err := u.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	entry := &entity.WatchlistEntry{
		ID:         entity.WatchlistEntryID(productID, email),
		ProductID:  productID,
		UserEmail:  email,
		ItemName:   valueOr(product.ItemName, "Unnamed"),
		MarketName: valueOr(product.MarketName, "Unknown"),
		Date:       time.Now(),
	}

	if err := u.watchlistRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	u.logger.Debug("added to watchlist", "productId", productID, "user", email)
	return entry, nil
}

func (u *WatchlistUseCase) GetUserWatchlist(ctx context.Context, userEmail string) ([]*entity.WatchlistEntry, error) {
	email := entity.NormalizeEmail(userEmail)
	if email == "" {
		return nil, errors.Validation("email is required")
	}
	return u.watchlistRepo.ListByUser(ctx, email)
}

func (u *WatchlistUseCase) GetAllWatchlist(ctx context.Context) ([]*entity.WatchlistEntry, error) {
	return u.watchlistRepo.ListAll(ctx)
}

func (u *WatchlistUseCase) RemoveFromWatchlist(ctx context.Context, id string) error {
	return u.watchlistRepo.Delete(ctx, id)
}
