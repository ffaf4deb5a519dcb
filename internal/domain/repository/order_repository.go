package repository

import (
	"context"

	"bazarbd/internal/domain/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	ListByBuyer(ctx context.Context, buyerEmail string) ([]*entity.Order, error)
	ListAll(ctx context.Context) ([]*entity.Order, error)
}
