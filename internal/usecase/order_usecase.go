package usecase

import (
	"context"
	"time"

	"bazarbd/internal/domain/entity"
	"bazarbd/internal/domain/repository"
	"bazarbd/pkg/errors"
)

type OrderUseCase struct {
	orderRepo repository.OrderRepository
}

func NewOrderUseCase(orderRepo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo}
}

// PlaceOrder stores the checkout payload as sent. The payload must name the
// buyer in buyerEmail.
func (uc *OrderUseCase) PlaceOrder(ctx context.Context, payload map[string]interface{}) (*entity.Order, error) {
	email, _ := payload["buyerEmail"].(string)
	email = entity.NormalizeEmail(email)
	if email == "" {
		return nil, errors.Validation("buyerEmail is required")
	}
	payload["buyerEmail"] = email

	order := &entity.Order{
		ID:         entity.NewID(),
		BuyerEmail: email,
		Payload:    payload,
		CreatedAt:  time.Now(),
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (uc *OrderUseCase) ListByBuyer(ctx context.Context, buyerEmail string) ([]*entity.Order, error) {
	email := entity.NormalizeEmail(buyerEmail)
	if email == "" {
		return nil, errors.Validation("email query is required")
	}
	return uc.orderRepo.ListByBuyer(ctx, email)
}

func (uc *OrderUseCase) ListAll(ctx context.Context) ([]*entity.Order, error) {
	return uc.orderRepo.ListAll(ctx)
}
