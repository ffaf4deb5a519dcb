package repository

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"

	"bazarbd/internal/domain/entity"
	"bazarbd/internal/domain/repository"
	"bazarbd/pkg/errors"
)

type firestoreOrderRepository struct {
	client *firestore.Client
}

func NewFirestoreOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &firestoreOrderRepository{client: client}
}

func (r *firestoreOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		order.ID = entity.NewID()
	}

	_, err := r.client.Collection(ordersCollection).Doc(order.ID).Set(ctx, order)
	if err != nil {
		return errors.Dependency("Failed to create order", err)
	}
	return nil
}

func (r *firestoreOrderRepository) ListByBuyer(ctx context.Context, buyerEmail string) ([]*entity.Order, error) {
	return r.list(ctx, r.client.Collection(ordersCollection).Where("buyerEmail", "==", buyerEmail))
}

func (r *firestoreOrderRepository) ListAll(ctx context.Context) ([]*entity.Order, error) {
	return r.list(ctx, r.client.Collection(ordersCollection).Query)
}

func (r *firestoreOrderRepository) list(ctx context.Context, query firestore.Query) ([]*entity.Order, error) {
	orders, err := collect[entity.Order](query.Documents(ctx))
	if err != nil {
		return nil, errors.Dependency("Failed to list orders", err)
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}
