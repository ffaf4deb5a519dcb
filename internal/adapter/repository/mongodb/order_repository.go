package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bazarbd/internal/domain/entity"
	"bazarbd/internal/domain/repository"
	"bazarbd/pkg/errors"
)

type orderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) repository.OrderRepository {
	return &orderRepository{coll: db.Collection(ordersCollection)}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		order.ID = entity.NewID()
	}
	if _, err := r.coll.InsertOne(ctx, order); err != nil {
		return errors.Dependency("Failed to create order", err)
	}
	return nil
}

func (r *orderRepository) ListByBuyer(ctx context.Context, buyerEmail string) ([]*entity.Order, error) {
	return r.list(ctx, bson.M{"buyerEmail": buyerEmail})
}

func (r *orderRepository) ListAll(ctx context.Context) ([]*entity.Order, error) {
	return r.list(ctx, bson.M{})
}

func (r *orderRepository) list(ctx context.Context, filter bson.M) ([]*entity.Order, error) {
	orders, err := findAll[entity.Order](ctx, r.coll, filter, newestFirst("createdAt"))
	if err != nil {
		return nil, errors.Dependency("Failed to list orders", err)
	}
	return orders, nil
}
