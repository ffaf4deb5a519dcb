package memory

import (
	"context"
	"sort"

	"bazarbd/internal/domain/entity"
	"bazarbd/internal/domain/repository"
)

type orderRepository struct {
	orders *table[entity.Order]
}

func NewOrderRepository() repository.OrderRepository {
	return &orderRepository{
		orders: newTable(func(o *entity.Order) *entity.Order {
			c := *o
			c.Payload = make(map[string]interface{}, len(o.Payload))
			for k, v := range o.Payload {
				c.Payload[k] = v
			}
			return &c
		}),
	}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		order.ID = entity.NewID()
	}
	r.orders.insert(order.ID, order)
	return nil
}

func (r *orderRepository) ListByBuyer(ctx context.Context, buyerEmail string) ([]*entity.Order, error) {
	return newestOrders(r.orders.filter(func(o *entity.Order) bool {
		return o.BuyerEmail == buyerEmail
	})), nil
}

func (r *orderRepository) ListAll(ctx context.Context) ([]*entity.Order, error) {
	return newestOrders(r.orders.filter(nil)), nil
}

func newestOrders(orders []*entity.Order) []*entity.Order {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders
}
