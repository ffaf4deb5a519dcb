package memory

import (
	"context"
	"time"

	"bazarbd/internal/domain/entity"
	"bazarbd/internal/domain/repository"
	"bazarbd/pkg/errors"
)

type productRepository struct {
	products *table[entity.Product]
}

func NewProductRepository() repository.ProductRepository {
	return &productRepository{
		products: newTable(cloneProduct),
	}
}

func cloneProduct(p *entity.Product) *entity.Product {
	c := *p
	c.Prices = append([]entity.PriceEntry(nil), p.Prices...)
	return &c
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		product.ID = entity.NewID()
	}
	if !r.products.insert(product.ID, product) {
		return errors.Conflict("Product already exists")
	}
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	product, ok := r.products.get(id)
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	return product, nil
}

func (r *productRepository) Search(ctx context.Context, q repository.ProductQuery) ([]*entity.Product, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, errors.Dependency("Failed to search products", err)
	}

	matched := r.products.filter(q.Matches)
	return q.Window(matched), int64(len(matched)), nil
}

func (r *productRepository) Update(ctx context.Context, id string, update repository.ProductUpdate) error {
	ok := r.products.update(id, func(p *entity.Product) {
		p.ItemName = update.ItemName
		p.ItemDescription = update.ItemDescription
		p.MarketName = update.MarketName
		p.ProductImage = update.ProductImage
		if update.NewPrice != nil {
			p.Prices = append(p.Prices, *update.NewPrice)
		}
		p.UpdatedAt = time.Now()
	})
	if !ok {
		return errors.NotFound("Product", nil)
	}
	return nil
}

func (r *productRepository) Moderate(ctx context.Context, id string, moderation repository.Moderation) error {
	ok := r.products.update(id, func(p *entity.Product) {
		p.Status = moderation.Status
		p.RejectionReason = moderation.RejectionReason
		p.RejectionFeedback = moderation.RejectionFeedback
		p.UpdatedAt = time.Now()
	})
	if !ok {
		return errors.NotFound("Product", nil)
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	if !r.products.remove(id) {
		return errors.NotFound("Product", nil)
	}
	return nil
}
