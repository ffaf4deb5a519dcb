package repository

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"

	"bazarbd/internal/domain/entity"
	"bazarbd/internal/domain/repository"
	"bazarbd/pkg/errors"
)

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{
		client: client,
	}
}

func (r *firestoreProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		product.ID = entity.NewID()
	}

	_, err := r.client.Collection(productsCollection).Doc(product.ID).Create(ctx, product)
	if err != nil {
		if isAlreadyExists(err) {
			return errors.Conflict("Product already exists")
		}
		return errors.Dependency("Failed to create product", err)
	}

	return nil
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := r.client.Collection(productsCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Dependency("Failed to get product", err)
	}

	var product entity.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, errors.Dependency("Failed to parse product data", err)
	}

	return &product, nil
}

// Search pushes the equality predicates down to Firestore. Category matching
// is case-insensitive and price windows test array elements, neither of which
// Firestore can express, so both run in memory before the page is cut.
func (r *firestoreProductRepository) Search(ctx context.Context, q repository.ProductQuery) ([]*entity.Product, int64, error) {
	query := r.client.Collection(productsCollection).Query
	if q.Status != "" {
		query = query.Where("status", "==", q.Status)
	}
	if q.VendorEmail != "" {
		query = query.Where("vendorEmail", "==", q.VendorEmail)
	}

	products, err := collect[entity.Product](query.Documents(ctx))
	if err != nil {
		return nil, 0, errors.Dependency("Failed to search products", err)
	}

	matched := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if q.Matches(p) {
			matched = append(matched, p)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})

	return q.Window(matched), int64(len(matched)), nil
}

// Update runs read-append-write in a transaction so concurrent price
// additions are not lost.
func (r *firestoreProductRepository) Update(ctx context.Context, id string, update repository.ProductUpdate) error {
	ref := r.client.Collection(productsCollection).Doc(id)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			return err
		}

		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return err
		}

		updates := []firestore.Update{
			{Path: "itemName", Value: update.ItemName},
			{Path: "itemDescription", Value: update.ItemDescription},
			{Path: "marketName", Value: update.MarketName},
			{Path: "productImage", Value: update.ProductImage},
			{Path: "updatedAt", Value: time.Now()},
		}
		if update.NewPrice != nil {
			updates = append(updates, firestore.Update{
				Path:  "prices",
				Value: append(product.Prices, *update.NewPrice),
			})
		}

		return tx.Update(ref, updates)
	})
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("Product", err)
		}
		return errors.Dependency("Failed to update product", err)
	}

	return nil
}

func (r *firestoreProductRepository) Moderate(ctx context.Context, id string, moderation repository.Moderation) error {
	_, err := r.client.Collection(productsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: moderation.Status},
		{Path: "rejectionReason", Value: moderation.RejectionReason},
		{Path: "rejectionFeedback", Value: moderation.RejectionFeedback},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("Product", err)
		}
		return errors.Dependency("Failed to update product status", err)
	}

	return nil
}

func (r *firestoreProductRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(productsCollection).Doc(id).Delete(ctx, firestore.Exists)
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("Product", err)
		}
		return errors.Dependency("Failed to delete product", err)
	}

	return nil
}
