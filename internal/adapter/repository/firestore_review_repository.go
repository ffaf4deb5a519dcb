package repository

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"

	"bazarbd/internal/domain/entity"
	"bazarbd/internal/domain/repository"
	"bazarbd/pkg/errors"
)

type firestoreReviewRepository struct {
	client *firestore.Client
}

func NewFirestoreReviewRepository(client *firestore.Client) repository.ReviewRepository {
	return &firestoreReviewRepository{
		client: client,
	}
}

func (r *firestoreReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if review.ID == "" {
		review.ID = entity.NewID()
	}

	_, err := r.client.Collection(reviewsCollection).Doc(review.ID).Set(ctx, review)
	if err != nil {
		return errors.Dependency("Failed to create review", err)
	}

	return nil
}

func (r *firestoreReviewRepository) List(ctx context.Context, filter repository.ReviewFilter) ([]*entity.Review, error) {
	query := r.client.Collection(reviewsCollection).Query
	if filter.ProductID != "" {
		query = query.Where("productId", "==", filter.ProductID)
	}
	if filter.Rating != 0 {
		query = query.Where("rating", "==", filter.Rating)
	}

	reviews, err := collect[entity.Review](query.Documents(ctx))
	if err != nil {
		return nil, errors.Dependency("Failed to list reviews", err)
	}

	// Ordering in memory avoids a composite index per filter combination.
	sort.SliceStable(reviews, func(i, j int) bool {
		if filter.Ascending {
			return reviews[i].Date.Before(reviews[j].Date)
		}
		return reviews[i].Date.After(reviews[j].Date)
	})

	return reviews, nil
}
