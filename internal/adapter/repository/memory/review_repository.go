package memory

import (
	"context"
	"sort"

	"bazarbd/internal/domain/entity"
	"bazarbd/internal/domain/repository"
)

type reviewRepository struct {
	reviews *table[entity.Review]
}

func NewReviewRepository() repository.ReviewRepository {
	return &reviewRepository{reviews: newTable[entity.Review](nil)}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if review.ID == "" {
		review.ID = entity.NewID()
	}
	r.reviews.insert(review.ID, review)
	return nil
}

func (r *reviewRepository) List(ctx context.Context, filter repository.ReviewFilter) ([]*entity.Review, error) {
	reviews := r.reviews.filter(func(rv *entity.Review) bool {
		if filter.ProductID != "" && rv.ProductID != filter.ProductID {
			return false
		}
		return filter.Rating == 0 || rv.Rating == filter.Rating
	})

	sort.SliceStable(reviews, func(i, j int) bool {
		if filter.Ascending {
			return reviews[i].Date.Before(reviews[j].Date)
		}
		return reviews[i].Date.After(reviews[j].Date)
	})
	return reviews, nil
}
