package usecase

import (
	"context"
	"strings"
	"time"

	"bazarbd/internal/domain/entity"
	"bazarbd/internal/domain/repository"
	"bazarbd/pkg/errors"
)

type ReviewUseCase struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
}

func NewReviewUseCase(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

type CreateReviewInput struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	UserEmail string `json:"userEmail" validate:"required,email"`
	UserName  string `json:"userName"`
	UserPhoto string `json:"userPhoto"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

type ListReviewsInput struct {
	ProductID  string
	Rating     int
	SortByDate string // asc or desc
}

func (uc *ReviewUseCase) CreateReview(ctx context.Context, input CreateReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.Validation("rating must be between 1 and 5")
	}

	if _, err := uc.productRepo.GetByID(ctx, input.ProductID); err != nil {
		return nil, err
	}

	review := &entity.Review{
		ID:        entity.NewID(),
		ProductID: input.ProductID,
		UserEmail: entity.NormalizeEmail(input.UserEmail),
		UserName:  strings.TrimSpace(input.UserName),
		UserPhoto: input.UserPhoto,
		Rating:    input.Rating,
		Comment:   strings.TrimSpace(input.Comment),
		Date:      time.Now(),
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// ListReviews returns an empty slice, not an error, when nothing matches.
func (uc *ReviewUseCase) ListReviews(ctx context.Context, input ListReviewsInput) ([]*entity.Review, error) {
	if input.Rating < 0 || input.Rating > 5 {
		return nil, errors.Validation("rating must be between 1 and 5")
	}

	return uc.reviewRepo.List(ctx, repository.ReviewFilter{
		ProductID: input.ProductID,
		Rating:    input.Rating,
		Ascending: strings.EqualFold(input.SortByDate, SortAsc),
	})
}

func (uc *ReviewUseCase) ListByProduct(ctx context.Context, productID string) ([]*entity.Review, error) {
	return uc.reviewRepo.List(ctx, repository.ReviewFilter{ProductID: productID})
}
