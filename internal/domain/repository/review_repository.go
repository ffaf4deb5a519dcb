package repository

import (
	"context"

	"bazarbd/internal/domain/entity"
)

type ReviewFilter struct {
	ProductID string
	Rating    int  // zero means any
	Ascending bool // by date; newest first otherwise
}

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	List(ctx context.Context, filter ReviewFilter) ([]*entity.Review, error)
}
