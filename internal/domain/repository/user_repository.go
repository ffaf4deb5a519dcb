package repository

import (
	"context"

	"bazarbd/internal/domain/entity"
)

type UserRepository interface {
	// Create fails with a conflict when a user with the same email exists.
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// Search matches term case-insensitively against name and email.
	Search(ctx context.Context, term string) ([]*entity.User, error)
	UpdateRole(ctx context.Context, id, role string) error
}
