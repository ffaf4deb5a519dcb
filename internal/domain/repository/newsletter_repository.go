package repository

import (
	"context"

	"bazarbd/internal/domain/entity"
)

type NewsletterRepository interface {
	Exists(ctx context.Context, email string) (bool, error)
	// Create fails with a conflict when the email is already subscribed.
	Create(ctx context.Context, subscriber *entity.Subscriber) error
	// List returns subscribers newest first.
	List(ctx context.Context) ([]*entity.Subscriber, error)
}
