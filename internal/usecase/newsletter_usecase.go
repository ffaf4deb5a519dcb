package usecase

import (
	"context"
	"log/slog"
	"time"

	"bazarbd/internal/domain/entity"
	"bazarbd/internal/domain/repository"
	"bazarbd/pkg/errors"
)

type NewsletterUseCase struct {
	newsletterRepo repository.NewsletterRepository
	logger         *slog.Logger
}

func NewNewsletterUseCase(newsletterRepo repository.NewsletterRepository, logger *slog.Logger) *NewsletterUseCase {
	return &NewsletterUseCase{
		newsletterRepo: newsletterRepo,
		logger:         logger,
	}
}

type SubscribeInput struct {
	Email string `json:"email" validate:"required,email"`
}

func (uc *NewsletterUseCase) Subscribe(ctx context.Context, input SubscribeInput) (*entity.Subscriber, error) {
	email := entity.NormalizeEmail(input.Email)
	if email == "" {
		return nil, errors.Validation("email is required")
	}

	exists, err := uc.newsletterRepo.Exists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.Conflict("Already subscribed")
	}

	subscriber := &entity.Subscriber{
		ID:           entity.SubscriberID(email),
		Email:        email,
		SubscribedAt: time.Now(),
	}
	if err := uc.newsletterRepo.Create(ctx, subscriber); err != nil {
		return nil, err
	}

	uc.logger.Info("newsletter subscription", "email", email)
	return subscriber, nil
}

func (uc *NewsletterUseCase) ListSubscribers(ctx context.Context) ([]*entity.Subscriber, error) {
	return uc.newsletterRepo.List(ctx)
}
