package memory

import (
	"context"
	"sort"

	"bazarbd/internal/domain/entity"
	"bazarbd/internal/domain/repository"
	"bazarbd/pkg/errors"
)

type newsletterRepository struct {
	subscribers *table[entity.Subscriber]
}

func NewNewsletterRepository() repository.NewsletterRepository {
	return &newsletterRepository{subscribers: newTable[entity.Subscriber](nil)}
}

func (r *newsletterRepository) Exists(ctx context.Context, email string) (bool, error) {
	return r.subscribers.has(entity.SubscriberID(email)), nil
}

func (r *newsletterRepository) Create(ctx context.Context, subscriber *entity.Subscriber) error {
	if !r.subscribers.insert(subscriber.ID, subscriber) {
		return errors.Conflict("Email already subscribed")
	}
	return nil
}

func (r *newsletterRepository) List(ctx context.Context) ([]*entity.Subscriber, error) {
	subscribers := r.subscribers.filter(nil)
	sort.SliceStable(subscribers, func(i, j int) bool {
		return subscribers[i].SubscribedAt.After(subscribers[j].SubscribedAt)
	})
	return subscribers, nil
}
