package repository

import (
	"context"

	"cloud.google.com/go/firestore"

	"bazarbd/internal/domain/entity"
	"bazarbd/internal/domain/repository"
	"bazarbd/pkg/errors"
)

type firestoreNewsletterRepository struct {
	client *firestore.Client
}

func NewFirestoreNewsletterRepository(client *firestore.Client) repository.NewsletterRepository {
	return &firestoreNewsletterRepository{client: client}
}

func (r *firestoreNewsletterRepository) Exists(ctx context.Context, email string) (bool, error) {
	doc, err := r.client.Collection(newsletterCollection).Doc(entity.SubscriberID(email)).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, errors.Dependency("Failed to check subscription", err)
	}
	return doc.Exists(), nil
}

func (r *firestoreNewsletterRepository) Create(ctx context.Context, subscriber *entity.Subscriber) error {
	_, err := r.client.Collection(newsletterCollection).Doc(subscriber.ID).Create(ctx, subscriber)
	if err != nil {
		if isAlreadyExists(err) {
			return errors.Conflict("Email already subscribed")
		}
		return errors.Dependency("Failed to subscribe", err)
	}
	return nil
}

func (r *firestoreNewsletterRepository) List(ctx context.Context) ([]*entity.Subscriber, error) {
	query := r.client.Collection(newsletterCollection).OrderBy("subscribedAt", firestore.Desc)

	subscribers, err := collect[entity.Subscriber](query.Documents(ctx))
	if err != nil {
		return nil, errors.Dependency("Failed to list subscribers", err)
	}
	return subscribers, nil
}
