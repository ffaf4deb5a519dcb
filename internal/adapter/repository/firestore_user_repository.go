package repository

import (
	"context"
	"strings"

	"cloud.google.com/go/firestore"

	"bazarbd/internal/domain/entity"
	"bazarbd/internal/domain/repository"
	"bazarbd/pkg/errors"
)

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
	}
}

// Create relies on the email-derived document ID: Firestore rejects a second
// Create of the same ID, which closes the check-then-insert race.
func (r *firestoreUserRepository) Create(ctx context.Context, user *entity.User) error {
	_, err := r.client.Collection(usersCollection).Doc(user.ID).Create(ctx, user)
	if err != nil {
		if isAlreadyExists(err) {
			return errors.Conflict("User already exists")
		}
		return errors.Dependency("Failed to create user", err)
	}
	return nil
}

func (r *firestoreUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	doc, err := r.client.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("User", err)
		}
		return nil, errors.Dependency("Failed to get user", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Dependency("Failed to parse user data", err)
	}

	return &user, nil
}

func (r *firestoreUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.GetByID(ctx, entity.UserID(email))
}

func (r *firestoreUserRepository) Search(ctx context.Context, term string) ([]*entity.User, error) {
	users, err := collect[entity.User](r.client.Collection(usersCollection).Documents(ctx))
	if err != nil {
		return nil, errors.Dependency("Failed to search users", err)
	}

	if term == "" {
		return users, nil
	}

	term = strings.ToLower(term)
	matched := make([]*entity.User, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), term) || strings.Contains(strings.ToLower(u.Email), term) {
			matched = append(matched, u)
		}
	}
	return matched, nil
}

func (r *firestoreUserRepository) UpdateRole(ctx context.Context, id, role string) error {
	_, err := r.client.Collection(usersCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "role", Value: role},
	})
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("User", err)
		}
		return errors.Dependency("Failed to update user role", err)
	}
	return nil
}
