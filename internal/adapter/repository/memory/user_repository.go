package memory

import (
	"context"
	"strings"

	"bazarbd/internal/domain/entity"
	"bazarbd/internal/domain/repository"
	"bazarbd/pkg/errors"
)

type userRepository struct {
	users *table[entity.User]
}

func NewUserRepository() repository.UserRepository {
	return &userRepository{users: newTable[entity.User](nil)}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	if !r.users.insert(user.ID, user) {
		return errors.Conflict("User already exists")
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users.get(id)
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.GetByID(ctx, entity.UserID(email))
}

func (r *userRepository) Search(ctx context.Context, term string) ([]*entity.User, error) {
	term = strings.ToLower(term)
	return r.users.filter(func(u *entity.User) bool {
		return strings.Contains(strings.ToLower(u.Name), term) ||
			strings.Contains(strings.ToLower(u.Email), term)
	}), nil
}

func (r *userRepository) UpdateRole(ctx context.Context, id, role string) error {
	if !r.users.update(id, func(u *entity.User) { u.Role = role }) {
		return errors.NotFound("User", nil)
	}
	return nil
}
