package usecase

import (
	"context"
	"strings"
	"time"

	"bazarbd/internal/domain/entity"
	"bazarbd/internal/domain/repository"
	"bazarbd/pkg/errors"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

type RegisterUserInput struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoUrl"`
	Role     string `json:"role"`
}

func (uc *UserUseCase) Register(ctx context.Context, input RegisterUserInput) (*entity.User, error) {
	email := entity.NormalizeEmail(input.Email)
	if email == "" {
		return nil, errors.Validation("email is required")
	}

	user := &entity.User{
		ID:        entity.UserID(email),
		Email:     email,
		Name:      strings.TrimSpace(input.Name),
		PhotoURL:  input.PhotoURL,
		Role:      valueOr(strings.TrimSpace(input.Role), entity.RoleUser),
		CreatedAt: time.Now(),
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *UserUseCase) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	email = entity.NormalizeEmail(email)
	if email == "" {
		return nil, errors.Validation("email is required")
	}
	return uc.userRepo.GetByEmail(ctx, email)
}

func (uc *UserUseCase) Search(ctx context.Context, term string) ([]*entity.User, error) {
	return uc.userRepo.Search(ctx, strings.TrimSpace(term))
}

func (uc *UserUseCase) UpdateRole(ctx context.Context, id, role string) (*entity.User, error) {
	role = strings.TrimSpace(role)
	if role == "" {
		return nil, errors.Validation("role is required")
	}

	if err := uc.userRepo.UpdateRole(ctx, id, role); err != nil {
		return nil, err
	}
	return uc.userRepo.GetByID(ctx, id)
}

// IsAdmin reports whether the user registered under email holds the admin
// role. Unknown users are not admins.
func (uc *UserUseCase) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return user.Role == entity.RoleAdmin, nil
}
