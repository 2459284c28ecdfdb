package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to create a new user account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	UserType string
	Name     string
	Phone    string
}

// UpdateUserInput carries a partial or full user update. Nil fields are left
// untouched.
type UpdateUserInput struct {
	Username *string
	Email    *string
	Password *string
	Name     *string
	Phone    *string
	UserType *string
}

// UserUsecase defines the interface for user account operations.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)
	Get(ctx context.Context, actor Actor, id uuid.UUID) (*entity.User, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, input UpdateUserInput) (*entity.User, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
}
