// Package repository declares the persistence interfaces the use cases
// depend on. Implementations live under internal/infra/persistence.
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/entity"
)

// UserRepository handles user account persistence.
type UserRepository interface {
	// Create stores a new user. A username or email collision returns
	// errors.ErrUserAlreadyExists.
	Create(ctx context.Context, user *entity.User) error
	// FindByID looks a user up by primary key. A missing user returns
	// errors.ErrUserNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// FindByUsername looks a user up by username. A missing user returns
	// errors.ErrUserNotFound.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	// Update persists the mutable fields of an existing user.
	Update(ctx context.Context, user *entity.User) error
	// UpdateLastLogin stamps the last successful login time.
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
	// Delete removes the user and, via cascading, the collection rows.
	Delete(ctx context.Context, id uuid.UUID) error
}
