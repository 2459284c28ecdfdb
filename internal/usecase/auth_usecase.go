// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/entity"
)

// Actor identifies the authenticated caller of an operation.
type Actor struct {
	ID       uuid.UUID
	UserType entity.UserType
}

// IsAdmin reports whether the actor may act on other users' resources.
func (a Actor) IsAdmin() bool {
	return a.UserType == entity.UserTypeAdmin
}

// --- Input DTOs ---

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// LogoutInput identifies the account the caller claims to log out and the
// access token to revoke.
type LogoutInput struct {
	UserID      uuid.UUID
	Username    string
	AccessToken string
}

// RefreshInput carries the token pair presented for rotation.
type RefreshInput struct {
	AccessToken  string
	RefreshToken string
}

// --- Output DTOs ---

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// TokenPairOutput returns a freshly rotated token pair.
type TokenPairOutput struct {
	AccessToken  string
	RefreshToken string
}

// AuthUsecase defines the interface for authentication business operations.
type AuthUsecase interface {
	// Login verifies credentials and issues a token pair.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	// Logout revokes the caller's access token. Revoking an already revoked
	// token fails with errors.ErrTokenRevoked; a claimed user id other than
	// the caller's fails with errors.ErrUserMismatch.
	Logout(ctx context.Context, actor Actor, input LogoutInput) error
	// Refresh rotates a token pair. Both presented tokens are revoked and a
	// fresh pair is issued; replaying either token afterwards fails.
	Refresh(ctx context.Context, actor Actor, input RefreshInput) (*TokenPairOutput, error)
}
