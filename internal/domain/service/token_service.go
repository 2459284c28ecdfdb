// Package service declares the domain-level service interfaces whose
// implementations live under internal/infra.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/entity"
)

// TokenType distinguishes access tokens from refresh tokens.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims is the JWT payload carried by both token types.
type Claims struct {
	UserID    uuid.UUID       `json:"user_id"`
	UserType  entity.UserType `json:"user_type"`
	TokenType TokenType       `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenPair is a freshly issued access and refresh token.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

// TokenService issues and validates the JWT pairs used by the auth flows.
type TokenService interface {
	// GenerateTokenPair issues a new access and refresh token for the user.
	GenerateTokenPair(userID uuid.UUID, userType entity.UserType) (*TokenPair, error)
	// ValidateAccessToken parses and verifies an access token.
	ValidateAccessToken(tokenString string) (*Claims, error)
	// ValidateRefreshToken parses and verifies a refresh token.
	ValidateRefreshToken(tokenString string) (*Claims, error)
	// HashToken returns the stable digest used by the blacklist.
	HashToken(tokenString string) string
}
