package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/delivery/http/response"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/repository"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/service"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/usecase"
)

const (
	// ContextKeyActor is the echo context key holding the authenticated actor.
	ContextKeyActor = "actor"
	// ContextKeyAccessToken is the echo context key holding the raw bearer token.
	ContextKeyAccessToken = "accessToken"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc  service.TokenService
	blacklist repository.TokenBlacklistRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, blacklist repository.TokenBlacklistRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, blacklist: blacklist}
}

// Authenticate is the core middleware function that validates the JWT access
// token. Revoked tokens are rejected even when their signature still checks
// out.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "Invalid or expired token")
		}

		revoked, err := m.blacklist.IsBlacklisted(c.Request().Context(), m.tokenSvc.HashToken(tokenString))
		if err != nil {
			return err
		}
		if revoked {
			return response.Unauthorized(c, "Invalid or expired token")
		}

		// Set the actor on the context for handlers to use.
		c.Set(ContextKeyActor, usecase.Actor{ID: claims.UserID, UserType: claims.UserType})
		c.Set(ContextKeyAccessToken, tokenString)

		return next(c)
	}
}

// ActorFromContext extracts the authenticated actor set by Authenticate.
func ActorFromContext(c echo.Context) (usecase.Actor, bool) {
	actor, ok := c.Get(ContextKeyActor).(usecase.Actor)

	return actor, ok
}

// AccessTokenFromContext extracts the raw bearer token set by Authenticate.
func AccessTokenFromContext(c echo.Context) string {
	token, _ := c.Get(ContextKeyAccessToken).(string)

	return token
}
