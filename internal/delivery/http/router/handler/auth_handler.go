// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/delivery/http/middleware"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/delivery/http/response"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/usecase"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: logger}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type logoutRequest struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Username: input.Username,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"access":  output.AccessToken,
		"refresh": output.RefreshToken,
		"user":    userPayload(output.User),
	}, "Logged in successfully")
}

// Logout handles the user logout request. The body names the account being
// logged out, the Authorization header carries the token to revoke.
func (h *AuthHandler) Logout(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	var input logoutRequest
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "Invalid logout input")
	}

	err := h.uc.Logout(c.Request().Context(), actor, usecase.LogoutInput{
		UserID:      input.ID,
		Username:    input.Username,
		AccessToken: middleware.AccessTokenFromContext(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Logged out successfully", "")
}

// Refresh handles the token rotation request. The access token comes from
// the Authorization header, the refresh token from the body.
func (h *AuthHandler) Refresh(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	var input refreshRequest
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "Invalid refresh input")
	}

	output, err := h.uc.Refresh(c.Request().Context(), actor, usecase.RefreshInput{
		AccessToken:  middleware.AccessTokenFromContext(c),
		RefreshToken: input.Refresh,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"accessToken":  output.AccessToken,
		"refreshToken": output.RefreshToken,
	}, "")
}
