package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/delivery/http/middleware"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/delivery/http/response"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/entity"
	domainerrors "github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/errors"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/usecase"
)

// requiredRegisterFields are checked explicitly so the error can name every
// missing field at once.
var requiredRegisterFields = []string{"email", "password", "username", "user_type"}

// protectedPatchFields are silently dropped from partial updates. They are
// either server-managed or owned by other endpoints.
var protectedPatchFields = []string{
	"user_type", "last_login", "is_superuser", "is_staff", "date_joined",
	"groups", "user_permissions", "favorites", "created_at", "saves", "wishlists",
}

// UserHandler holds dependencies for user account handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	authUc usecase.AuthUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, authUc usecase.AuthUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{uc: uc, authUc: authUc, logger: logger}
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var body map[string]any
	if err := c.Bind(&body); err != nil {
		return response.BadRequest(c, "Invalid registration input")
	}

	var missing []string
	for _, field := range requiredRegisterFields {
		if value, ok := body[field].(string); !ok || value == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return response.BadRequest(c, "The following fields are required: "+strings.Join(missing, ", "))
	}

	input := usecase.RegisterInput{
		Username: stringField(body, "username"),
		Email:    stringField(body, "email"),
		Password: stringField(body, "password"),
		UserType: stringField(body, "user_type"),
		Name:     stringField(body, "name"),
		Phone:    stringField(body, "phone"),
	}

	if _, err := h.uc.Register(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, "User registered successfully", "")
}

// Get handles reading one user account.
func (h *UserHandler) Get(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid user id")
	}

	user, err := h.uc.Get(c.Request().Context(), actor, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, userPayload(user), "User data fetched successfully")
}

// Put handles a full user update.
func (h *UserHandler) Put(c echo.Context) error {
	return h.update(c, false)
}

// Patch handles a partial user update. Protected fields are stripped before
// the update is applied.
func (h *UserHandler) Patch(c echo.Context) error {
	return h.update(c, true)
}

func (h *UserHandler) update(c echo.Context, partial bool) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid user id")
	}

	var body map[string]any
	if err := c.Bind(&body); err != nil {
		return response.BadRequest(c, "Invalid update input")
	}

	if partial {
		for _, field := range protectedPatchFields {
			delete(body, field)
		}
	}

	input, err := updateInputFrom(body)
	if err != nil {
		return response.BadRequest(c, "Invalid update input")
	}

	user, err := h.uc.Update(c.Request().Context(), actor, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, userPayload(user), "User updated successfully")
}

// Delete handles removing a user account. The caller's session must be
// revoked first; a failed logout aborts the deletion.
func (h *UserHandler) Delete(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid user id")
	}

	logoutInput := usecase.LogoutInput{
		UserID:      actor.ID,
		AccessToken: middleware.AccessTokenFromContext(c),
	}
	if logoutErr := h.authUc.Logout(c.Request().Context(), actor, logoutInput); logoutErr != nil {
		h.logger.Error("Failed to logout user",
			slog.String("userID", actor.ID.String()),
			slog.String("error", logoutErr.Error()),
		)

		var appErr domainerrors.AppError
		if errors.As(logoutErr, &appErr) {
			return response.Fail(c, appErr.HTTPCode(), "Failed to log out the user")
		}

		return errors.WithStack(logoutErr)
	}

	if err := h.uc.Delete(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	// 204 carries no body, so the envelope is skipped here.
	return c.NoContent(http.StatusNoContent)
}

// --- helpers ---

func stringField(body map[string]any, key string) string {
	value, _ := body[key].(string)

	return value
}

// updateInputFrom re-marshals the filtered body into the typed update DTO so
// unknown keys are dropped and nil means untouched.
func updateInputFrom(body map[string]any) (usecase.UpdateUserInput, error) {
	var input usecase.UpdateUserInput

	raw, err := json.Marshal(body)
	if err != nil {
		return input, err
	}

	var fields struct {
		Username *string `json:"username"`
		Email    *string `json:"email"`
		Password *string `json:"password"`
		Name     *string `json:"name"`
		Phone    *string `json:"phone"`
		UserType *string `json:"user_type"`
	}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return input, err
	}

	input.Username = fields.Username
	input.Email = fields.Email
	input.Password = fields.Password
	input.Name = fields.Name
	input.Phone = fields.Phone
	input.UserType = fields.UserType

	return input, nil
}

// userPayload maps a user entity to its response shape. The password hash
// never leaves the server.
func userPayload(user *entity.User) map[string]any {
	if user == nil {
		return nil
	}

	payload := map[string]any{
		"id":            user.ID,
		"username":      user.Username,
		"email":         user.Email,
		"user_type":     user.UserType,
		"name":          user.Name,
		"phone":         user.Phone,
		"favorites":     idsOrEmpty(user.Favorites),
		"wishlists":     idsOrEmpty(user.Wishlist),
		"saves":         idsOrEmpty(user.Saves),
		"pandal_visits": idsOrEmpty(user.PandalVisits),
		"created_at":    user.CreatedAt,
		"updated_at":    user.UpdatedAt,
	}
	if user.LastLogin != nil {
		payload["last_login"] = user.LastLogin
	}

	return payload
}

func idsOrEmpty(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}

	return ids
}
