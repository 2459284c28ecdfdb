package handler

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/delivery/http/middleware"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/entity"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/usecase"
)

type recordingAuthUsecase struct {
	stubAuthUsecase

	loginInput   usecase.LoginInput
	loginOutput  *usecase.LoginOutput
	refreshInput usecase.RefreshInput
	refreshOut   *usecase.TokenPairOutput
}

func (r *recordingAuthUsecase) Login(_ context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	r.loginInput = input

	return r.loginOutput, nil
}

func (r *recordingAuthUsecase) Refresh(_ context.Context, _ usecase.Actor, input usecase.RefreshInput) (*usecase.TokenPairOutput, error) {
	r.refreshInput = input

	return r.refreshOut, nil
}

func TestAuthHandler_Login(t *testing.T) {
	userID := uuid.New()
	uc := &recordingAuthUsecase{
		loginOutput: &usecase.LoginOutput{
			AccessToken:  "access.jwt",
			RefreshToken: "refresh.jwt",
			User:         testUser(userID),
		},
	}
	h := NewAuthHandler(uc, slog.Default())

	c, rec := jsonContext(t, http.MethodPost, "/login", `{"username":"durga_fan","password":"secret"}`)

	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "durga_fan", uc.loginInput.Username)
	assert.Equal(t, "secret", uc.loginInput.Password)
	assert.Contains(t, rec.Body.String(), "access.jwt")
	assert.Contains(t, rec.Body.String(), "refresh.jwt")
	assert.Contains(t, rec.Body.String(), userID.String())
}

func TestAuthHandler_Logout(t *testing.T) {
	actorID := uuid.New()
	auth := &stubAuthUsecase{}
	h := NewAuthHandler(auth, slog.Default())

	c, rec := jsonContext(t, http.MethodPost, "/logout",
		`{"id":"`+actorID.String()+`","username":"durga_fan"}`)
	withActor(c, usecase.Actor{ID: actorID, UserType: entity.UserTypeVisitor})
	c.Set(middleware.ContextKeyAccessToken, "live.access.token")

	require.NoError(t, h.Logout(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, actorID, auth.loggedOut.UserID)
	assert.Equal(t, "durga_fan", auth.loggedOut.Username)
	assert.Equal(t, "live.access.token", auth.loggedOut.AccessToken)
	assert.Contains(t, rec.Body.String(), "Logged out successfully")
}

func TestAuthHandler_Refresh_UsesBearerAccessToken(t *testing.T) {
	uc := &recordingAuthUsecase{
		refreshOut: &usecase.TokenPairOutput{AccessToken: "new.access", RefreshToken: "new.refresh"},
	}
	h := NewAuthHandler(uc, slog.Default())

	c, rec := jsonContext(t, http.MethodPost, "/token/refresh", `{"refresh":"old.refresh"}`)
	withActor(c, usecase.Actor{ID: uuid.New(), UserType: entity.UserTypeVisitor})
	c.Set(middleware.ContextKeyAccessToken, "old.access")

	require.NoError(t, h.Refresh(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "old.access", uc.refreshInput.AccessToken)
	assert.Equal(t, "old.refresh", uc.refreshInput.RefreshToken)
	assert.Contains(t, rec.Body.String(), "new.access")
}

func TestAuthHandler_Refresh_RequiresAuthentication(t *testing.T) {
	h := NewAuthHandler(&stubAuthUsecase{}, slog.Default())

	c, rec := jsonContext(t, http.MethodPost, "/token/refresh", `{"refresh":"old.refresh"}`)

	require.NoError(t, h.Refresh(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
