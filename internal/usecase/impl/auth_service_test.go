package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thebabumosai/PujoAtlasKol-Backend/config"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/entity"
	domainerrors "github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/errors"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/service"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/infra/auth"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/usecase"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTokenService(t *testing.T) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret-for-tests"
	cfg.SecretKey.Refresh = "refresh-secret-for-tests"
	cfg.Auth = &config.AuthConfig{
		AccessTokenTTL:  6 * time.Hour,
		RefreshTokenTTL: 24 * time.Hour,
	}

	svc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

type authFixture struct {
	svc      usecase.AuthUsecase
	userRepo *fakeUserRepo
	tokens   service.TokenService
	logRepo  *fakeLogRepo
	user     *entity.User
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	userRepo := newFakeUserRepo()
	blacklist := newFakeBlacklist()
	logRepo := newFakeLogRepo()
	tokens := newTokenService(t)
	hasher := plainHasher{}

	user := &entity.User{
		Username:     "durga_fan",
		Email:        "durga@example.com",
		PasswordHash: "hashed:sindoor",
		UserType:     entity.UserTypeVisitor,
	}
	require.NoError(t, userRepo.Create(context.Background(), user))

	cfg := &config.Config{}
	cfg.Jobs = &config.JobsConfig{LogRetention: 30 * 24 * time.Hour}

	svc := NewAuthService(AuthServiceParams{
		TxManager: &fakeTxManager{repos: &fakeRepositories{
			userRepo:  userRepo,
			blacklist: blacklist,
			logRepo:   logRepo,
		}},
		UserRepo:     userRepo,
		Blacklist:    blacklist,
		LogRepo:      logRepo,
		Hasher:       hasher,
		TokenService: tokens,
		Config:       cfg,
		Logger:       discardLogger(),
	})

	return &authFixture{svc: svc, userRepo: userRepo, tokens: tokens, logRepo: logRepo, user: user}
}

func TestLogin_IssuesTokenPair(t *testing.T) {
	f := newAuthFixture(t)

	out, err := f.svc.Login(context.Background(), usecase.LoginInput{Username: "durga_fan", Password: "sindoor"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
	assert.Equal(t, f.user.ID, out.User.ID)

	stored, err := f.userRepo.FindByID(context.Background(), f.user.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.LastLogin)
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.Login(context.Background(), usecase.LoginInput{Username: "durga_fan", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = f.svc.Login(context.Background(), usecase.LoginInput{Username: "nobody", Password: "sindoor"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestLogout_RevokesTokenOnce(t *testing.T) {
	f := newAuthFixture(t)
	actor := usecase.Actor{ID: f.user.ID, UserType: f.user.UserType}

	out, err := f.svc.Login(context.Background(), usecase.LoginInput{Username: "durga_fan", Password: "sindoor"})
	require.NoError(t, err)

	input := usecase.LogoutInput{UserID: f.user.ID, AccessToken: out.AccessToken}
	require.NoError(t, f.svc.Logout(context.Background(), actor, input))

	// A second logout with the same token reports it as already dead.
	err = f.svc.Logout(context.Background(), actor, input)
	assert.ErrorIs(t, err, domainerrors.ErrTokenRevoked)
}

func TestLogout_RejectsMissingToken(t *testing.T) {
	f := newAuthFixture(t)
	actor := usecase.Actor{ID: f.user.ID, UserType: f.user.UserType}

	err := f.svc.Logout(context.Background(), actor, usecase.LogoutInput{UserID: f.user.ID})
	assert.ErrorIs(t, err, domainerrors.ErrTokenMissing)
}

func TestLogout_RejectsMismatchedUser(t *testing.T) {
	f := newAuthFixture(t)

	other := &entity.User{Username: "other", Email: "other@example.com", PasswordHash: "hashed:pw", UserType: entity.UserTypeVisitor}
	require.NoError(t, f.userRepo.Create(context.Background(), other))

	out, err := f.svc.Login(context.Background(), usecase.LoginInput{Username: "durga_fan", Password: "sindoor"})
	require.NoError(t, err)

	actor := usecase.Actor{ID: f.user.ID, UserType: f.user.UserType}
	err = f.svc.Logout(context.Background(), actor, usecase.LogoutInput{
		UserID:      other.ID,
		Username:    "other",
		AccessToken: out.AccessToken,
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserMismatch)
}

func TestRefresh_RotatesAndRevokesBothTokens(t *testing.T) {
	f := newAuthFixture(t)
	actor := usecase.Actor{ID: f.user.ID, UserType: f.user.UserType}

	out, err := f.svc.Login(context.Background(), usecase.LoginInput{Username: "durga_fan", Password: "sindoor"})
	require.NoError(t, err)

	input := usecase.RefreshInput{AccessToken: out.AccessToken, RefreshToken: out.RefreshToken}
	rotated, err := f.svc.Refresh(context.Background(), actor, input)
	require.NoError(t, err)
	assert.NotEqual(t, out.AccessToken, rotated.AccessToken)
	assert.NotEqual(t, out.RefreshToken, rotated.RefreshToken)

	// Replaying either half of the consumed pair must fail.
	_, err = f.svc.Refresh(context.Background(), actor, input)
	assert.ErrorIs(t, err, domainerrors.ErrTokenRevoked)

	err = f.svc.Logout(context.Background(), actor, usecase.LogoutInput{UserID: f.user.ID, AccessToken: out.AccessToken})
	assert.ErrorIs(t, err, domainerrors.ErrTokenRevoked)
}

func TestRefresh_RejectsForeignRefreshToken(t *testing.T) {
	f := newAuthFixture(t)

	other := &entity.User{Username: "other", Email: "other@example.com", PasswordHash: "hashed:pw", UserType: entity.UserTypeVisitor}
	require.NoError(t, f.userRepo.Create(context.Background(), other))

	pair, err := f.tokens.GenerateTokenPair(other.ID, other.UserType)
	require.NoError(t, err)

	actor := usecase.Actor{ID: f.user.ID, UserType: f.user.UserType}
	_, err = f.svc.Refresh(context.Background(), actor, usecase.RefreshInput{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
}

func TestRefresh_FailsWhenSubjectIsGone(t *testing.T) {
	f := newAuthFixture(t)
	actor := usecase.Actor{ID: f.user.ID, UserType: f.user.UserType}

	out, err := f.svc.Login(context.Background(), usecase.LoginInput{Username: "durga_fan", Password: "sindoor"})
	require.NoError(t, err)

	require.NoError(t, f.userRepo.Delete(context.Background(), f.user.ID))

	_, err = f.svc.Refresh(context.Background(), actor, usecase.RefreshInput{
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
	})
	assert.ErrorIs(t, err, domainerrors.ErrSubjectResolution)
}

func TestLogout_PrunesAgedLogs(t *testing.T) {
	f := newAuthFixture(t)
	actor := usecase.Actor{ID: f.user.ID, UserType: f.user.UserType}

	old := &entity.LogRecord{Level: "INFO", Message: "ancient", CreatedAt: time.Now().Add(-60 * 24 * time.Hour)}
	require.NoError(t, f.logRepo.Create(context.Background(), old))

	out, err := f.svc.Login(context.Background(), usecase.LoginInput{Username: "durga_fan", Password: "sindoor"})
	require.NoError(t, err)
	require.NoError(t, f.svc.Logout(context.Background(), actor, usecase.LogoutInput{UserID: f.user.ID, AccessToken: out.AccessToken}))

	remaining, err := f.logRepo.FindOlderThan(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Empty(t, remaining)
}
