// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"github.com/thebabumosai/PujoAtlasKol-Backend/config"
	deliverycontext "github.com/thebabumosai/PujoAtlasKol-Backend/internal/delivery/context"
	domainerrors "github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/errors"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/repository"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/service"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	blacklist    repository.TokenBlacklistRepository
	logRepo      repository.LogRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logRetention time.Duration
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Blacklist    repository.TokenBlacklistRepository
	LogRepo      repository.LogRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		blacklist:    params.Blacklist,
		logRepo:      params.LogRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logRetention: params.Config.Jobs.LogRetention,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the credentials and issues a fresh token pair. A wrong
// username and a wrong password are indistinguishable to the caller.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	pair, err := srv.tokenService.GenerateTokenPair(user.ID, user.UserType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token pair")
	}

	if err := srv.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		srv.log(ctx).Warn("Failed to stamp last login", slog.String("error", err.Error()))
	}

	srv.log(ctx).Info("User logged in", slog.String("userID", user.ID.String()))

	return &usecase.LoginOutput{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         user,
	}, nil
}

// Logout revokes the presented access token. Revocation is permanent; a
// second logout with the same token reports it as already invalidated.
func (srv *authService) Logout(ctx context.Context, actor usecase.Actor, input usecase.LogoutInput) error {
	if input.UserID != actor.ID {
		return domainerrors.ErrUserMismatch
	}

	if input.AccessToken == "" {
		return domainerrors.ErrTokenMissing
	}

	if _, err := srv.tokenService.ValidateAccessToken(input.AccessToken); err != nil {
		// An unparseable or expired token is as dead as a revoked one.
		return domainerrors.ErrTokenRevoked
	}

	if err := srv.blacklist.Blacklist(ctx, srv.tokenService.HashToken(input.AccessToken)); err != nil {
		return err
	}

	srv.log(ctx).Info("User logged out", slog.String("userID", actor.ID.String()))

	// Opportunistic housekeeping of aged request logs, never fatal.
	if dropped, err := srv.logRepo.DeleteOlderThan(ctx, time.Now().Add(-srv.logRetention)); err != nil {
		srv.log(ctx).Warn("Failed to prune old logs", slog.String("error", err.Error()))
	} else if dropped > 0 {
		srv.log(ctx).Info("Pruned old logs", slog.Int64("dropped", dropped))
	}

	return nil
}

// Refresh rotates a token pair. Both presented tokens are revoked together
// so neither can be replayed, then a fresh pair is issued.
func (srv *authService) Refresh(ctx context.Context, actor usecase.Actor, input usecase.RefreshInput) (*usecase.TokenPairOutput, error) {
	if input.AccessToken == "" || input.RefreshToken == "" {
		return nil, domainerrors.ErrTokenMissing
	}

	accessHash := srv.tokenService.HashToken(input.AccessToken)
	revoked, err := srv.blacklist.IsBlacklisted(ctx, accessHash)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check access token blacklist")
	}
	if revoked {
		return nil, domainerrors.ErrTokenRevoked
	}

	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, domainerrors.ErrTokenRevoked
	}
	if claims.UserID != actor.ID {
		return nil, domainerrors.ErrNotAuthenticated
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, domainerrors.ErrSubjectResolution
		}

		return nil, errors.Wrap(err, "failed to resolve token subject")
	}

	refreshHash := srv.tokenService.HashToken(input.RefreshToken)
	err = srv.txManager.Execute(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if err := repos.TokenBlacklistRepo().Blacklist(ctx, accessHash); err != nil {
			return err
		}

		return repos.TokenBlacklistRepo().Blacklist(ctx, refreshHash)
	})
	if err != nil {
		return nil, err
	}

	pair, err := srv.tokenService.GenerateTokenPair(user.ID, user.UserType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token pair")
	}

	srv.log(ctx).Info("Token pair rotated", slog.String("userID", user.ID.String()))

	return &usecase.TokenPairOutput{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}
