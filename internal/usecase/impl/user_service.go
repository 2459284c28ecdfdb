package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "github.com/thebabumosai/PujoAtlasKol-Backend/internal/delivery/context"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/entity"
	domainerrors "github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/errors"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/repository"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/service"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/usecase"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new user account with a hashed password.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	userType := entity.UserType(input.UserType)
	if !userType.Valid() {
		return nil, domainerrors.Validationf("Unknown user type: %s", input.UserType)
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		UserType:     userType,
		Name:         input.Name,
		Phone:        input.Phone,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User registered",
		slog.String("userID", user.ID.String()),
		slog.String("userType", string(user.UserType)),
	)

	return user, nil
}

// Get returns a user's account. Non-admin actors may only read themselves.
func (srv *userService) Get(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.User, error) {
	if err := authorize(actor, id); err != nil {
		return nil, err
	}

	return srv.userRepo.FindByID(ctx, id)
}

// Update applies the non-nil fields of the input to the user. A user type
// change is only honored for admin actors.
func (srv *userService) Update(ctx context.Context, actor usecase.Actor, id uuid.UUID, input usecase.UpdateUserInput) (*entity.User, error) {
	if err := authorize(actor, id); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Password != nil {
		hash, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash password")
		}
		user.PasswordHash = hash
	}
	if input.UserType != nil && actor.IsAdmin() {
		userType := entity.UserType(*input.UserType)
		if !userType.Valid() {
			return nil, domainerrors.Validationf("Unknown user type: %s", *input.UserType)
		}
		user.UserType = userType
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return srv.userRepo.FindByID(ctx, id)
}

// Delete removes the user account and its collections.
func (srv *userService) Delete(ctx context.Context, actor usecase.Actor, id uuid.UUID) error {
	if err := authorize(actor, id); err != nil {
		return err
	}

	if err := srv.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	srv.log(ctx).Info("User deleted", slog.String("userID", id.String()))

	return nil
}

// authorize closes the ownership check shared by the per-user operations.
func authorize(actor usecase.Actor, target uuid.UUID) error {
	if actor.ID == target || actor.IsAdmin() {
		return nil
	}

	return domainerrors.ErrForbidden
}
