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
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/usecase"
)

// collectionService implements the CollectionUsecase interface.
type collectionService struct {
	userRepo       repository.UserRepository
	collectionRepo repository.CollectionRepository
	logger         *slog.Logger
}

// CollectionServiceParams holds dependencies for collectionService, injected by Fx.
type CollectionServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	CollectionRepo repository.CollectionRepository
	Logger         *slog.Logger
}

// NewCollectionService is the constructor for collectionService.
func NewCollectionService(params CollectionServiceParams) usecase.CollectionUsecase {
	return &collectionService{
		userRepo:       params.UserRepo,
		collectionRepo: params.CollectionRepo,
		logger:         params.Logger,
	}
}

func (srv *collectionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Add puts a pujo into the user's collection and returns the updated list.
func (srv *collectionService) Add(ctx context.Context, actor usecase.Actor, kind entity.CollectionKind, input usecase.CollectionInput) ([]uuid.UUID, error) {
	if err := srv.check(ctx, actor, kind, input); err != nil {
		return nil, err
	}

	if err := srv.collectionRepo.AddItem(ctx, input.UserID, kind, input.PujoID); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Collection item added",
		slog.String("userID", input.UserID.String()),
		slog.String("kind", string(kind)),
		slog.String("pujoID", input.PujoID.String()),
	)

	return srv.collectionRepo.ListItems(ctx, input.UserID, kind)
}

// Remove takes a pujo out of the user's collection and returns the updated list.
func (srv *collectionService) Remove(ctx context.Context, actor usecase.Actor, kind entity.CollectionKind, input usecase.CollectionInput) ([]uuid.UUID, error) {
	if err := srv.check(ctx, actor, kind, input); err != nil {
		return nil, err
	}

	if err := srv.collectionRepo.RemoveItem(ctx, input.UserID, kind, input.PujoID); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Collection item removed",
		slog.String("userID", input.UserID.String()),
		slog.String("kind", string(kind)),
		slog.String("pujoID", input.PujoID.String()),
	)

	return srv.collectionRepo.ListItems(ctx, input.UserID, kind)
}

// check validates the shared preconditions of both collection operations.
func (srv *collectionService) check(ctx context.Context, actor usecase.Actor, kind entity.CollectionKind, input usecase.CollectionInput) error {
	if !kind.Valid() {
		return domainerrors.Validationf("Unknown collection: %s", kind)
	}
	if input.PujoID == uuid.Nil {
		return domainerrors.ErrItemMissing
	}
	if err := authorize(actor, input.UserID); err != nil {
		return err
	}

	if _, err := srv.userRepo.FindByID(ctx, input.UserID); err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return domainerrors.ErrUserUnresolved
		}

		return err
	}

	return nil
}
