package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.uber.org/fx"

	deliverycontext "github.com/thebabumosai/PujoAtlasKol-Backend/internal/delivery/context"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/entity"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/repository"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/usecase"
)

// searchScoreIncrement is the score weight of a single recorded search.
const searchScoreIncrement = 10

// defaultTrendingLimit caps the trending listing when the caller does not
// ask for a specific size.
const defaultTrendingLimit = 50

// pujoService implements the PujoUsecase interface.
type pujoService struct {
	pujoRepo repository.PujoRepository
	logger   *slog.Logger
}

// PujoServiceParams holds dependencies for pujoService, injected by Fx.
type PujoServiceParams struct {
	fx.In

	PujoRepo repository.PujoRepository
	Logger   *slog.Logger
}

// NewPujoService is the constructor for pujoService.
func NewPujoService(params PujoServiceParams) usecase.PujoUsecase {
	return &pujoService{
		pujoRepo: params.PujoRepo,
		logger:   params.Logger,
	}
}

func (srv *pujoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Trending returns pujos ordered by search score, highest first.
func (srv *pujoService) Trending(ctx context.Context, limit int) ([]*entity.Pujo, error) {
	if limit <= 0 {
		limit = defaultTrendingLimit
	}

	return srv.pujoRepo.ListTrending(ctx, limit)
}

// RecordSearch registers one search hit against a pujo.
func (srv *pujoService) RecordSearch(ctx context.Context, id uuid.UUID) error {
	if err := srv.pujoRepo.RecordSearch(ctx, id, searchScoreIncrement); err != nil {
		return err
	}

	srv.log(ctx).Debug("Search recorded", slog.String("pujoID", id.String()))

	return nil
}
