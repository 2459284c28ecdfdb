package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"github.com/thebabumosai/PujoAtlasKol-Backend/config"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/delivery"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/delivery/http"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/delivery/http/middleware"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/delivery/http/router/handler"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/delivery/worker"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/infra/auth"
	logs "github.com/thebabumosai/PujoAtlasKol-Backend/internal/infra/log"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/infra/persistence/postgres"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/infra/storage"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/usecase/impl"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		storage.NewS3Store,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewCollectionRepository,
			postgres.NewTokenBlacklistRepository,
			postgres.NewPujoRepository,
			postgres.NewLogRepository,
			postgres.NewLeaseRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewCollectionService,
			impl.NewPujoService,
			impl.NewScoreDecayService,
			impl.NewLogBackupService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewContextMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRecorderMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewCollectionHandler,
			handler.NewPujoHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
