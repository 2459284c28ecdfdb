package impl

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"github.com/thebabumosai/PujoAtlasKol-Backend/config"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/entity"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/repository"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/usecase"
)

const scoreDecayLease = "score_decay"

// scoreDecayService implements the ScoreDecayJob interface. Each pass drains
// the recent positive search activity out of pujos that have gone quiet for
// a full window, clamping scores at zero.
type scoreDecayService struct {
	pujoRepo  repository.PujoRepository
	leaseRepo repository.LeaseRepository
	window    time.Duration
	leaseTTL  time.Duration
	logger    *slog.Logger
}

// ScoreDecayServiceParams holds dependencies for scoreDecayService, injected by Fx.
type ScoreDecayServiceParams struct {
	fx.In

	PujoRepo  repository.PujoRepository
	LeaseRepo repository.LeaseRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewScoreDecayService is the constructor for scoreDecayService.
func NewScoreDecayService(params ScoreDecayServiceParams) usecase.ScoreDecayJob {
	return &scoreDecayService{
		pujoRepo:  params.PujoRepo,
		leaseRepo: params.LeaseRepo,
		window:    params.Config.Jobs.ScoreDecay.Window,
		leaseTTL:  params.Config.Jobs.LeaseTTL,
		logger:    params.Logger,
	}
}

// RunOnce performs one decay pass as of the given time.
func (srv *scoreDecayService) RunOnce(ctx context.Context, now time.Time) error {
	holder := leaseHolder()
	acquired, err := srv.leaseRepo.Acquire(ctx, scoreDecayLease, holder, now.Add(srv.leaseTTL))
	if err != nil {
		return errors.Wrap(err, "failed to acquire decay lease")
	}
	if !acquired {
		srv.logger.Info("Score decay skipped, lease held elsewhere")

		return nil
	}
	defer func() {
		if err := srv.leaseRepo.Release(context.WithoutCancel(ctx), scoreDecayLease, holder); err != nil {
			srv.logger.Warn("Failed to release decay lease", slog.String("error", err.Error()))
		}
	}()

	stale, err := srv.pujoRepo.FindStale(ctx, now.Add(-srv.window))
	if err != nil {
		return errors.Wrap(err, "failed to find stale pujos")
	}

	decayed := 0
	for _, pujo := range stale {
		if err := srv.decayOne(ctx, pujo, now); err != nil {
			srv.logger.Error("Failed to decay pujo",
				slog.String("pujoID", pujo.ID.String()),
				slog.String("error", err.Error()),
			)

			continue
		}
		decayed++
	}

	srv.logger.Info("Score decay pass finished",
		slog.Int("stale", len(stale)),
		slog.Int("decayed", decayed),
	)

	return nil
}

// decayOne drains one pujo's trailing activity. The events that funded the
// decayed amount are deleted and replaced by a single compensating negative
// event so history stays summable.
func (srv *scoreDecayService) decayOne(ctx context.Context, pujo *entity.Pujo, now time.Time) error {
	events, err := srv.pujoRepo.EventsSince(ctx, pujo.ID, now.Add(-2*srv.window))
	if err != nil {
		return err
	}

	sum, consumed := positiveSum(events)
	newScore := pujo.SearchScore - sum
	if newScore < 0 {
		newScore = 0
	}

	return srv.pujoRepo.ApplyDecay(ctx, pujo.ID, newScore, consumed, -sum)
}

// positiveSum totals the positive event values and collects their ids.
// Negative events are earlier compensations and stay untouched.
func positiveSum(events []*entity.ScoreEvent) (sum int, consumed []int64) {
	for _, event := range events {
		if event.Value <= 0 {
			continue
		}
		sum += event.Value
		consumed = append(consumed, event.ID)
	}

	return sum, consumed
}

// leaseHolder identifies this process in the lease table.
func leaseHolder() string {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}

	return host + ":" + strconv.Itoa(os.Getpid())
}
