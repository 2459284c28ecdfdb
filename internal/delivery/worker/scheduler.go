// Package worker runs the daily background jobs on their wall-clock
// schedule.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"github.com/thebabumosai/PujoAtlasKol-Backend/config"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/delivery"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/usecase"
)

// job pairs a runnable with its daily wall-clock slot.
type job struct {
	name string
	at   string
	run  func(ctx context.Context, now time.Time) error
}

type scheduler struct {
	cfg    *config.Config
	logger *slog.Logger
	jobs   []job
	stop   chan struct{}
	done   sync.WaitGroup
}

// SchedulerParams holds dependencies for the job scheduler
type SchedulerParams struct {
	fx.In
	fx.Lifecycle

	Config     *config.Config
	Logger     *slog.Logger
	ScoreDecay usecase.ScoreDecayJob
	LogBackup  usecase.LogBackupJob
}

// NewScheduler creates the background job scheduler.
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	s := &scheduler{
		cfg:    params.Config,
		logger: params.Logger,
		jobs: []job{
			{name: "score_decay", at: params.Config.Jobs.ScoreDecay.At, run: params.ScoreDecay.RunOnce},
			{name: "log_backup", at: params.Config.Jobs.LogBackup.At, run: params.LogBackup.RunOnce},
		},
		stop: make(chan struct{}),
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			close(s.stop)
			s.done.Wait()

			return nil
		},
	})

	return s, nil
}

// Serve runs every job loop until the scheduler is stopped.
func (s *scheduler) Serve(ctx context.Context) error {
	location, err := time.LoadLocation(s.cfg.Jobs.Timezone)
	if err != nil {
		return errors.Wrapf(err, "unknown timezone %s", s.cfg.Jobs.Timezone)
	}

	for _, j := range s.jobs {
		if _, _, err := parseWallClock(j.at); err != nil {
			return errors.Wrapf(err, "invalid schedule for %s", j.name)
		}
	}

	s.logger.Info("Starting job scheduler", slog.String("timezone", s.cfg.Jobs.Timezone))

	for _, j := range s.jobs {
		s.done.Add(1)
		go s.loop(ctx, j, location)
	}

	<-s.stop

	return nil
}

func (s *scheduler) loop(ctx context.Context, j job, location *time.Location) {
	defer s.done.Done()

	for {
		next := nextRun(time.Now().In(location), j.at)
		timer := time.NewTimer(time.Until(next))

		select {
		case <-s.stop:
			timer.Stop()

			return
		case <-timer.C:
		}

		s.logger.Info("Running scheduled job", slog.String("job", j.name))
		if err := j.run(ctx, time.Now().In(location)); err != nil {
			s.logger.Error("Scheduled job failed",
				slog.String("job", j.name),
				slog.String("error", err.Error()),
			)
		}
	}
}

// nextRun returns the next occurrence of the "HH:MM" wall-clock slot
// strictly after now, in now's location.
func nextRun(now time.Time, at string) time.Time {
	hour, minute, err := parseWallClock(at)
	if err != nil {
		// Serve validates schedules up front; treat a bad slot as "in a day".
		return now.Add(24 * time.Hour)
	}

	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}

	return next
}

func parseWallClock(at string) (hour, minute int, err error) {
	parsed, err := time.Parse("15:04", at)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid wall-clock time %q", at)
	}

	return parsed.Hour(), parsed.Minute(), nil
}
