package usecase

import (
	"context"
	"time"
)

// ScoreDecayJob drains inactive pujo search scores.
type ScoreDecayJob interface {
	// RunOnce performs one decay pass as of the given time.
	RunOnce(ctx context.Context, now time.Time) error
}

// LogBackupJob exports aged log rows to object storage.
type LogBackupJob interface {
	// RunOnce performs one backup pass as of the given time.
	RunOnce(ctx context.Context, now time.Time) error
}
