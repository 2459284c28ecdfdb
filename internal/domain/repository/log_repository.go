package repository

import (
	"context"
	"time"

	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/entity"
)

// LogRepository handles the request log rows that feed the backup job.
type LogRepository interface {
	// Create appends a log row.
	Create(ctx context.Context, record *entity.LogRecord) error
	// FindOlderThan returns log rows created at or before the cutoff,
	// oldest first.
	FindOlderThan(ctx context.Context, cutoff time.Time) ([]*entity.LogRecord, error)
	// DeleteByIDs removes the given log rows.
	DeleteByIDs(ctx context.Context, ids []int64) error
	// DeleteOlderThan removes log rows created at or before the cutoff and
	// returns how many were dropped.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
