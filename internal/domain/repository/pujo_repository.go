package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/entity"
)

// PujoRepository handles pujo records and their search score events.
type PujoRepository interface {
	// FindByID looks a pujo up by primary key. A missing pujo returns
	// errors.ErrPujoNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Pujo, error)
	// ListTrending returns pujos ordered by search score, highest first.
	ListTrending(ctx context.Context, limit int) ([]*entity.Pujo, error)
	// RecordSearch appends a score event and bumps the pujo's score and
	// updated_at in one transaction.
	RecordSearch(ctx context.Context, id uuid.UUID, value int) error
	// FindStale returns pujos whose updated_at is at or before the cutoff.
	FindStale(ctx context.Context, cutoff time.Time) ([]*entity.Pujo, error)
	// EventsSince returns a pujo's score events created after the cutoff,
	// oldest first.
	EventsSince(ctx context.Context, pujoID uuid.UUID, cutoff time.Time) ([]*entity.ScoreEvent, error)
	// ApplyDecay sets the pujo's score, deletes the consumed events and
	// appends a compensating negative event in one transaction.
	ApplyDecay(ctx context.Context, pujoID uuid.UUID, newScore int, consumedEventIDs []int64, compensation int) error
}
