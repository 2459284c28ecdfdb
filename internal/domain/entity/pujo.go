package entity

import (
	"time"

	"github.com/google/uuid"
)

// Pujo is a scored pandal listing. SearchScore is never negative; the decay
// job clamps it at zero.
type Pujo struct {
	ID          uuid.UUID
	Name        string
	Address     string
	City        string
	SearchScore int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ScoreEvent is a single timestamped delta against a pujo's search score.
// Positive events are written when the pujo is searched; the decay job folds
// them away and records one compensating negative event per pass.
type ScoreEvent struct {
	ID        int64
	PujoID    uuid.UUID
	Value     int
	CreatedAt time.Time
}
