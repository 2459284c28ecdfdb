package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/entity"
)

// PujoUsecase defines the interface for pujo discovery operations.
type PujoUsecase interface {
	// Trending returns pujos ordered by search score, highest first.
	Trending(ctx context.Context, limit int) ([]*entity.Pujo, error)
	// RecordSearch registers one search hit against a pujo.
	RecordSearch(ctx context.Context, id uuid.UUID) error
}
