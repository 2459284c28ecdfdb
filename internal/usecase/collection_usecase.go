package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/entity"
)

// CollectionInput identifies one pujo in one user's collection.
type CollectionInput struct {
	UserID uuid.UUID
	PujoID uuid.UUID
}

// CollectionUsecase defines the interface for the per-user pujo collections.
// All four kinds go through the same two operations.
type CollectionUsecase interface {
	// Add puts a pujo into the user's collection and returns the updated
	// list of pujo ids. Adding an already present pujo fails with
	// errors.ErrDuplicateItem.
	Add(ctx context.Context, actor Actor, kind entity.CollectionKind, input CollectionInput) ([]uuid.UUID, error)
	// Remove takes a pujo out of the user's collection and returns the
	// updated list. Removing an absent pujo fails with
	// errors.ErrItemNotInCollection.
	Remove(ctx context.Context, actor Actor, kind entity.CollectionKind, input CollectionInput) ([]uuid.UUID, error)
}
