package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/entity"
)

// CollectionRepository handles the per-user pujo collections. All four
// collection kinds share one table keyed by (user_id, kind, pujo_id).
type CollectionRepository interface {
	// ListItems returns the pujo ids in one of the user's collections,
	// oldest first.
	ListItems(ctx context.Context, userID uuid.UUID, kind entity.CollectionKind) ([]uuid.UUID, error)
	// AddItem inserts a pujo into a collection. Inserting a pujo that is
	// already present returns errors.ErrDuplicateItem.
	AddItem(ctx context.Context, userID uuid.UUID, kind entity.CollectionKind, pujoID uuid.UUID) error
	// RemoveItem deletes a pujo from a collection. Removing a pujo that is
	// not present returns errors.ErrItemNotInCollection.
	RemoveItem(ctx context.Context, userID uuid.UUID, kind entity.CollectionKind, pujoID uuid.UUID) error
}
