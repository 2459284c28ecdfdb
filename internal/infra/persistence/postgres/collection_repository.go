package postgres

import (
	"context"

	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/entity"
	domainerrors "github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/errors"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/repository"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// collectionRepository implements repository.CollectionRepository using GORM.
type collectionRepository struct {
	db *gorm.DB
}

// NewCollectionRepository is the constructor for collectionRepository.
func NewCollectionRepository(db *gorm.DB) repository.CollectionRepository {
	return &collectionRepository{db: db}
}

// ListItems returns the pujo ids in one of the user's collections, oldest first.
func (repo *collectionRepository) ListItems(ctx context.Context, userID uuid.UUID, kind entity.CollectionKind) ([]uuid.UUID, error) {
	var items []model.UserCollectionItemModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND kind = ?", userID, string(kind)).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list collection items")
	}

	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.PujoID)
	}

	return ids, nil
}

// AddItem inserts a pujo into a collection. The unique index on
// (user_id, kind, pujo_id) arbitrates concurrent duplicates.
func (repo *collectionRepository) AddItem(ctx context.Context, userID uuid.UUID, kind entity.CollectionKind, pujoID uuid.UUID) error {
	item := model.UserCollectionItemModel{
		UserID: userID,
		Kind:   string(kind),
		PujoID: pujoID,
	}

	if err := repo.db.WithContext(ctx).Create(&item).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateItem
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserUnresolved
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add collection item")
	}

	return nil
}

// RemoveItem deletes a pujo from a collection.
func (repo *collectionRepository) RemoveItem(ctx context.Context, userID uuid.UUID, kind entity.CollectionKind, pujoID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND kind = ? AND pujo_id = ?", userID, string(kind), pujoID).
		Delete(&model.UserCollectionItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove collection item")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrItemNotInCollection
	}

	return nil
}
