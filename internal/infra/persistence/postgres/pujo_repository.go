package postgres

import (
	"context"
	"time"

	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/entity"
	domainerrors "github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/errors"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/repository"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// pujoRepository implements repository.PujoRepository using GORM.
type pujoRepository struct {
	db *gorm.DB
}

// NewPujoRepository is the constructor for pujoRepository.
func NewPujoRepository(db *gorm.DB) repository.PujoRepository {
	return &pujoRepository{db: db}
}

// FindByID retrieves a single pujo by primary key.
func (repo *pujoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Pujo, error) {
	var pujoM model.PujoModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&pujoM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrPujoNotFound
		}

		return nil, errors.Wrap(err, "failed to find pujo by id")
	}

	return toPujoDomain(&pujoM), nil
}

// ListTrending returns pujos ordered by search score, highest first.
func (repo *pujoRepository) ListTrending(ctx context.Context, limit int) ([]*entity.Pujo, error) {
	var pujoMs []model.PujoModel
	query := repo.db.WithContext(ctx).Order("search_score DESC, updated_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&pujoMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list trending pujos")
	}

	pujos := make([]*entity.Pujo, 0, len(pujoMs))
	for i := range pujoMs {
		pujos = append(pujos, toPujoDomain(&pujoMs[i]))
	}

	return pujos, nil
}

// RecordSearch appends a score event and bumps the pujo's score in one
// transaction.
func (repo *pujoRepository) RecordSearch(ctx context.Context, id uuid.UUID, value int) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.PujoModel{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"search_score": gorm.Expr("search_score + ?", value),
				"updated_at":   time.Now(),
			})
		if result.Error != nil {
			return domainerrors.NewDatabaseExecuteError(result.Error, "failed to bump search score")
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrPujoNotFound
		}

		event := model.ScoreEventModel{PujoID: id, Value: value}
		if err := tx.Create(&event).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to record score event")
		}

		return nil
	})
}

// FindStale returns pujos whose updated_at is at or before the cutoff.
func (repo *pujoRepository) FindStale(ctx context.Context, cutoff time.Time) ([]*entity.Pujo, error) {
	var pujoMs []model.PujoModel
	err := repo.db.WithContext(ctx).
		Where("updated_at <= ?", cutoff).
		Find(&pujoMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find stale pujos")
	}

	pujos := make([]*entity.Pujo, 0, len(pujoMs))
	for i := range pujoMs {
		pujos = append(pujos, toPujoDomain(&pujoMs[i]))
	}

	return pujos, nil
}

// EventsSince returns a pujo's score events created after the cutoff, oldest first.
func (repo *pujoRepository) EventsSince(ctx context.Context, pujoID uuid.UUID, cutoff time.Time) ([]*entity.ScoreEvent, error) {
	var eventMs []model.ScoreEventModel
	err := repo.db.WithContext(ctx).
		Where("pujo_id = ? AND created_at > ?", pujoID, cutoff).
		Order("created_at ASC").
		Find(&eventMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load score events")
	}

	events := make([]*entity.ScoreEvent, 0, len(eventMs))
	for i := range eventMs {
		events = append(events, toScoreEventDomain(&eventMs[i]))
	}

	return events, nil
}

// ApplyDecay writes one pujo's decay outcome atomically: the new score, the
// removal of the consumed events and the compensating negative event.
func (repo *pujoRepository) ApplyDecay(ctx context.Context, pujoID uuid.UUID, newScore int, consumedEventIDs []int64, compensation int) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.PujoModel{}).
			Where("id = ?", pujoID).
			Updates(map[string]any{
				"search_score": newScore,
				"updated_at":   time.Now(),
			}).Error
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to write decayed score")
		}

		if len(consumedEventIDs) > 0 {
			if err := tx.Where("id IN ?", consumedEventIDs).Delete(&model.ScoreEventModel{}).Error; err != nil {
				return domainerrors.NewDatabaseExecuteError(err, "failed to delete consumed score events")
			}
		}

		if compensation != 0 {
			event := model.ScoreEventModel{PujoID: pujoID, Value: compensation}
			if err := tx.Create(&event).Error; err != nil {
				return domainerrors.NewDatabaseExecuteError(err, "failed to record compensation event")
			}
		}

		return nil
	})
}

// --- Mapper Functions ---

func toPujoDomain(data *model.PujoModel) *entity.Pujo {
	if data == nil {
		return nil
	}

	return &entity.Pujo{
		ID:          data.ID,
		Name:        data.Name,
		Address:     data.Address,
		City:        data.City,
		SearchScore: data.SearchScore,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toScoreEventDomain(data *model.ScoreEventModel) *entity.ScoreEvent {
	if data == nil {
		return nil
	}

	return &entity.ScoreEvent{
		ID:        data.ID,
		PujoID:    data.PujoID,
		Value:     data.Value,
		CreatedAt: data.CreatedAt,
	}
}
