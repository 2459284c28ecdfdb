package postgres

import (
	"context"
	"time"

	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/entity"
	domainerrors "github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/errors"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/repository"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// logRepository implements repository.LogRepository using GORM.
type logRepository struct {
	db *gorm.DB
}

// NewLogRepository is the constructor for logRepository.
func NewLogRepository(db *gorm.DB) repository.LogRepository {
	return &logRepository{db: db}
}

// Create appends a log row.
func (repo *logRepository) Create(ctx context.Context, record *entity.LogRecord) error {
	logM := fromLogDomain(record)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create log record")
	}

	record.ID = logM.ID
	record.CreatedAt = logM.CreatedAt

	return nil
}

// FindOlderThan returns log rows created at or before the cutoff, oldest first.
func (repo *logRepository) FindOlderThan(ctx context.Context, cutoff time.Time) ([]*entity.LogRecord, error) {
	var logMs []model.LogModel
	err := repo.db.WithContext(ctx).
		Where("created_at <= ?", cutoff).
		Order("created_at ASC").
		Find(&logMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load log records")
	}

	records := make([]*entity.LogRecord, 0, len(logMs))
	for i := range logMs {
		records = append(records, toLogDomain(&logMs[i]))
	}

	return records, nil
}

// DeleteByIDs removes the given log rows.
func (repo *logRepository) DeleteByIDs(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.LogModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete log records")
	}

	return nil
}

// DeleteOlderThan removes log rows created at or before the cutoff.
func (repo *logRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("created_at <= ?", cutoff).
		Delete(&model.LogModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to prune log records")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toLogDomain(data *model.LogModel) *entity.LogRecord {
	if data == nil {
		return nil
	}

	return &entity.LogRecord{
		ID:        data.ID,
		Level:     data.Level,
		Message:   data.Message,
		Module:    data.Module,
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
	}
}

func fromLogDomain(data *entity.LogRecord) *model.LogModel {
	if data == nil {
		return nil
	}

	return &model.LogModel{
		ID:        data.ID,
		Level:     data.Level,
		Message:   data.Message,
		Module:    data.Module,
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
	}
}
