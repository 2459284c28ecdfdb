package postgres

import (
	"context"
	"time"

	domainerrors "github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/errors"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/repository"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// leaseRepository implements repository.LeaseRepository using GORM.
type leaseRepository struct {
	db *gorm.DB
}

// NewLeaseRepository is the constructor for leaseRepository.
func NewLeaseRepository(db *gorm.DB) repository.LeaseRepository {
	return &leaseRepository{db: db}
}

// Acquire takes the named lease with an atomic upsert. The update clause only
// fires when the existing lease has expired, so a live lease held elsewhere
// leaves the row untouched and RowsAffected at zero.
func (repo *leaseRepository) Acquire(ctx context.Context, name, holder string, expiry time.Time) (bool, error) {
	lease := model.JobLeaseModel{
		Name:      name,
		Holder:    holder,
		ExpiresAt: expiry,
	}

	result := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}},
		DoUpdates: clause.Assignments(map[string]any{
			"holder":     holder,
			"expires_at": expiry,
		}),
		Where: clause.Where{
			Exprs: []clause.Expression{
				clause.Lt{Column: clause.Column{Table: "job_leases", Name: "expires_at"}, Value: time.Now()},
			},
		},
	}).Create(&lease)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to acquire job lease")
	}

	return result.RowsAffected > 0, nil
}

// Release frees the named lease if the holder still owns it.
func (repo *leaseRepository) Release(ctx context.Context, name, holder string) error {
	err := repo.db.WithContext(ctx).
		Where("name = ? AND holder = ?", name, holder).
		Delete(&model.JobLeaseModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to release job lease")
	}

	return nil
}
