package postgres

import (
	"context"

	domainerrors "github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/errors"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/repository"
	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// tokenBlacklistRepository implements repository.TokenBlacklistRepository using GORM.
type tokenBlacklistRepository struct {
	db *gorm.DB
}

// NewTokenBlacklistRepository is the constructor for tokenBlacklistRepository.
func NewTokenBlacklistRepository(db *gorm.DB) repository.TokenBlacklistRepository {
	return &tokenBlacklistRepository{db: db}
}

// Blacklist records a token hash. The unique column makes concurrent
// revocations of the same token collapse into one winner; the losers see
// ErrTokenRevoked.
func (repo *tokenBlacklistRepository) Blacklist(ctx context.Context, tokenHash string) error {
	record := model.BlacklistedTokenModel{TokenHash: tokenHash}

	if err := repo.db.WithContext(ctx).Create(&record).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrTokenRevoked
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to blacklist token")
	}

	return nil
}

// IsBlacklisted reports whether a token hash has been recorded.
func (repo *tokenBlacklistRepository) IsBlacklisted(ctx context.Context, tokenHash string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.BlacklistedTokenModel{}).
		Where("token_hash = ?", tokenHash).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check token blacklist")
	}

	return count > 0, nil
}
