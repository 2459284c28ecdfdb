// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"fmt"

	"github.com/thebabumosai/PujoAtlasKol-Backend/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositories bundles repository instances bound to one transaction.
// In GORM a transaction object is also a *gorm.DB.
type gormRepositories struct {
	tx *gorm.DB
}

func (r *gormRepositories) UserRepo() repository.UserRepository {
	return NewUserRepository(r.tx)
}

func (r *gormRepositories) CollectionRepo() repository.CollectionRepository {
	return NewCollectionRepository(r.tx)
}

func (r *gormRepositories) TokenBlacklistRepo() repository.TokenBlacklistRepository {
	return NewTokenBlacklistRepository(r.tx)
}

func (r *gormRepositories) PujoRepo() repository.PujoRepository {
	return NewPujoRepository(r.tx)
}

func (r *gormRepositories) LogRepo() repository.LogRepository {
	return NewLogRepository(r.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// Roll back on panic so a failed handler never leaks an open transaction.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(ctx, &gormRepositories{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
