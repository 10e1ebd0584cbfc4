// Package postgres implements the storefront repositories on GORM and PostgreSQL.
package postgres

import (
	"context"

	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// txRepositories hands out repositories that all share one open transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) ProductRepo() repository.ProductRepository {
	return NewProductRepository(r.tx)
}

func (r txRepositories) ProductImageRepo() repository.ProductImageRepository {
	return NewProductImageRepository(r.tx)
}

func (r txRepositories) OrderRepo() repository.OrderRepository {
	return NewOrderRepository(r.tx)
}

func (r txRepositories) SettingsRepo() repository.SettingsRepository {
	return NewSettingsRepository(r.tx)
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute commits when fn returns nil and rolls back on an error or panic.
// The error from fn is returned unchanged so callers can match domain errors.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	var fnErr error
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})
	if fnErr != nil {
		return fnErr
	}

	return errors.Wrap(err, "transaction failed")
}
