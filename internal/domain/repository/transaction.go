package repository

import "context"

// TransactionManager runs use case work atomically without exposing the driver.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise. Every
	// repository obtained from the factory uses the same transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repositories bound to a single transaction.
type RepositoryFactory interface {
	ProductRepo() ProductRepository
	ProductImageRepo() ProductImageRepository
	OrderRepo() OrderRepository
	SettingsRepo() SettingsRepository
}
