// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrProductImageNotFound is returned when a product image is not found.
	ErrProductImageNotFound = errors.New("product image not found")
)

// ProductRepository defines product reads and the stock mutations used by checkout.
type ProductRepository interface {
	// FindByID retrieves a product by id.
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// FindByIDsForUpdate loads the given products and row-locks them until the
	// surrounding transaction ends. Rows are locked in ascending id order.
	// Missing ids are simply absent from the result.
	FindByIDsForUpdate(ctx context.Context, ids []int64) ([]*entity.Product, error)

	// DecrementStock subtracts quantity only if at least quantity units remain.
	// It reports false when the guard rejected the update.
	DecrementStock(ctx context.Context, id int64, quantity int) (bool, error)

	// IncrementStock returns units to stock, e.g. when an order is canceled.
	IncrementStock(ctx context.Context, id int64, quantity int) error

	// SetStock overwrites the stock quantity.
	SetStock(ctx context.Context, id int64, quantity int) error

	// UpdatePricing persists the price fields of a product.
	UpdatePricing(ctx context.Context, product *entity.Product) error
}

// ProductImageRepository defines persistence for product image records.
type ProductImageRepository interface {
	// FindByID retrieves an image record by id.
	FindByID(ctx context.Context, id int64) (*entity.ProductImage, error)

	// Update saves every field of the image record.
	Update(ctx context.Context, image *entity.ProductImage) error

	// ClearPrimary unsets is_primary on every image of the product except exceptID.
	ClearPrimary(ctx context.Context, productID, exceptID int64) error
}
