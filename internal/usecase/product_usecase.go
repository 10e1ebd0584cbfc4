package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/pricing"
)

// ProductDetail is a product with its derived display fields.
type ProductDetail struct {
	Product            *entity.Product
	StockStatus        entity.StockStatus
	DiscountPercentage int
}

// ReplaceImageInput carries a new image upload for an existing image record.
type ReplaceImageInput struct {
	ImageID     int64
	Filename    string
	ContentType string
	Data        []byte
	AltText     *string
	Caption     *string
	IsPrimary   *bool
}

// StockReservation compares a product's stock with units held by pending orders.
type StockReservation struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Stock     int    `json:"stock"`
	Reserved  int    `json:"reserved"`
}

// StockAlert reports a product at or below its low-stock mark.
type StockAlert struct {
	ProductID     int64              `json:"product_id"`
	Name          string             `json:"name"`
	StockQuantity int                `json:"stock_quantity"`
	MinStockAlert int                `json:"min_stock_alert"`
	Status        entity.StockStatus `json:"status"`
}

// ProductUsecase defines the catalog operations the storefront owns.
type ProductUsecase interface {
	// GetProduct returns an active product.
	GetProduct(ctx context.Context, id int64) (*ProductDetail, error)

	// UpdateProductPricing resolves and stores the product's price fields.
	UpdateProductPricing(ctx context.Context, id int64, input pricing.PriceInput) (*entity.Product, error)

	// SetProductStock overwrites the stock quantity.
	SetProductStock(ctx context.Context, id int64, quantity int) (*entity.Product, error)

	// ReplaceProductImage writes the new blob, updates the record, then deletes the old blob.
	ReplaceProductImage(ctx context.Context, input *ReplaceImageInput) (*entity.ProductImage, error)

	// ReservedStock lists products that have units held by pending orders.
	ReservedStock(ctx context.Context) ([]*StockReservation, error)

	// StockAlertsForOrder checks the products of an order against their
	// low-stock marks and returns the ones that need restocking.
	StockAlertsForOrder(ctx context.Context, orderID int64) ([]*StockAlert, error)
}
