package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductStatus is the catalog availability flag managed by administrators.
type ProductStatus string

const (
	ProductStatusActive     ProductStatus = "active"
	ProductStatusInactive   ProductStatus = "inactive"
	ProductStatusOutOfStock ProductStatus = "out_of_stock"
)

// StockStatus is the derived stock level shown to shoppers.
type StockStatus string

const (
	StockStatusInStock    StockStatus = "in_stock"
	StockStatusLowStock   StockStatus = "low_stock"
	StockStatusOutOfStock StockStatus = "out_of_stock"
)

// Product is a sellable catalog item. Amounts are whole currency units.
type Product struct {
	ID                 int64
	Name               string
	Slug               string
	Price              decimal.Decimal     // Effective unit price charged at checkout.
	OriginalPrice      decimal.NullDecimal // Price before discount, when a discount applies.
	DiscountPercentage int                 // 0..100
	DiscountAmount     decimal.Decimal
	HasDiscount        bool
	StockQuantity      int
	MinStockAlert      int
	Status             ProductStatus
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsPurchasable reports whether the product can be placed in an order.
func (p *Product) IsPurchasable() bool {
	return p != nil && p.IsActive && p.Status != ProductStatusInactive
}

// ProductImage is one image of a product held in blob storage.
type ProductImage struct {
	ID        int64
	ProductID int64
	ImageKey  string // Blob key inside the configured bucket.
	AltText   string
	Caption   string
	IsPrimary bool
	SortOrder int
	CreatedAt time.Time
}
