package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID                 int64               `gorm:"primaryKey;autoIncrement"`
	Name               string              `gorm:"type:varchar(200);not null"`
	Slug               string              `gorm:"type:varchar(200);not null;uniqueIndex"`
	Price              decimal.Decimal     `gorm:"type:numeric(12,0);not null"`
	OriginalPrice      decimal.NullDecimal `gorm:"type:numeric(12,0)"`
	DiscountPercentage int                 `gorm:"not null;default:0"`
	DiscountAmount     decimal.Decimal     `gorm:"type:numeric(12,0);not null;default:0"`
	HasDiscount        bool                `gorm:"not null;default:false"`
	StockQuantity      int                 `gorm:"not null;default:0;check:stock_quantity >= 0"`
	MinStockAlert      int                 `gorm:"not null;default:5"`
	Status             string              `gorm:"type:varchar(20);not null;default:active"`
	IsActive           bool                `gorm:"not null;default:true"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductImageModel is the GORM-specific struct for the 'product_images' table.
type ProductImageModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	ProductID int64  `gorm:"not null;index"`
	ImageKey  string `gorm:"type:varchar(500);not null"`
	AltText   string `gorm:"type:varchar(200);not null;default:''"`
	Caption   string `gorm:"type:varchar(200);not null;default:''"`
	IsPrimary bool   `gorm:"not null;default:false"`
	SortOrder int    `gorm:"column:sort_order;not null;default:0"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductImageModel) TableName() string {
	return "product_images"
}
