package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID               int64           `gorm:"primaryKey;autoIncrement"`
	UserID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	ContactEmail     string          `gorm:"type:varchar(255);not null;default:''"`
	Status           string          `gorm:"type:varchar(20);not null;default:pending;index"`
	SubtotalAmount   decimal.Decimal `gorm:"type:numeric(12,0);not null"`
	ShippingAmount   decimal.Decimal `gorm:"type:numeric(12,0);not null"`
	TotalAmount      decimal.Decimal `gorm:"type:numeric(12,0);not null"`
	ReceiverName     string          `gorm:"type:varchar(100);not null"`
	ReceiverPhone    string          `gorm:"type:varchar(20);not null"`
	ProvinceName     string          `gorm:"type:varchar(100);not null"`
	CityName         string          `gorm:"type:varchar(100);not null"`
	AddressDetail    string          `gorm:"type:text;not null"`
	PostalCode       string          `gorm:"type:varchar(20);not null"`
	PaymentAuthority *string         `gorm:"type:varchar(64);uniqueIndex"`
	PaymentRefID     *string         `gorm:"type:varchar(64)"`
	PaidAt           *time.Time
	Items            []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
type OrderItemModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	OrderID     int64           `gorm:"not null;index"`
	ProductID   int64           `gorm:"not null;index"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	Quantity    int             `gorm:"not null;check:quantity > 0"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,0);not null"`
	TotalPrice  decimal.Decimal `gorm:"type:numeric(12,0);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
