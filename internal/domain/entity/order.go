package entity

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCanceled   OrderStatus = "canceled"
)

var allowedTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusPaid, OrderStatusCanceled},
	OrderStatusPaid:       {OrderStatusProcessing},
	OrderStatusProcessing: {OrderStatusShipped},
	OrderStatusShipped:    {OrderStatusDelivered},
	OrderStatusDelivered:  {},
	OrderStatusCanceled:   {},
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a known value.
func (s OrderStatus) IsValid() bool {
	_, ok := allowedTransitions[s]

	return ok
}

// CanTransitionTo reports whether an order may move from s to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return slices.Contains(allowedTransitions[s], next)
}

// ShippingAddress is the delivery address copied onto an order at checkout.
type ShippingAddress struct {
	ReceiverName  string `json:"receiver_name"`
	ReceiverPhone string `json:"receiver_phone"`
	ProvinceName  string `json:"province_name"`
	CityName      string `json:"city_name"`
	AddressDetail string `json:"address_detail"`
	PostalCode    string `json:"postal_code"`
}

// Normalize returns a copy with surrounding whitespace removed from every field.
func (a ShippingAddress) Normalize() ShippingAddress {
	return ShippingAddress{
		ReceiverName:  strings.TrimSpace(a.ReceiverName),
		ReceiverPhone: strings.TrimSpace(a.ReceiverPhone),
		ProvinceName:  strings.TrimSpace(a.ProvinceName),
		CityName:      strings.TrimSpace(a.CityName),
		AddressDetail: strings.TrimSpace(a.AddressDetail),
		PostalCode:    strings.TrimSpace(a.PostalCode),
	}
}

// MissingField returns the name of the first blank field, if any.
func (a ShippingAddress) MissingField() (string, bool) {
	n := a.Normalize()
	fields := []struct {
		name  string
		value string
	}{
		{"receiver_name", n.ReceiverName},
		{"receiver_phone", n.ReceiverPhone},
		{"province_name", n.ProvinceName},
		{"city_name", n.CityName},
		{"address_detail", n.AddressDetail},
		{"postal_code", n.PostalCode},
	}
	for _, f := range fields {
		if f.value == "" {
			return f.name, true
		}
	}

	return "", false
}

// Order is a placed purchase with its price and address snapshot.
type Order struct {
	ID               int64
	UserID           uuid.UUID
	ContactEmail     string
	Status           OrderStatus
	SubtotalAmount   decimal.Decimal
	ShippingAmount   decimal.Decimal
	TotalAmount      decimal.Decimal
	ShippingAddress  ShippingAddress
	PaymentAuthority string // Token issued by the payment gateway for the current attempt.
	PaymentRefID     string // Settlement reference returned on successful verification.
	PaidAt           *time.Time
	Items            []*OrderItem
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ItemCount returns the total number of units across all lines.
func (o *Order) ItemCount() int {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}

	return count
}

// OrderItem is one product line of an order. Prices are captured at checkout.
type OrderItem struct {
	ID          int64
	OrderID     int64
	ProductID   int64
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
}
