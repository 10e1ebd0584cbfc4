package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CartItem is one line of a submitted cart.
type CartItem struct {
	ProductID int64 `json:"id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gt=0"`
}

// CheckoutInput holds everything needed to place an order.
type CheckoutInput struct {
	UserID       uuid.UUID
	ContactEmail string
	Address      entity.ShippingAddress
	Items        []CartItem
}

// CheckoutOutput identifies the placed order and where to send the shopper next.
type CheckoutOutput struct {
	Order       *entity.Order
	OrderID     int64
	RedirectURL string
}

// CheckoutUsecase turns a cart into a pending order.
type CheckoutUsecase interface {
	// PlaceOrder validates the cart against live stock and prices, then writes
	// the order, its items and the stock decrements in one transaction.
	PlaceOrder(ctx context.Context, input *CheckoutInput) (*CheckoutOutput, error)
}
