package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderUsecase defines order reads and status changes after checkout.
type OrderUsecase interface {
	// ListOrders returns the user's orders, newest first.
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// GetOrder returns an order with its items if the user owns it.
	GetOrder(ctx context.Context, userID uuid.UUID, orderID int64) (*entity.Order, error)

	// CancelOrder cancels a pending order of the user and restores its stock.
	CancelOrder(ctx context.Context, userID uuid.UUID, orderID int64) (*entity.Order, error)

	// UpdateOrderStatus moves any order along the fulfilment transitions.
	UpdateOrderStatus(ctx context.Context, orderID int64, status entity.OrderStatus) (*entity.Order, error)

	// ReleaseStaleOrders cancels pending orders created before the cutoff and
	// returns their units to stock. With dryRun it only reports them.
	ReleaseStaleOrders(ctx context.Context, before time.Time, dryRun bool) ([]*entity.Order, error)
}
