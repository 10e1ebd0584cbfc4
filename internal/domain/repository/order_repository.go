package repository

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order persistence.
type OrderRepository interface {
	// Create inserts the order and all of its items, filling in generated ids.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its items.
	FindByID(ctx context.Context, id int64) (*entity.Order, error)

	// FindByIDForUser retrieves an order with its items only if userID owns it.
	FindByIDForUser(ctx context.Context, id int64, userID uuid.UUID) (*entity.Order, error)

	// FindByAuthority retrieves the order holding the given payment authority.
	FindByAuthority(ctx context.Context, authority string) (*entity.Order, error)

	// ListByUser returns the user's orders, newest first, without items.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// SetPaymentAuthority stores the authority of a new payment attempt while the order is pending.
	// It reports false when the order is no longer pending.
	SetPaymentAuthority(ctx context.Context, id int64, authority string) (bool, error)

	// MarkPaid moves a pending order to paid with its settlement reference.
	// It reports false when the order was not pending, so settlement happens once.
	MarkPaid(ctx context.Context, id int64, refID string, paidAt time.Time) (bool, error)

	// TransitionStatus moves the order from one status to another atomically.
	// It reports false when the current status is not from.
	TransitionStatus(ctx context.Context, id int64, from, to entity.OrderStatus) (bool, error)

	// ListPendingBefore returns pending orders created before the cutoff, with items, oldest first.
	ListPendingBefore(ctx context.Context, before time.Time) ([]*entity.Order, error)

	// PendingQuantities sums ordered quantities per product across pending orders.
	PendingQuantities(ctx context.Context) (map[int64]int, error)
}
