package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	publisher service.EventPublisher
	metrics   service.OperationMetrics
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	Metrics   service.OperationMetrics
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		publisher: params.Publisher,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *orderService) observe(operation string, err error) {
	if srv.metrics != nil {
		srv.metrics.ObserveOrderOperation(operation, metricStatus(err))
	}
}

// ListOrders returns the user's orders, newest first.
func (srv *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder returns the order only to its owner; anyone else sees not found.
func (srv *orderService) GetOrder(ctx context.Context, userID uuid.UUID, orderID int64) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByIDForUser(ctx, orderID, userID)
	if err != nil {
		return nil, mapOrderNotFound(err)
	}

	return order, nil
}

// CancelOrder cancels a pending order and puts its units back on the shelf.
func (srv *orderService) CancelOrder(ctx context.Context, userID uuid.UUID, orderID int64) (*entity.Order, error) {
	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.OrderRepo().FindByIDForUser(ctx, orderID, userID)
		if err != nil {
			return mapOrderNotFound(err)
		}
		order = found

		return cancelOrderInTx(ctx, repoFactory, order)
	})
	srv.observe(opCancel, err)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order canceled", slog.Int64("orderID", order.ID), slog.String("userID", userID.String()))
	publishOrderEvent(ctx, srv.publisher, srv.log(ctx), service.OrderEventCanceled, order)

	return order, nil
}

// UpdateOrderStatus applies an administrative status change along the allowed transitions.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, orderID int64, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown order status: " + status.String())
	}

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.OrderRepo().FindByID(ctx, orderID)
		if err != nil {
			return mapOrderNotFound(err)
		}
		order = found

		if status == entity.OrderStatusCanceled {
			return cancelOrderInTx(ctx, repoFactory, order)
		}

		return transitionInTx(ctx, repoFactory.OrderRepo(), order, status)
	})
	srv.observe(opStatus, err)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order status updated", slog.Int64("orderID", order.ID), slog.String("status", order.Status.String()))

	eventType := service.OrderEventStatus
	switch order.Status {
	case entity.OrderStatusCanceled:
		eventType = service.OrderEventCanceled
	case entity.OrderStatusPaid:
		eventType = service.OrderEventPaid
	}
	publishOrderEvent(ctx, srv.publisher, srv.log(ctx), eventType, order)

	return order, nil
}

// ReleaseStaleOrders cancels abandoned pending orders one transaction at a time.
func (srv *orderService) ReleaseStaleOrders(ctx context.Context, before time.Time, dryRun bool) ([]*entity.Order, error) {
	stale, err := srv.orderRepo.ListPendingBefore(ctx, before)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stale orders")
	}
	if dryRun {
		return stale, nil
	}

	released := make([]*entity.Order, 0, len(stale))
	for _, order := range stale {
		err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			return cancelOrderInTx(ctx, repoFactory, order)
		})
		srv.observe(opCancel, err)
		if errors.Is(err, domainerrors.ErrInvalidStatusTransition) {
			// Paid or canceled since it was listed.
			continue
		}
		if err != nil {
			return released, errors.Wrapf(err, "failed to release order %d", order.ID)
		}

		released = append(released, order)
		publishOrderEvent(ctx, srv.publisher, srv.log(ctx), service.OrderEventCanceled, order)
	}

	srv.log(ctx).Info("Released stale pending orders", slog.Int("count", len(released)), slog.Time("before", before))

	return released, nil
}

// cancelOrderInTx moves a pending order to canceled and restores its stock.
func cancelOrderInTx(ctx context.Context, repoFactory repository.RepositoryFactory, order *entity.Order) error {
	if err := transitionInTx(ctx, repoFactory.OrderRepo(), order, entity.OrderStatusCanceled); err != nil {
		return err
	}

	productRepo := repoFactory.ProductRepo()
	for _, item := range order.Items {
		if err := productRepo.IncrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			return errors.Wrapf(err, "failed to restore stock for product %d", item.ProductID)
		}
	}

	return nil
}

func transitionInTx(ctx context.Context, orderRepo repository.OrderRepository, order *entity.Order, to entity.OrderStatus) error {
	from := order.Status
	if !from.CanTransitionTo(to) {
		return domainerrors.NewInvalidStatusTransitionError(from.String(), to.String())
	}

	ok, err := orderRepo.TransitionStatus(ctx, order.ID, from, to)
	if err != nil {
		return errors.Wrap(err, "failed to update order status")
	}
	if !ok {
		return domainerrors.NewInvalidStatusTransitionError(from.String(), to.String())
	}
	order.Status = to

	return nil
}

func mapOrderNotFound(err error) error {
	if errors.Is(err, repository.ErrOrderNotFound) {
		return domainerrors.ErrOrderNotFound
	}

	return errors.Wrap(err, "failed to find order")
}
