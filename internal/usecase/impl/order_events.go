package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
)

// Operation labels for order metrics.
const (
	opCreate         = "create"
	opCancel         = "cancel"
	opStatus         = "status"
	opPaymentRequest = "payment_request"
	opPaymentVerify  = "payment_verify"
)

func metricStatus(err error) string {
	if err != nil {
		return service.MetricStatusFailure
	}

	return service.MetricStatusSuccess
}

func newOrderEvent(ctx context.Context, eventType string, order *entity.Order) *service.OrderEvent {
	return &service.OrderEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:    order.ID,
		UserID:     order.UserID.String(),
		Status:     order.Status.String(),
		Total:      order.TotalAmount.String(),
		ItemCount:  order.ItemCount(),
		OccurredAt: time.Now().UTC(),
	}
}

// publishOrderEvent never fails the caller; the order change is already committed.
func publishOrderEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, eventType string, order *entity.Order) {
	if publisher == nil {
		return
	}

	event := newOrderEvent(ctx, eventType, order)
	if err := publisher.PublishOrderEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish order event",
			slog.String("eventType", eventType),
			slog.Int64("orderID", order.ID),
			slog.Any("error", err),
		)
	}
}
