package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
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

type paymentService struct {
	orderRepo   repository.OrderRepository
	gateway     service.PaymentGateway
	qrCode      service.QRCodeService
	publisher   service.EventPublisher
	metrics     service.OperationMetrics
	callbackURL string
	logger      *slog.Logger
	now         func() time.Time
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	Gateway   service.PaymentGateway
	QRCode    service.QRCodeService
	Publisher service.EventPublisher
	Metrics   service.OperationMetrics
	Config    *config.Config
	Logger    *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	callbackURL := ""
	if params.Config != nil && params.Config.Payment != nil {
		callbackURL = params.Config.Payment.CallbackURL
	}

	return &paymentService{
		orderRepo:   params.OrderRepo,
		gateway:     params.Gateway,
		qrCode:      params.QRCode,
		publisher:   params.Publisher,
		metrics:     params.Metrics,
		callbackURL: callbackURL,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *paymentService) observe(operation string, err error) {
	if srv.metrics != nil {
		srv.metrics.ObserveOrderOperation(operation, metricStatus(err))
	}
}

// StartPayment opens a new gateway attempt. A pending order may be retried any number of times.
func (srv *paymentService) StartPayment(ctx context.Context, userID uuid.UUID, orderID int64) (*usecase.StartPaymentOutput, error) {
	output, err := srv.startPayment(ctx, userID, orderID)
	srv.observe(opPaymentRequest, err)

	return output, err
}

func (srv *paymentService) startPayment(ctx context.Context, userID uuid.UUID, orderID int64) (*usecase.StartPaymentOutput, error) {
	order, err := srv.orderRepo.FindByIDForUser(ctx, orderID, userID)
	if err != nil {
		return nil, mapOrderNotFound(err)
	}
	if order.Status != entity.OrderStatusPending {
		return nil, domainerrors.ErrOrderNotPayable.WithDetails("status=" + order.Status.String())
	}

	result, err := srv.gateway.CreatePaymentRequest(ctx, order, srv.callbackURL)
	if err != nil {
		srv.log(ctx).Error("Payment gateway unreachable", slog.Int64("orderID", order.ID), slog.Any("error", err))

		return nil, err
	}
	if !result.Success {
		srv.log(ctx).Warn("Payment request rejected",
			slog.Int64("orderID", order.ID),
			slog.Int("code", result.Code),
			slog.String("message", result.Message),
		)

		return nil, domainerrors.ErrPaymentRequestRejected
	}

	ok, err := srv.orderRepo.SetPaymentAuthority(ctx, order.ID, result.Authority)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store payment authority")
	}
	if !ok {
		return nil, domainerrors.ErrOrderNotPayable.WithDetails("order left pending state")
	}

	paymentURL := result.PaymentURL
	if paymentURL == "" {
		paymentURL = srv.gateway.PaymentURL(result.Authority)
	}

	srv.log(ctx).Info("Payment request created", slog.Int64("orderID", order.ID), slog.String("authority", result.Authority))

	return &usecase.StartPaymentOutput{
		OrderID:    order.ID,
		Authority:  result.Authority,
		PaymentURL: paymentURL,
	}, nil
}

// PaymentQR renders the pay-start link of a fresh attempt.
func (srv *paymentService) PaymentQR(ctx context.Context, userID uuid.UUID, orderID int64) ([]byte, error) {
	output, err := srv.StartPayment(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GeneratePaymentQR(output.PaymentURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render payment QR code")
	}

	return png, nil
}

// HandleCallback reconciles the gateway redirect. Settlement happens at most once per order.
func (srv *paymentService) HandleCallback(ctx context.Context, authority, status string) (*usecase.PaymentCallbackOutput, error) {
	authority = strings.TrimSpace(authority)
	if authority == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("authority is required")
	}

	order, err := srv.orderRepo.FindByAuthority(ctx, authority)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by authority")
	}

	if isSettled(order) {
		return srv.alreadyVerified(order), nil
	}
	if order.Status != entity.OrderStatusPending {
		return nil, domainerrors.ErrOrderNotPayable.WithDetails("status=" + order.Status.String())
	}

	if !strings.EqualFold(strings.TrimSpace(status), usecase.CallbackStatusOK) {
		srv.log(ctx).Info("Payment canceled at gateway", slog.Int64("orderID", order.ID))

		return &usecase.PaymentCallbackOutput{
			OrderID:    order.ID,
			StatusCode: entity.PaymentStatusCanceledByUser,
			Message:    srv.gateway.StatusDescription(entity.PaymentStatusCanceledByUser),
		}, nil
	}

	output, err := srv.verify(ctx, order)
	outcome := err
	if err == nil && !output.Success {
		outcome = domainerrors.ErrPaymentVerificationFailed
	}
	srv.observe(opPaymentVerify, outcome)

	return output, err
}

func (srv *paymentService) verify(ctx context.Context, order *entity.Order) (*usecase.PaymentCallbackOutput, error) {
	verification, err := srv.gateway.VerifyPayment(ctx, order.PaymentAuthority, order.TotalAmount)
	if err != nil {
		srv.log(ctx).Error("Payment verification unreachable", slog.Int64("orderID", order.ID), slog.Any("error", err))

		return nil, err
	}

	code := verification.StatusCode
	if code != entity.PaymentStatusSuccess && code != entity.PaymentStatusAlreadyVerified {
		srv.log(ctx).Warn("Payment verification failed",
			slog.Int64("orderID", order.ID),
			slog.Int("code", code),
			slog.Any("error", domainerrors.ErrPaymentVerificationFailed.WrapMessage(verification.Message)),
		)

		return &usecase.PaymentCallbackOutput{
			OrderID:    order.ID,
			StatusCode: code,
			Message:    srv.gateway.StatusDescription(code),
		}, nil
	}

	refID := verification.RefID
	if refID == "" {
		refID = order.PaymentRefID
	}

	paidAt := srv.now()
	settled, err := srv.orderRepo.MarkPaid(ctx, order.ID, refID, paidAt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to mark order paid")
	}
	if !settled {
		// Another callback won the race; report what it stored.
		current, err := srv.orderRepo.FindByID(ctx, order.ID)
		if err != nil {
			return nil, mapOrderNotFound(err)
		}
		if isSettled(current) {
			return srv.alreadyVerified(current), nil
		}

		return nil, domainerrors.ErrOrderNotPayable.WithDetails("status=" + current.Status.String())
	}

	order.Status = entity.OrderStatusPaid
	order.PaymentRefID = refID
	order.PaidAt = &paidAt

	srv.log(ctx).Info("Order paid",
		slog.Int64("orderID", order.ID),
		slog.String("refID", refID),
		slog.String("total", order.TotalAmount.String()),
	)
	publishOrderEvent(ctx, srv.publisher, srv.log(ctx), service.OrderEventPaid, order)

	return &usecase.PaymentCallbackOutput{
		OrderID:         order.ID,
		Success:         true,
		AlreadyVerified: code == entity.PaymentStatusAlreadyVerified,
		RefID:           refID,
		StatusCode:      code,
		Message:         srv.gateway.StatusDescription(code),
	}, nil
}

func (srv *paymentService) alreadyVerified(order *entity.Order) *usecase.PaymentCallbackOutput {
	return &usecase.PaymentCallbackOutput{
		OrderID:         order.ID,
		Success:         true,
		AlreadyVerified: true,
		RefID:           order.PaymentRefID,
		StatusCode:      entity.PaymentStatusAlreadyVerified,
		Message:         srv.gateway.StatusDescription(entity.PaymentStatusAlreadyVerified),
	}
}

// isSettled reports whether the order has been paid, including later fulfilment states.
func isSettled(order *entity.Order) bool {
	switch order.Status {
	case entity.OrderStatusPaid, entity.OrderStatusProcessing, entity.OrderStatusShipped, entity.OrderStatusDelivered:
		return true
	default:
		return false
	}
}
