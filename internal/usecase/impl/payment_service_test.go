package impl

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testCallbackURL = "https://shop.example.com/payment/callback"

type paymentServiceFixtures struct {
	service   *paymentService
	orderRepo *mockRepo.MockOrderRepository
	gateway   *mockService.MockPaymentGateway
	qrCode    *mockService.MockQRCodeService
	publisher *mockService.MockEventPublisher
	metrics   *mockService.MockOperationMetrics
	paidAt    time.Time
}

func createTestPaymentService(t *testing.T) paymentServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	gateway := mockService.NewMockPaymentGateway(t)
	qrCode := mockService.NewMockQRCodeService(t)
	publisher := mockService.NewMockEventPublisher(t)
	metrics := mockService.NewMockOperationMetrics(t)

	svc := NewPaymentService(PaymentServiceParams{
		OrderRepo: orderRepo,
		Gateway:   gateway,
		QRCode:    qrCode,
		Publisher: publisher,
		Metrics:   metrics,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	}).(*paymentService)

	paidAt := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return paidAt }

	gateway.EXPECT().StatusDescription(mock.AnythingOfType("int")).
		RunAndReturn(func(code int) string {
			switch code {
			case entity.PaymentStatusSuccess:
				return "Payment successful"
			case entity.PaymentStatusAlreadyVerified:
				return "Payment already verified"
			case entity.PaymentStatusCanceledByUser:
				return "Payment canceled by user"
			default:
				return "failure"
			}
		}).Maybe()

	return paymentServiceFixtures{
		service:   svc,
		orderRepo: orderRepo,
		gateway:   gateway,
		qrCode:    qrCode,
		publisher: publisher,
		metrics:   metrics,
		paidAt:    paidAt,
	}
}

func awaitingOrder(userID uuid.UUID) *entity.Order {
	order := pendingOrder(77, userID)
	order.PaymentAuthority = "A000000000000000000000000000000012345"

	return order
}

func TestPaymentService_StartPayment_Success(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	userID := uuid.New()
	order := pendingOrder(77, userID)

	fx.orderRepo.EXPECT().FindByIDForUser(ctx, int64(77), userID).Return(order, nil)
	fx.gateway.EXPECT().CreatePaymentRequest(ctx, order, testCallbackURL).Return(&entity.PaymentRequestResult{
		Success:    true,
		Authority:  "A123",
		PaymentURL: "https://sandbox.zarinpal.com/pg/StartPay/A123",
		Code:       entity.PaymentStatusSuccess,
	}, nil)
	fx.orderRepo.EXPECT().SetPaymentAuthority(ctx, int64(77), "A123").Return(true, nil)
	fx.metrics.EXPECT().ObserveOrderOperation(opPaymentRequest, service.MetricStatusSuccess)

	output, err := fx.service.StartPayment(ctx, userID, 77)
	require.NoError(t, err)
	assert.Equal(t, "A123", output.Authority)
	assert.Equal(t, "https://sandbox.zarinpal.com/pg/StartPay/A123", output.PaymentURL)
}

func TestPaymentService_StartPayment_Failures(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		setup   func(fx paymentServiceFixtures, ctx context.Context)
		wantErr error
	}{
		{
			name: "not the owner",
			setup: func(fx paymentServiceFixtures, ctx context.Context) {
				fx.orderRepo.EXPECT().FindByIDForUser(ctx, int64(77), userID).Return(nil, repository.ErrOrderNotFound)
			},
			wantErr: domainerrors.ErrOrderNotFound,
		},
		{
			name: "already paid",
			setup: func(fx paymentServiceFixtures, ctx context.Context) {
				order := pendingOrder(77, userID)
				order.Status = entity.OrderStatusPaid
				fx.orderRepo.EXPECT().FindByIDForUser(ctx, int64(77), userID).Return(order, nil)
			},
			wantErr: domainerrors.ErrOrderNotPayable,
		},
		{
			name: "gateway unreachable",
			setup: func(fx paymentServiceFixtures, ctx context.Context) {
				order := pendingOrder(77, userID)
				fx.orderRepo.EXPECT().FindByIDForUser(ctx, int64(77), userID).Return(order, nil)
				fx.gateway.EXPECT().CreatePaymentRequest(ctx, order, testCallbackURL).
					Return(nil, domainerrors.ErrPaymentGatewayUnavailable.WrapMessage("dial tcp: timeout"))
			},
			wantErr: domainerrors.ErrPaymentGatewayUnavailable,
		},
		{
			name: "gateway rejects",
			setup: func(fx paymentServiceFixtures, ctx context.Context) {
				order := pendingOrder(77, userID)
				fx.orderRepo.EXPECT().FindByIDForUser(ctx, int64(77), userID).Return(order, nil)
				fx.gateway.EXPECT().CreatePaymentRequest(ctx, order, testCallbackURL).
					Return(&entity.PaymentRequestResult{Success: false, Code: -11, Message: "merchant inactive"}, nil)
			},
			wantErr: domainerrors.ErrPaymentRequestRejected,
		},
		{
			name: "order left pending meanwhile",
			setup: func(fx paymentServiceFixtures, ctx context.Context) {
				order := pendingOrder(77, userID)
				fx.orderRepo.EXPECT().FindByIDForUser(ctx, int64(77), userID).Return(order, nil)
				fx.gateway.EXPECT().CreatePaymentRequest(ctx, order, testCallbackURL).
					Return(&entity.PaymentRequestResult{Success: true, Authority: "A9"}, nil)
				fx.orderRepo.EXPECT().SetPaymentAuthority(ctx, int64(77), "A9").Return(false, nil)
			},
			wantErr: domainerrors.ErrOrderNotPayable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPaymentService(t)
			ctx := context.Background()
			tt.setup(fx, ctx)
			fx.metrics.EXPECT().ObserveOrderOperation(opPaymentRequest, service.MetricStatusFailure)

			output, err := fx.service.StartPayment(ctx, userID, 77)
			require.Error(t, err)
			assert.Nil(t, output)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPaymentService_PaymentQR(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	userID := uuid.New()
	order := pendingOrder(77, userID)

	fx.orderRepo.EXPECT().FindByIDForUser(ctx, int64(77), userID).Return(order, nil)
	fx.gateway.EXPECT().CreatePaymentRequest(ctx, order, testCallbackURL).
		Return(&entity.PaymentRequestResult{Success: true, Authority: "A123"}, nil)
	fx.gateway.EXPECT().PaymentURL("A123").Return("https://sandbox.zarinpal.com/pg/StartPay/A123")
	fx.orderRepo.EXPECT().SetPaymentAuthority(ctx, int64(77), "A123").Return(true, nil)
	fx.metrics.EXPECT().ObserveOrderOperation(opPaymentRequest, service.MetricStatusSuccess)
	fx.qrCode.EXPECT().GeneratePaymentQR("https://sandbox.zarinpal.com/pg/StartPay/A123").Return([]byte("png"), nil)

	png, err := fx.service.PaymentQR(ctx, userID, 77)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestPaymentService_HandleCallback_VerifiesAndSettles(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	order := awaitingOrder(uuid.New())

	fx.orderRepo.EXPECT().FindByAuthority(ctx, order.PaymentAuthority).Return(order, nil)
	fx.gateway.EXPECT().VerifyPayment(ctx, order.PaymentAuthority, order.TotalAmount).
		Return(&entity.PaymentVerification{Success: true, RefID: "201", StatusCode: entity.PaymentStatusSuccess}, nil)
	fx.orderRepo.EXPECT().MarkPaid(ctx, int64(77), "201", fx.paidAt).Return(true, nil)
	fx.metrics.EXPECT().ObserveOrderOperation(opPaymentVerify, service.MetricStatusSuccess)
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(event *service.OrderEvent) bool {
			return event.Type == service.OrderEventPaid && event.Status == "paid"
		})).
		Return(nil)

	output, err := fx.service.HandleCallback(ctx, order.PaymentAuthority, "OK")
	require.NoError(t, err)
	assert.True(t, output.Success)
	assert.False(t, output.AlreadyVerified)
	assert.Equal(t, "201", output.RefID)
	assert.Equal(t, entity.PaymentStatusSuccess, output.StatusCode)
	assert.Equal(t, "Payment successful", output.Message)
}

func TestPaymentService_HandleCallback_SecondCallIsNoOp(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()

	order := awaitingOrder(uuid.New())
	order.Status = entity.OrderStatusPaid
	order.PaymentRefID = "201"

	fx.orderRepo.EXPECT().FindByAuthority(ctx, order.PaymentAuthority).Return(order, nil)

	output, err := fx.service.HandleCallback(ctx, order.PaymentAuthority, "OK")
	require.NoError(t, err)
	assert.True(t, output.Success)
	assert.True(t, output.AlreadyVerified)
	assert.Equal(t, "201", output.RefID)
	assert.Equal(t, entity.PaymentStatusAlreadyVerified, output.StatusCode)

	fx.gateway.AssertNotCalled(t, "VerifyPayment", mock.Anything, mock.Anything, mock.Anything)
	fx.orderRepo.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentService_HandleCallback_AlreadyVerifiedCodeSettlesPendingOrder(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	order := awaitingOrder(uuid.New())

	fx.orderRepo.EXPECT().FindByAuthority(ctx, order.PaymentAuthority).Return(order, nil)
	fx.gateway.EXPECT().VerifyPayment(ctx, order.PaymentAuthority, order.TotalAmount).
		Return(&entity.PaymentVerification{RefID: "201", StatusCode: entity.PaymentStatusAlreadyVerified}, nil)
	fx.orderRepo.EXPECT().MarkPaid(ctx, int64(77), "201", fx.paidAt).Return(true, nil)
	fx.metrics.EXPECT().ObserveOrderOperation(opPaymentVerify, service.MetricStatusSuccess)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

	output, err := fx.service.HandleCallback(ctx, order.PaymentAuthority, "OK")
	require.NoError(t, err)
	assert.True(t, output.Success)
	assert.True(t, output.AlreadyVerified)
}

func TestPaymentService_HandleCallback_ConcurrentSettlementReportsStoredRef(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	order := awaitingOrder(uuid.New())

	settled := awaitingOrder(order.UserID)
	settled.Status = entity.OrderStatusPaid
	settled.PaymentRefID = "201"

	fx.orderRepo.EXPECT().FindByAuthority(ctx, order.PaymentAuthority).Return(order, nil)
	fx.gateway.EXPECT().VerifyPayment(ctx, order.PaymentAuthority, order.TotalAmount).
		Return(&entity.PaymentVerification{RefID: "201", StatusCode: entity.PaymentStatusAlreadyVerified}, nil)
	fx.orderRepo.EXPECT().MarkPaid(ctx, int64(77), "201", fx.paidAt).Return(false, nil)
	fx.orderRepo.EXPECT().FindByID(ctx, int64(77)).Return(settled, nil)
	fx.metrics.EXPECT().ObserveOrderOperation(opPaymentVerify, service.MetricStatusSuccess)

	output, err := fx.service.HandleCallback(ctx, order.PaymentAuthority, "OK")
	require.NoError(t, err)
	assert.True(t, output.AlreadyVerified)
	assert.Equal(t, "201", output.RefID)
	fx.publisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything)
}

func TestPaymentService_HandleCallback_UserCanceledLeavesOrderPending(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	order := awaitingOrder(uuid.New())

	fx.orderRepo.EXPECT().FindByAuthority(ctx, order.PaymentAuthority).Return(order, nil)

	output, err := fx.service.HandleCallback(ctx, order.PaymentAuthority, "NOK")
	require.NoError(t, err)
	assert.False(t, output.Success)
	assert.Equal(t, entity.PaymentStatusCanceledByUser, output.StatusCode)
	assert.Equal(t, "Payment canceled by user", output.Message)

	fx.gateway.AssertNotCalled(t, "VerifyPayment", mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentService_HandleCallback_VerificationFailure(t *testing.T) {
	fx := createTestPaymentService(t)
	var logs bytes.Buffer
	fx.service.logger = slog.New(slog.NewTextHandler(&logs, nil))
	ctx := context.Background()
	order := awaitingOrder(uuid.New())

	fx.orderRepo.EXPECT().FindByAuthority(ctx, order.PaymentAuthority).Return(order, nil)
	fx.gateway.EXPECT().VerifyPayment(ctx, order.PaymentAuthority, order.TotalAmount).
		Return(&entity.PaymentVerification{StatusCode: -33, Message: "amount mismatch"}, nil)
	fx.metrics.EXPECT().ObserveOrderOperation(opPaymentVerify, service.MetricStatusFailure)

	output, err := fx.service.HandleCallback(ctx, order.PaymentAuthority, "OK")
	require.NoError(t, err)
	assert.False(t, output.Success)
	assert.Equal(t, -33, output.StatusCode)
	assert.Contains(t, logs.String(), domainerrors.ErrPaymentVerificationFailed.Message())
	assert.Contains(t, logs.String(), "amount mismatch")

	fx.orderRepo.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentService_HandleCallback_GatewayUnreachable(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()
	order := awaitingOrder(uuid.New())

	fx.orderRepo.EXPECT().FindByAuthority(ctx, order.PaymentAuthority).Return(order, nil)
	fx.gateway.EXPECT().VerifyPayment(ctx, order.PaymentAuthority, order.TotalAmount).
		Return(nil, domainerrors.ErrPaymentGatewayUnavailable.WrapMessage("connection refused"))
	fx.metrics.EXPECT().ObserveOrderOperation(opPaymentVerify, service.MetricStatusFailure)

	_, err := fx.service.HandleCallback(ctx, order.PaymentAuthority, "OK")
	assert.ErrorIs(t, err, domainerrors.ErrPaymentGatewayUnavailable)
}

func TestPaymentService_HandleCallback_UnknownAuthority(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()

	fx.orderRepo.EXPECT().FindByAuthority(ctx, "missing").Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.HandleCallback(ctx, "missing", "OK")
	assert.ErrorIs(t, err, domainerrors.ErrPaymentNotFound)

	_, err = fx.service.HandleCallback(ctx, "  ", "OK")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPaymentService_HandleCallback_CanceledOrderNotPayable(t *testing.T) {
	fx := createTestPaymentService(t)
	ctx := context.Background()

	order := awaitingOrder(uuid.New())
	order.Status = entity.OrderStatusCanceled
	fx.orderRepo.EXPECT().FindByAuthority(ctx, order.PaymentAuthority).Return(order, nil)

	_, err := fx.service.HandleCallback(ctx, order.PaymentAuthority, usecase.CallbackStatusOK)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotPayable)
}
