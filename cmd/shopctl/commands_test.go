package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockservice "storefront/internal/mocks/service"
	mockusecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testCommands struct {
	*commands
	orderUC    *mockusecase.MockOrderUsecase
	productUC  *mockusecase.MockProductUsecase
	settingsUC *mockusecase.MockSettingsUsecase
	gateway    *mockservice.MockPaymentGateway
	buf        *bytes.Buffer
}

func newTestCommands(t *testing.T, cfg *config.Config) *testCommands {
	t.Helper()

	tc := &testCommands{
		orderUC:    mockusecase.NewMockOrderUsecase(t),
		productUC:  mockusecase.NewMockProductUsecase(t),
		settingsUC: mockusecase.NewMockSettingsUsecase(t),
		gateway:    mockservice.NewMockPaymentGateway(t),
		buf:        &bytes.Buffer{},
	}
	tc.commands = &commands{
		cfg:        cfg,
		orderUC:    tc.orderUC,
		productUC:  tc.productUC,
		settingsUC: tc.settingsUC,
		gateway:    tc.gateway,
		out:        tc.buf,
	}

	return tc
}

func TestSetupShipping(t *testing.T) {
	tc := newTestCommands(t, &config.Config{})
	want := &entity.ShippingSettings{
		ShippingCost:          decimal.NewFromInt(70000),
		FreeShippingThreshold: decimal.NewFromInt(500000),
	}
	tc.settingsUC.EXPECT().UpdateShippingSettings(mock.Anything, mock.MatchedBy(func(s *entity.ShippingSettings) bool {
		return s.ShippingCost.Equal(want.ShippingCost) && s.FreeShippingThreshold.Equal(want.FreeShippingThreshold)
	})).Return(want, nil)

	require.NoError(t, tc.setupShipping(context.Background(), "70000", "500000"))
	assert.Contains(t, tc.buf.String(), "Shipping cost: 70000")
	assert.Contains(t, tc.buf.String(), "Free shipping from: 500000")
}

func TestSetupShipping_InvalidAmount(t *testing.T) {
	tc := newTestCommands(t, &config.Config{})

	assert.Error(t, tc.setupShipping(context.Background(), "seventy", "500000"))
	assert.Error(t, tc.setupShipping(context.Background(), "70000", ""))
}

func TestSetStock(t *testing.T) {
	tc := newTestCommands(t, &config.Config{})
	tc.productUC.EXPECT().SetProductStock(mock.Anything, int64(4), 12).
		Return(&entity.Product{ID: 4, Name: "Saffron", StockQuantity: 12}, nil)

	require.NoError(t, tc.setStock(context.Background(), 4, 12))
	assert.Equal(t, "Product 4 (Saffron) stock set to 12\n", tc.buf.String())
}

func TestSetStock_UnknownProduct(t *testing.T) {
	tc := newTestCommands(t, &config.Config{})
	tc.productUC.EXPECT().SetProductStock(mock.Anything, int64(99), 1).
		Return(nil, domainerrors.NewProductNotFoundError(99))

	err := tc.setStock(context.Background(), 99, 1)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestFixInventory(t *testing.T) {
	cutoff := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	stale := []*entity.Order{{
		ID:        12,
		Items:     []*entity.OrderItem{{Quantity: 2}, {Quantity: 1}},
		CreatedAt: cutoff.Add(-48 * time.Hour),
	}}

	for _, dryRun := range []bool{true, false} {
		tc := newTestCommands(t, &config.Config{})
		tc.orderUC.EXPECT().ReleaseStaleOrders(mock.Anything, cutoff, dryRun).Return(stale, nil)
		tc.productUC.EXPECT().ReservedStock(mock.Anything).Return([]*usecase.StockReservation{
			{ProductID: 3, Name: "Tea", Stock: 5, Reserved: 2},
		}, nil)

		require.NoError(t, tc.fixInventory(context.Background(), cutoff, dryRun))

		out := tc.buf.String()
		if dryRun {
			assert.Contains(t, out, "Would release 1 pending order(s)")
		} else {
			assert.Contains(t, out, "Released 1 pending order(s)")
		}
		assert.Contains(t, out, "order #12  3 unit(s)")
		assert.Contains(t, out, "product #3 Tea: stock 5, reserved 2")
	}
}

func TestFixInventory_NothingReserved(t *testing.T) {
	tc := newTestCommands(t, &config.Config{})
	tc.orderUC.EXPECT().ReleaseStaleOrders(mock.Anything, mock.Anything, true).Return(nil, nil)
	tc.productUC.EXPECT().ReservedStock(mock.Anything).Return(nil, nil)

	require.NoError(t, tc.fixInventory(context.Background(), time.Now(), true))
	assert.Contains(t, tc.buf.String(), "  none")
}

func TestTestGateway(t *testing.T) {
	sandbox := &config.Config{Payment: &config.PaymentConfig{Sandbox: true, CallbackURL: "http://localhost/payment/callback"}}

	t.Run("prints the payment url", func(t *testing.T) {
		tc := newTestCommands(t, sandbox)
		tc.gateway.EXPECT().CreatePaymentRequest(mock.Anything, mock.MatchedBy(func(o *entity.Order) bool {
			return o.TotalAmount.Equal(decimal.NewFromInt(1000))
		}), "http://localhost/payment/callback").Return(&entity.PaymentRequestResult{
			Success:    true,
			Authority:  "A0000000000000000000000000000012345",
			PaymentURL: "https://sandbox.zarinpal.com/pg/StartPay/A0000000000000000000000000000012345",
		}, nil)

		require.NoError(t, tc.testGateway(context.Background(), "1000"))
		assert.Contains(t, tc.buf.String(), "Payment URL: https://sandbox.zarinpal.com/pg/StartPay/")
	})

	t.Run("rejected request", func(t *testing.T) {
		tc := newTestCommands(t, sandbox)
		tc.gateway.EXPECT().CreatePaymentRequest(mock.Anything, mock.Anything, mock.Anything).
			Return(&entity.PaymentRequestResult{Success: false, Message: "merchant invalid", Code: -11}, nil)

		err := tc.testGateway(context.Background(), "1000")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "code -11")
	})

	t.Run("refuses production", func(t *testing.T) {
		tc := newTestCommands(t, &config.Config{Payment: &config.PaymentConfig{}})

		assert.Error(t, tc.testGateway(context.Background(), "1000"))
	})

	t.Run("invalid amount", func(t *testing.T) {
		tc := newTestCommands(t, sandbox)

		assert.Error(t, tc.testGateway(context.Background(), "-5"))
	})
}
