package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Checkout: config.CheckoutConfig{
			OrderDetailPath:              "/orders/%d",
			DefaultShippingCost:          70000,
			DefaultFreeShippingThreshold: 500000,
		},
		Payment: &config.PaymentConfig{
			MerchantID:  "test-merchant",
			Sandbox:     true,
			CallbackURL: "https://shop.example.com/payment/callback",
		},
	}
}

func amount(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// txFixture wires a mocked transaction manager to mocked transactional repositories.
type txFixture struct {
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	productRepo  *mockRepo.MockProductRepository
	imageRepo    *mockRepo.MockProductImageRepository
	orderRepo    *mockRepo.MockOrderRepository
	settingsRepo *mockRepo.MockSettingsRepository
}

func newTxFixture(t *testing.T) *txFixture {
	t.Helper()

	f := &txFixture{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
		imageRepo:    mockRepo.NewMockProductImageRepository(t),
		orderRepo:    mockRepo.NewMockOrderRepository(t),
		settingsRepo: mockRepo.NewMockSettingsRepository(t),
	}
	f.factory.EXPECT().ProductRepo().Return(f.productRepo).Maybe()
	f.factory.EXPECT().ProductImageRepo().Return(f.imageRepo).Maybe()
	f.factory.EXPECT().OrderRepo().Return(f.orderRepo).Maybe()
	f.factory.EXPECT().SettingsRepo().Return(f.settingsRepo).Maybe()

	return f
}

// expectTx runs every transaction callback against the mocked factory.
func (f *txFixture) expectTx(ctx context.Context) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
}
