// Package service defines interfaces for collaborators the use cases depend on.
// Implementations live under internal/infra.
package service

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// PaymentGateway is a hosted payment provider using a request/verify round trip.
type PaymentGateway interface {
	// CreatePaymentRequest opens a payment for the order's total. On success the
	// returned authority is also set on order.PaymentAuthority; persisting it is
	// the caller's job. A non-nil error means the gateway could not be reached.
	CreatePaymentRequest(ctx context.Context, order *entity.Order, callbackURL string) (*entity.PaymentRequestResult, error)

	// VerifyPayment confirms a completed payment for the expected amount.
	// A non-nil error means the gateway could not be reached.
	VerifyPayment(ctx context.Context, authority string, amount decimal.Decimal) (*entity.PaymentVerification, error)

	// PaymentURL builds the pay-start URL for an authority.
	PaymentURL(authority string) string

	// StatusDescription maps a provider status code to text.
	StatusDescription(code int) string
}
