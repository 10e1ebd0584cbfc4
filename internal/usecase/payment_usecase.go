package usecase

import (
	"context"

	"github.com/google/uuid"
)

// Gateway callback status values.
const (
	CallbackStatusOK  = "OK"
	CallbackStatusNOK = "NOK"
)

// StartPaymentOutput is a payment attempt opened at the gateway.
type StartPaymentOutput struct {
	OrderID    int64  `json:"order_id"`
	Authority  string `json:"authority"`
	PaymentURL string `json:"payment_url"`
}

// PaymentCallbackOutput is the result of reconciling a gateway redirect.
type PaymentCallbackOutput struct {
	OrderID         int64  `json:"order_id"`
	Success         bool   `json:"success"`
	AlreadyVerified bool   `json:"already_verified"`
	RefID           string `json:"ref_id,omitempty"`
	StatusCode      int    `json:"status_code"`
	Message         string `json:"message"`
}

// PaymentUsecase drives the request/verify round trip with the gateway.
type PaymentUsecase interface {
	// StartPayment opens a gateway payment for a pending order owned by the user.
	StartPayment(ctx context.Context, userID uuid.UUID, orderID int64) (*StartPaymentOutput, error)

	// PaymentQR opens a payment like StartPayment and renders its URL as a PNG QR code.
	PaymentQR(ctx context.Context, userID uuid.UUID, orderID int64) ([]byte, error)

	// HandleCallback verifies the payment identified by authority and settles the order once.
	HandleCallback(ctx context.Context, authority, status string) (*PaymentCallbackOutput, error)
}
