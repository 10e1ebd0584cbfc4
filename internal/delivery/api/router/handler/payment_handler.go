package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// PaymentHandler receives the gateway's redirect after the shopper pays.
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// Callback handles GET /payment/callback?Authority=...&Status=OK|NOK.
// A failed or canceled payment is a normal result, reported with success=false.
func (h *PaymentHandler) Callback(c echo.Context) error {
	authority := c.QueryParam("Authority")
	status := c.QueryParam("Status")

	out, err := h.paymentUC.HandleCallback(c.Request().Context(), authority, status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Payment callback handled",
		slog.Int64("order_id", out.OrderID),
		slog.Bool("success", out.Success),
		slog.Bool("already_verified", out.AlreadyVerified),
		slog.Int("status_code", out.StatusCode),
	)

	return response.Success(c, http.StatusOK, out)
}
