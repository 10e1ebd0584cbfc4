package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// TokenVerifier validates the OIDC token Pub/Sub attaches to push requests.
type TokenVerifier func(ctx context.Context, token, audience string) error

// PushHandler consumes order events delivered in Pub/Sub push format.
type PushHandler struct {
	audience  string
	verify    TokenVerifier
	logger    *slog.Logger
	productUC usecase.ProductUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	ProductUC usecase.ProductUsecase
}

// NewPushHandler creates a new Pub/Sub push handler. Token verification is
// enabled when worker.pushAudience is set.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		logger:    params.Logger,
		productUC: params.ProductUC,
	}
	if params.Config.Worker != nil && params.Config.Worker.PushAudience != "" {
		h.audience = params.Config.Worker.PushAudience
		h.verify = validateGoogleToken
	}

	return h
}

// WithTokenVerifier replaces the verifier, mainly for tests.
func (h *PushHandler) WithTokenVerifier(audience string, verify TokenVerifier) *PushHandler {
	h.audience = audience
	h.verify = verify

	return h
}

// HandlePush handles incoming Pub/Sub push messages.
// Retryable failures answer 503 so the broker redelivers; anything else is acked.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verify != nil {
		if err := h.verifyRequest(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var envelope service.PushEnvelope
	if err := c.Bind(&envelope); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := envelope.OrderEvent()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode order event",
			slog.String("message_id", envelope.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	ctx, reqLogger := deliverycontext.WithRequestScope(ctx, extractRequestID(ctx, envelope.Message.Attributes, event), h.logger)

	reqLogger.Info("[Worker] Processing order event",
		slog.String("event_id", event.EventID),
		slog.String("type", event.Type),
		slog.Int64("order_id", event.OrderID),
	)

	if err := h.processEvent(ctx, event); err != nil {
		reqLogger.Error("[Worker] Failed to process order event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// processEvent checks stock levels after events that consume inventory.
func (h *PushHandler) processEvent(ctx context.Context, event *service.OrderEvent) error {
	log := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	switch event.Type {
	case service.OrderEventCreated, service.OrderEventPaid:
	case service.OrderEventCanceled, service.OrderEventStatus:
		log.Debug("[Worker] Event needs no stock check", slog.String("type", event.Type))

		return nil
	default:
		log.Warn("[Worker] Unknown order event type", slog.String("type", event.Type))

		return nil
	}

	alerts, err := h.productUC.StockAlertsForOrder(ctx, event.OrderID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrOrderNotFound) {
			return errors.Wrapf(err, "order %d", event.OrderID)
		}

		return newRetryableError(err)
	}

	for _, alert := range alerts {
		log.Warn("[Worker] Product stock is low",
			slog.Int64("order_id", event.OrderID),
			slog.Int64("product_id", alert.ProductID),
			slog.String("name", alert.Name),
			slog.Int("stock_quantity", alert.StockQuantity),
			slog.Int("min_stock_alert", alert.MinStockAlert),
			slog.String("status", string(alert.Status)),
		)
	}

	log.Info("[Worker] Order event processed",
		slog.String("event_id", event.EventID),
		slog.Int("stock_alerts", len(alerts)),
	)

	return nil
}

// extractRequestID prefers message attributes, then the event payload, then
// the request context, and finally generates one.
func extractRequestID(ctx context.Context, attributes map[string]string, event *service.OrderEvent) string {
	if requestID := attributes["request_id"]; requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

func (h *PushHandler) verifyRequest(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}

	return h.verify(req.Context(), strings.TrimPrefix(authHeader, bearerPrefix), h.audience)
}

func validateGoogleToken(ctx context.Context, token, audience string) error {
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
