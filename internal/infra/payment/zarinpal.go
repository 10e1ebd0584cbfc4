// Package payment implements the hosted payment gateway client.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	SandboxBaseURL    = "https://sandbox.zarinpal.com"
	ProductionBaseURL = "https://www.zarinpal.com"

	paymentRequestPath      = "/pg/rest/WebGate/PaymentRequest.json"
	paymentVerificationPath = "/pg/rest/WebGate/PaymentVerification.json"
	startPayPath            = "/pg/StartPay/"

	endpointPaymentRequest = "payment_request"
	endpointVerification   = "verification"

	defaultDescriptionTemplate = "Payment for order #%d"
	maxResponseBodySize        = 1 << 20
)

// zarinPalGateway implements service.PaymentGateway against the ZarinPal REST WebGate API.
type zarinPalGateway struct {
	merchantID          string
	baseURL             string
	descriptionTemplate string
	httpClient          *http.Client
	metrics             service.OperationMetrics
	logger              *slog.Logger
}

// Params defines the dependencies of the gateway provider.
type Params struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Metrics service.OperationMetrics
}

// NewPaymentGateway builds the gateway client from configuration.
func NewPaymentGateway(params Params) (service.PaymentGateway, error) {
	cfg := params.Config.Payment
	if cfg == nil || cfg.MerchantID == "" {
		return nil, errors.New("payment.merchantId is required")
	}

	return NewZarinPalGateway(cfg, &http.Client{Timeout: cfg.Timeout}, params.Metrics, params.Logger), nil
}

// NewZarinPalGateway creates a client with an explicit HTTP client.
func NewZarinPalGateway(cfg *config.PaymentConfig, httpClient *http.Client, metrics service.OperationMetrics, logger *slog.Logger) service.PaymentGateway {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = ProductionBaseURL
		if cfg.Sandbox {
			baseURL = SandboxBaseURL
		}
	}

	template := cfg.DescriptionTemplate
	if template == "" {
		template = defaultDescriptionTemplate
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &zarinPalGateway{
		merchantID:          cfg.MerchantID,
		baseURL:             strings.TrimRight(baseURL, "/"),
		descriptionTemplate: template,
		httpClient:          httpClient,
		metrics:             metrics,
		logger:              logger,
	}
}

type paymentRequestBody struct {
	MerchantID  string `json:"merchant_id"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	CallbackURL string `json:"callback_url"`
	Mobile      string `json:"mobile"`
	Email       string `json:"email"`
}

type paymentRequestResponse struct {
	Status    int             `json:"Status"`
	Authority string          `json:"Authority"`
	Errors    json.RawMessage `json:"Errors"`
}

type verificationBody struct {
	MerchantID string `json:"merchant_id"`
	Authority  string `json:"authority"`
	Amount     int64  `json:"amount"`
}

type verificationResponse struct {
	Status int             `json:"Status"`
	RefID  json.RawMessage `json:"RefID"`
	Errors json.RawMessage `json:"Errors"`
}

// CreatePaymentRequest opens a payment session for the order total.
func (g *zarinPalGateway) CreatePaymentRequest(ctx context.Context, order *entity.Order, callbackURL string) (*entity.PaymentRequestResult, error) {
	body := paymentRequestBody{
		MerchantID:  g.merchantID,
		Amount:      order.TotalAmount.IntPart(),
		Description: fmt.Sprintf(g.descriptionTemplate, order.ID),
		CallbackURL: callbackURL,
		Mobile:      order.ShippingAddress.ReceiverPhone,
		Email:       order.ContactEmail,
	}

	var resp paymentRequestResponse
	if err := g.post(ctx, endpointPaymentRequest, paymentRequestPath, body, &resp); err != nil {
		g.logger.ErrorContext(ctx, "[ZarinPal] Payment request failed",
			slog.Int64("order_id", order.ID),
			slog.Any("error", err),
		)

		return nil, err
	}

	if resp.Status != entity.PaymentStatusSuccess {
		message := providerErrorMessage(resp.Errors, StatusDescription(resp.Status))
		g.logger.ErrorContext(ctx, "[ZarinPal] Payment request rejected",
			slog.Int64("order_id", order.ID),
			slog.Int("status", resp.Status),
			slog.String("message", message),
		)

		return &entity.PaymentRequestResult{
			Success: false,
			Message: message,
			Code:    resp.Status,
		}, nil
	}

	order.PaymentAuthority = resp.Authority
	g.logger.InfoContext(ctx, "[ZarinPal] Payment request created",
		slog.Int64("order_id", order.ID),
		slog.String("authority", resp.Authority),
	)

	return &entity.PaymentRequestResult{
		Success:    true,
		Authority:  resp.Authority,
		PaymentURL: g.PaymentURL(resp.Authority),
		Message:    "Payment request created",
		Code:       resp.Status,
	}, nil
}

// VerifyPayment confirms a completed payment for the expected amount.
func (g *zarinPalGateway) VerifyPayment(ctx context.Context, authority string, amount decimal.Decimal) (*entity.PaymentVerification, error) {
	body := verificationBody{
		MerchantID: g.merchantID,
		Authority:  authority,
		Amount:     amount.IntPart(),
	}

	var resp verificationResponse
	if err := g.post(ctx, endpointVerification, paymentVerificationPath, body, &resp); err != nil {
		g.logger.ErrorContext(ctx, "[ZarinPal] Verification failed",
			slog.String("authority", authority),
			slog.Any("error", err),
		)

		return nil, err
	}

	result := &entity.PaymentVerification{
		Success:    resp.Status == entity.PaymentStatusSuccess,
		RefID:      rawScalar(resp.RefID),
		StatusCode: resp.Status,
		Message:    StatusDescription(resp.Status),
	}
	if !result.Success {
		result.Message = providerErrorMessage(resp.Errors, result.Message)
		g.logger.WarnContext(ctx, "[ZarinPal] Verification not successful",
			slog.String("authority", authority),
			slog.Int("status", resp.Status),
			slog.String("message", result.Message),
		)

		return result, nil
	}

	g.logger.InfoContext(ctx, "[ZarinPal] Payment verified",
		slog.String("authority", authority),
		slog.String("ref_id", result.RefID),
	)

	return result, nil
}

// PaymentURL builds the pay-start URL for an authority.
func (g *zarinPalGateway) PaymentURL(authority string) string {
	return g.baseURL + startPayPath + authority
}

// StatusDescription maps a provider status code to text.
func (g *zarinPalGateway) StatusDescription(code int) string {
	return StatusDescription(code)
}

// post sends one JSON request. Transport failures and non-200 responses are
// reported as ErrPaymentGatewayUnavailable; the call is never retried here.
func (g *zarinPalGateway) post(ctx context.Context, endpoint, path string, body, out any) error {
	status := service.MetricStatusFailure
	defer func() {
		if g.metrics != nil {
			g.metrics.ObserveGatewayRequest(endpoint, status)
		}
	}()

	payload, err := json.Marshal(body)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return domainerrors.ErrPaymentGatewayUnavailable.WrapMessage(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBodySize))

		return domainerrors.ErrPaymentGatewayUnavailable.WrapMessage(fmt.Sprintf("gateway returned HTTP %d", resp.StatusCode))
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBodySize)).Decode(out); err != nil {
		return domainerrors.ErrPaymentGatewayUnavailable.WrapMessage("malformed gateway response: " + err.Error())
	}

	status = service.MetricStatusSuccess

	return nil
}

// providerErrorMessage extracts Errors.Message when the provider sent one.
func providerErrorMessage(raw json.RawMessage, fallback string) string {
	if len(raw) == 0 {
		return fallback
	}

	var single struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &single); err == nil && single.Message != "" {
		return single.Message
	}

	var list []struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 && list[0].Message != "" {
		return list[0].Message
	}

	return fallback
}

// rawScalar renders a JSON number or string without quotes.
func rawScalar(raw json.RawMessage) string {
	value := strings.TrimSpace(string(raw))
	if value == "" || value == "null" {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	return value
}
