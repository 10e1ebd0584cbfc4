package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/delivery/api"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/pricing"
	"storefront/internal/domain/service"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/metrics"
	mockservice "storefront/internal/mocks/service"
	mockusecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	customerID = uuid.MustParse("6f1c2d3e-4b5a-4c6d-8e7f-901a2b3c4d5e")
	adminID    = uuid.MustParse("0a1b2c3d-4e5f-4a6b-9c8d-7e6f5a4b3c2d")
)

type testAPI struct {
	e             *echo.Echo
	checkoutUC    *mockusecase.MockCheckoutUsecase
	orderUC       *mockusecase.MockOrderUsecase
	paymentUC     *mockusecase.MockPaymentUsecase
	productUC     *mockusecase.MockProductUsecase
	settingsUC    *mockusecase.MockSettingsUsecase
	storage       *mockservice.MockImageStorage
	customerToken string
	adminToken    string
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.ServiceName = "storefront-test"
	cfg.HTTP.MaxRequestBodySize = "2MB"
	cfg.SecretKey.Access = "router-test-secret"
	cfg.Metrics = &config.MetricsConfig{Enabled: true, Path: "/metrics"}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	recorder := metrics.NewRecorder()

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	ta := &testAPI{
		checkoutUC: mockusecase.NewMockCheckoutUsecase(t),
		orderUC:    mockusecase.NewMockOrderUsecase(t),
		paymentUC:  mockusecase.NewMockPaymentUsecase(t),
		productUC:  mockusecase.NewMockProductUsecase(t),
		settingsUC: mockusecase.NewMockSettingsUsecase(t),
		storage:    mockservice.NewMockImageStorage(t),
	}

	ta.customerToken, err = tokens.GenerateAccessToken(customerID, "shopper@example.com", []string{entity.RoleCustomer.String()})
	require.NoError(t, err)
	ta.adminToken, err = tokens.GenerateAccessToken(adminID, "ops@example.com", []string{entity.RoleAdmin.String()})
	require.NoError(t, err)

	ta.e = api.NewEcho(cfg, logger, recorder)
	r := router.NewRouter(router.RouterParams{
		CheckoutHandler: handler.NewCheckoutHandler(handler.CheckoutHandlerParams{CheckoutUC: ta.checkoutUC, Logger: logger}),
		OrderHandler: handler.NewOrderHandler(handler.OrderHandlerParams{
			OrderUC: ta.orderUC, PaymentUC: ta.paymentUC, Logger: logger,
		}),
		PaymentHandler: handler.NewPaymentHandler(handler.PaymentHandlerParams{PaymentUC: ta.paymentUC, Logger: logger}),
		ProductHandler: handler.NewProductHandler(handler.ProductHandlerParams{
			ProductUC: ta.productUC, ImageStorage: ta.storage, Logger: logger,
		}),
		AdminHandler: handler.NewAdminHandler(handler.AdminHandlerParams{
			SettingsUC:   ta.settingsUC,
			ProductUC:    ta.productUC,
			OrderUC:      ta.orderUC,
			ImageStorage: ta.storage,
			Logger:       logger,
		}),
		AuthMiddleware: middleware.NewAuthMiddleware(tokens),
		Metrics:        recorder,
		Config:         cfg,
	})
	r.RegisterRoutes(ta.e)

	return ta
}

func (ta *testAPI) do(req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ta.e.ServeHTTP(rec, req)

	return rec
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func decodeCheckout(t *testing.T, rec *httptest.ResponseRecorder) handler.CheckoutResponse {
	t.Helper()

	var out handler.CheckoutResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())

	return out
}

func sampleOrder() *entity.Order {
	return &entity.Order{
		ID:             42,
		UserID:         customerID,
		Status:         entity.OrderStatusPending,
		SubtotalAmount: decimal.NewFromInt(499999),
		ShippingAmount: decimal.NewFromInt(70000),
		TotalAmount:    decimal.NewFromInt(569999),
		ShippingAddress: entity.ShippingAddress{
			ReceiverName: "Sara", ReceiverPhone: "09120000000", ProvinceName: "Tehran",
			CityName: "Tehran", AddressDetail: "No 5", PostalCode: "1234567890",
		},
		PaymentAuthority: "A00000000000000000000000000000012345",
		Items: []*entity.OrderItem{
			{ProductID: 7, ProductName: "Tea Pot", Quantity: 1, UnitPrice: decimal.NewFromInt(499999), TotalPrice: decimal.NewFromInt(499999)},
		},
		CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

const checkoutJSON = `{
	"receiver_name": "Sara",
	"receiver_phone": "09120000000",
	"province_name": "Tehran",
	"city_name": "Tehran",
	"address_detail": "No 5",
	"postal_code": "1234567890",
	"cart": [{"id": 7, "quantity": 1}, {"id": 9, "quantity": 2}]
}`

func TestHealth(t *testing.T) {
	ta := newTestAPI(t)

	rec := ta.do(httptest.NewRequest(http.MethodGet, "/health", nil), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestCheckout_JSON(t *testing.T) {
	ta := newTestAPI(t)
	ta.checkoutUC.EXPECT().
		PlaceOrder(mock.Anything, mock.MatchedBy(func(in *usecase.CheckoutInput) bool {
			return in.UserID == customerID &&
				in.ContactEmail == "shopper@example.com" &&
				in.Address.PostalCode == "1234567890" &&
				len(in.Items) == 2 && in.Items[1].ProductID == 9 && in.Items[1].Quantity == 2
		})).
		Return(&usecase.CheckoutOutput{OrderID: 42, RedirectURL: "/orders/42"}, nil)

	rec := ta.do(jsonRequest(http.MethodPost, "/checkout", checkoutJSON), ta.customerToken)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	out := decodeCheckout(t, rec)
	assert.True(t, out.Success)
	assert.Equal(t, int64(42), out.OrderID)
	assert.Equal(t, "/orders/42", out.RedirectURL)
}

func TestCheckout_FormWithCartData(t *testing.T) {
	ta := newTestAPI(t)
	ta.checkoutUC.EXPECT().
		PlaceOrder(mock.Anything, mock.MatchedBy(func(in *usecase.CheckoutInput) bool {
			return in.Address.ReceiverName == "Sara" &&
				len(in.Items) == 1 && in.Items[0].ProductID == 7 && in.Items[0].Quantity == 3
		})).
		Return(&usecase.CheckoutOutput{OrderID: 43, RedirectURL: "/orders/43"}, nil)

	form := url.Values{
		"receiver_name":  {"Sara"},
		"receiver_phone": {"09120000000"},
		"province_name":  {"Tehran"},
		"city_name":      {"Tehran"},
		"address_detail": {"No 5"},
		"postal_code":    {"1234567890"},
		"cart_data":      {`[{"id":7,"quantity":3}]`},
	}
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	rec := ta.do(req, ta.customerToken)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, int64(43), decodeCheckout(t, rec).OrderID)
}

func TestCheckout_InvalidCartData(t *testing.T) {
	ta := newTestAPI(t)

	form := url.Values{"receiver_name": {"Sara"}, "cart_data": {"not json"}}
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	rec := ta.do(req, ta.customerToken)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	out := decodeCheckout(t, rec)
	assert.False(t, out.Success)
	assert.Equal(t, "INVALID_CART", out.Code)
}

func TestCheckout_BusinessErrorIsShownToShopper(t *testing.T) {
	ta := newTestAPI(t)
	ta.checkoutUC.EXPECT().PlaceOrder(mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewInsufficientStockError(7, "Tea Pot", 1))

	rec := ta.do(jsonRequest(http.MethodPost, "/checkout", checkoutJSON), ta.customerToken)

	assert.Equal(t, http.StatusConflict, rec.Code)
	out := decodeCheckout(t, rec)
	assert.False(t, out.Success)
	assert.Equal(t, "INSUFFICIENT_STOCK", out.Code)
	assert.Contains(t, out.Message, "Only 1 left")
	assert.Contains(t, out.Message, "Tea Pot")
	assert.Zero(t, out.OrderID)
}

func TestCheckout_InternalErrorIsMasked(t *testing.T) {
	ta := newTestAPI(t)
	ta.checkoutUC.EXPECT().PlaceOrder(mock.Anything, mock.Anything).
		Return(nil, errors.New("pq: connection refused"))

	rec := ta.do(jsonRequest(http.MethodPost, "/checkout", checkoutJSON), ta.customerToken)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	out := decodeCheckout(t, rec)
	assert.False(t, out.Success)
	assert.Equal(t, domainerrors.ErrInternalError.Message(), out.Message)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestCheckout_RequiresToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		code   string
	}{
		{name: "missing", header: "", code: "MISSING_TOKEN"},
		{name: "not bearer", header: "Basic abc", code: "INVALID_TOKEN_FORMAT"},
		{name: "garbage", header: "Bearer not-a-jwt", code: "INVALID_TOKEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestAPI(t)
			req := jsonRequest(http.MethodPost, "/checkout", checkoutJSON)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}

			rec := ta.do(req, "")

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			env := decodeEnvelope(t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}
}

func TestOrders_List(t *testing.T) {
	ta := newTestAPI(t)
	ta.orderUC.EXPECT().ListOrders(mock.Anything, customerID).Return([]*entity.Order{sampleOrder()}, nil)

	rec := ta.do(httptest.NewRequest(http.MethodGet, "/orders", nil), ta.customerToken)

	require.Equal(t, http.StatusOK, rec.Code)
	var orders []map[string]any
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, float64(42), orders[0]["id"])
	assert.Equal(t, "pending", orders[0]["status"])
	assert.Equal(t, "569999", orders[0]["total_amount"])
	assert.NotContains(t, rec.Body.String(), "A00000000000000000000000000000012345")
}

func TestOrders_GetForeignOrderIsNotFound(t *testing.T) {
	ta := newTestAPI(t)
	ta.orderUC.EXPECT().GetOrder(mock.Anything, customerID, int64(99)).Return(nil, domainerrors.ErrOrderNotFound)

	req := httptest.NewRequest(http.MethodGet, "/orders/99", nil)
	req.Header.Set("X-Request-Id", "req-123")
	rec := ta.do(req, ta.customerToken)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "ORDER_NOT_FOUND", env.Error.Code)
	assert.Equal(t, "req-123", env.Meta.RequestID)
}

func TestOrders_InvalidID(t *testing.T) {
	ta := newTestAPI(t)

	rec := ta.do(httptest.NewRequest(http.MethodGet, "/orders/abc", nil), ta.customerToken)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decodeEnvelope(t, rec).Error.Code)
}

func TestOrders_Cancel(t *testing.T) {
	ta := newTestAPI(t)
	canceled := sampleOrder()
	canceled.Status = entity.OrderStatusCanceled
	ta.orderUC.EXPECT().CancelOrder(mock.Anything, customerID, int64(42)).Return(canceled, nil)

	rec := ta.do(httptest.NewRequest(http.MethodPost, "/orders/42/cancel", nil), ta.customerToken)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"status":"canceled"`)
}

func TestOrders_StartPayment(t *testing.T) {
	ta := newTestAPI(t)
	ta.paymentUC.EXPECT().StartPayment(mock.Anything, customerID, int64(42)).Return(&usecase.StartPaymentOutput{
		OrderID:    42,
		Authority:  "A0000000000000000000000000000001",
		PaymentURL: "https://sandbox.zarinpal.com/pg/StartPay/A0000000000000000000000000000001",
	}, nil)

	rec := ta.do(httptest.NewRequest(http.MethodPost, "/orders/42/payment", nil), ta.customerToken)

	require.Equal(t, http.StatusOK, rec.Code)
	var out usecase.StartPaymentOutput
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &out))
	assert.Equal(t, "A0000000000000000000000000000001", out.Authority)
	assert.Contains(t, out.PaymentURL, "/pg/StartPay/")
}

func TestOrders_StartPaymentGatewayRejected(t *testing.T) {
	ta := newTestAPI(t)
	ta.paymentUC.EXPECT().StartPayment(mock.Anything, customerID, int64(42)).
		Return(nil, errors.Wrap(domainerrors.ErrPaymentRequestRejected, "status -11"))

	rec := ta.do(httptest.NewRequest(http.MethodPost, "/orders/42/payment", nil), ta.customerToken)

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "PAYMENT_REQUEST_REJECTED", env.Error.Code)
	assert.NotContains(t, rec.Body.String(), "-11")
}

func TestOrders_PaymentQR(t *testing.T) {
	ta := newTestAPI(t)
	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	ta.paymentUC.EXPECT().PaymentQR(mock.Anything, customerID, int64(42)).Return(png, nil)

	rec := ta.do(httptest.NewRequest(http.MethodGet, "/orders/42/payment/qr", nil), ta.customerToken)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestPaymentCallback(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		authority  string
		status     string
		out        *usecase.PaymentCallbackOutput
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "verified",
			query:      "?Authority=A1&Status=OK",
			authority:  "A1",
			status:     "OK",
			out:        &usecase.PaymentCallbackOutput{OrderID: 42, Success: true, RefID: "201", StatusCode: 100},
			wantStatus: http.StatusOK,
		},
		{
			name:       "canceled by user",
			query:      "?Authority=A1&Status=NOK",
			authority:  "A1",
			status:     "NOK",
			out:        &usecase.PaymentCallbackOutput{OrderID: 42, StatusCode: 200, Message: "canceled by user"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "gateway down",
			query:      "?Authority=A1&Status=OK",
			authority:  "A1",
			status:     "OK",
			err:        domainerrors.ErrPaymentGatewayUnavailable,
			wantStatus: http.StatusBadGateway,
			wantCode:   "PAYMENT_GATEWAY_UNAVAILABLE",
		},
		{
			name:       "unknown authority",
			query:      "?Authority=nope&Status=OK",
			authority:  "nope",
			status:     "OK",
			err:        domainerrors.ErrPaymentNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "PAYMENT_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestAPI(t)
			ta.paymentUC.EXPECT().HandleCallback(mock.Anything, tt.authority, tt.status).Return(tt.out, tt.err)

			rec := ta.do(httptest.NewRequest(http.MethodGet, "/payment/callback"+tt.query, nil), "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decodeEnvelope(t, rec)
			if tt.wantCode != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantCode, env.Error.Code)

				return
			}
			var out usecase.PaymentCallbackOutput
			require.NoError(t, json.Unmarshal(env.Data, &out))
			assert.Equal(t, *tt.out, out)
		})
	}
}

func TestProduct_Get(t *testing.T) {
	ta := newTestAPI(t)
	ta.productUC.EXPECT().GetProduct(mock.Anything, int64(7)).Return(&usecase.ProductDetail{
		Product: &entity.Product{
			ID: 7, Name: "Tea Pot", Slug: "tea-pot",
			Price:         decimal.NewFromInt(75000),
			OriginalPrice: decimal.NewNullDecimal(decimal.NewFromInt(100000)),
			HasDiscount:   true, StockQuantity: 2, Status: entity.ProductStatusActive, IsActive: true,
		},
		StockStatus:        entity.StockStatusLowStock,
		DiscountPercentage: 25,
	}, nil)

	rec := ta.do(httptest.NewRequest(http.MethodGet, "/products/7", nil), "")

	require.Equal(t, http.StatusOK, rec.Code)
	var out map[string]any
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &out))
	assert.Equal(t, "low_stock", out["stock_status"])
	assert.Equal(t, float64(25), out["discount_percentage"])
	assert.Equal(t, "100000", out["original_price"])
}

func TestMedia(t *testing.T) {
	t.Run("serves blob", func(t *testing.T) {
		ta := newTestAPI(t)
		ta.storage.EXPECT().Open(mock.Anything, "products/7/abc.png").
			Return(io.NopCloser(strings.NewReader("png-bytes")), "image/png", nil)

		rec := ta.do(httptest.NewRequest(http.MethodGet, "/media/products/7/abc.png", nil), "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, "png-bytes", rec.Body.String())
	})

	t.Run("missing blob", func(t *testing.T) {
		ta := newTestAPI(t)
		ta.storage.EXPECT().Open(mock.Anything, "products/7/gone.png").
			Return(nil, "", errors.Wrap(service.ErrBlobNotFound, "open"))

		rec := ta.do(httptest.NewRequest(http.MethodGet, "/media/products/7/gone.png", nil), "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAdmin_RequiresAdminRole(t *testing.T) {
	ta := newTestAPI(t)

	rec := ta.do(httptest.NewRequest(http.MethodGet, "/admin/settings/shipping", nil), ta.customerToken)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", decodeEnvelope(t, rec).Error.Code)
}

func TestAdmin_ShippingSettings(t *testing.T) {
	t.Run("read", func(t *testing.T) {
		ta := newTestAPI(t)
		ta.settingsUC.EXPECT().GetShippingSettings(mock.Anything).Return(&entity.ShippingSettings{
			ShippingCost:          decimal.NewFromInt(70000),
			FreeShippingThreshold: decimal.NewFromInt(500000),
		}, nil)

		rec := ta.do(httptest.NewRequest(http.MethodGet, "/admin/settings/shipping", nil), ta.adminToken)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"shipping_cost":"70000","free_shipping_threshold":"500000"}`, string(decodeEnvelope(t, rec).Data))
	})

	t.Run("update", func(t *testing.T) {
		ta := newTestAPI(t)
		ta.settingsUC.EXPECT().
			UpdateShippingSettings(mock.Anything, mock.MatchedBy(func(s *entity.ShippingSettings) bool {
				return s.ShippingCost.Equal(decimal.NewFromInt(50000)) && s.FreeShippingThreshold.Equal(decimal.NewFromInt(1000000))
			})).
			RunAndReturn(func(_ context.Context, s *entity.ShippingSettings) (*entity.ShippingSettings, error) {
				return s, nil
			})

		body := `{"shipping_cost": 50000, "free_shipping_threshold": 1000000}`
		rec := ta.do(jsonRequest(http.MethodPut, "/admin/settings/shipping", body), ta.adminToken)

		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("missing field", func(t *testing.T) {
		ta := newTestAPI(t)

		rec := ta.do(jsonRequest(http.MethodPut, "/admin/settings/shipping", `{"shipping_cost": 50000}`), ta.adminToken)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, string(env.Error.Details), "free_shipping_threshold")
	})
}

func TestAdmin_UpdatePricing(t *testing.T) {
	t.Run("percentage discount", func(t *testing.T) {
		ta := newTestAPI(t)
		ta.productUC.EXPECT().
			UpdateProductPricing(mock.Anything, int64(7), mock.MatchedBy(func(in pricing.PriceInput) bool {
				return in.Price.Equal(decimal.NewFromInt(100000)) && in.DiscountPercentage == 20 && !in.OriginalPrice.Valid
			})).
			Return(&entity.Product{ID: 7, Price: decimal.NewFromInt(80000), HasDiscount: true, DiscountPercentage: 20}, nil)

		rec := ta.do(jsonRequest(http.MethodPut, "/admin/products/7/pricing", `{"price": 100000, "discount_percentage": 20}`), ta.adminToken)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"price":"80000"`)
	})

	t.Run("percentage out of range", func(t *testing.T) {
		ta := newTestAPI(t)

		rec := ta.do(jsonRequest(http.MethodPut, "/admin/products/7/pricing", `{"price": 100000, "discount_percentage": 150}`), ta.adminToken)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestAdmin_SetStock(t *testing.T) {
	t.Run("negative rejected", func(t *testing.T) {
		ta := newTestAPI(t)

		rec := ta.do(jsonRequest(http.MethodPut, "/admin/products/7/stock", `{"quantity": -1}`), ta.adminToken)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("zero allowed", func(t *testing.T) {
		ta := newTestAPI(t)
		ta.productUC.EXPECT().SetProductStock(mock.Anything, int64(7), 0).
			Return(&entity.Product{ID: 7, StockQuantity: 0}, nil)

		rec := ta.do(jsonRequest(http.MethodPut, "/admin/products/7/stock", `{"quantity": 0}`), ta.adminToken)

		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})
}

func TestAdmin_UpdateOrderStatus(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		ta := newTestAPI(t)

		rec := ta.do(jsonRequest(http.MethodPut, "/admin/orders/42/status", `{"status": "lost"}`), ta.adminToken)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejected transition", func(t *testing.T) {
		ta := newTestAPI(t)
		ta.orderUC.EXPECT().UpdateOrderStatus(mock.Anything, int64(42), entity.OrderStatusShipped).
			Return(nil, domainerrors.NewInvalidStatusTransitionError("pending", "shipped"))

		rec := ta.do(jsonRequest(http.MethodPut, "/admin/orders/42/status", `{"status": "shipped"}`), ta.adminToken)

		assert.Equal(t, http.StatusConflict, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "INVALID_STATUS_TRANSITION", env.Error.Code)
		assert.JSONEq(t, `"pending -> shipped"`, string(env.Error.Details))
	})
}

func TestAdmin_ReplaceProductImage(t *testing.T) {
	ta := newTestAPI(t)
	payload := []byte("\x89PNG\r\n\x1a\nfake")

	ta.productUC.EXPECT().
		ReplaceProductImage(mock.Anything, mock.MatchedBy(func(in *usecase.ReplaceImageInput) bool {
			return in.ImageID == 5 &&
				in.Filename == "pot.png" &&
				bytes.Equal(in.Data, payload) &&
				in.AltText != nil && *in.AltText == "Tea pot" &&
				in.Caption == nil &&
				in.IsPrimary != nil && *in.IsPrimary
		})).
		Return(&entity.ProductImage{ID: 5, ProductID: 7, ImageKey: "products/7/abc.png", AltText: "Tea pot", IsPrimary: true}, nil)
	ta.storage.EXPECT().URL(mock.Anything, "products/7/abc.png").Return("/media/products/7/abc.png", nil)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("image", "pot.png")
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.WriteField("alt_text", "Tea pot"))
	require.NoError(t, w.WriteField("is_primary", "true"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPut, "/admin/product-images/5", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := ta.do(req, ta.adminToken)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"url":"/media/products/7/abc.png"`)
}

func TestMetricsEndpoint(t *testing.T) {
	ta := newTestAPI(t)
	ta.do(httptest.NewRequest(http.MethodGet, "/health", nil), "")

	rec := ta.do(httptest.NewRequest(http.MethodGet, "/metrics", nil), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `storefront_http_requests_total{method="GET",path="/health",status="200"} 1`)
}
