package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"storefront/internal/delivery/api/middleware"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CheckoutHandler turns checkout submissions into orders.
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// CheckoutRequest is a checkout submission. JSON clients send Cart; form posts
// send the same list JSON-encoded in cart_data.
type CheckoutRequest struct {
	ReceiverName  string             `json:"receiver_name" form:"receiver_name"`
	ReceiverPhone string             `json:"receiver_phone" form:"receiver_phone"`
	ProvinceName  string             `json:"province_name" form:"province_name"`
	CityName      string             `json:"city_name" form:"city_name"`
	AddressDetail string             `json:"address_detail" form:"address_detail"`
	PostalCode    string             `json:"postal_code" form:"postal_code"`
	Cart          []usecase.CartItem `json:"cart"`
	CartData      string             `json:"cart_data,omitempty" form:"cart_data"`
}

// CheckoutResponse is the flat checkout result consumed by the storefront pages.
type CheckoutResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	OrderID     int64  `json:"order_id,omitempty"`
	RedirectURL string `json:"redirect_url,omitempty"`
	Code        string `json:"code,omitempty"`
	Details     string `json:"details,omitempty"`
}

// PlaceOrder handles POST /checkout.
func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, CheckoutResponse{Message: "Please sign in to place an order", Code: "UNAUTHORIZED"})
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, CheckoutResponse{Message: "Checkout data could not be read", Code: "INVALID_INPUT"})
	}

	items, err := req.cartItems()
	if err != nil {
		return c.JSON(http.StatusBadRequest, CheckoutResponse{Message: "Cart data could not be read", Code: "INVALID_CART"})
	}

	out, err := h.checkoutUC.PlaceOrder(c.Request().Context(), &usecase.CheckoutInput{
		UserID:       userID,
		ContactEmail: deliverycontext.GetUserEmail(c),
		Address: entity.ShippingAddress{
			ReceiverName:  req.ReceiverName,
			ReceiverPhone: req.ReceiverPhone,
			ProvinceName:  req.ProvinceName,
			CityName:      req.CityName,
			AddressDetail: req.AddressDetail,
			PostalCode:    req.PostalCode,
		},
		Items: items,
	})
	if err != nil {
		return h.failure(c, err)
	}

	return c.JSON(http.StatusCreated, CheckoutResponse{
		Success:     true,
		Message:     "Your order has been placed",
		OrderID:     out.OrderID,
		RedirectURL: out.RedirectURL,
	})
}

func (r *CheckoutRequest) cartItems() ([]usecase.CartItem, error) {
	if len(r.Cart) > 0 || strings.TrimSpace(r.CartData) == "" {
		return r.Cart, nil
	}

	var items []usecase.CartItem
	if err := json.Unmarshal([]byte(r.CartData), &items); err != nil {
		return nil, errors.Wrap(err, "failed to decode cart_data")
	}

	return items, nil
}

// failure renders user-correctable errors with their message and masks the rest.
func (h *CheckoutHandler) failure(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return c.JSON(appErr.HTTPCode(), CheckoutResponse{
			Message: appErr.Message(),
			Code:    appErr.ErrorCode(),
			Details: appErr.Details(),
		})
	}

	status := http.StatusInternalServerError
	code := domainerrors.ErrInternalError.ErrorCode()
	message := domainerrors.ErrInternalError.Message()
	if appErr != nil {
		status = appErr.HTTPCode()
		code = appErr.ErrorCode()
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Error("Checkout failed",
		slog.Any("error", err),
	)

	return c.JSON(status, CheckoutResponse{Message: message, Code: code})
}
