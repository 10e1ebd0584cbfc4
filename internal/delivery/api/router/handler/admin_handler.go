package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/pricing"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const imageFormField = "image"

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	SettingsUC   usecase.SettingsUsecase
	ProductUC    usecase.ProductUsecase
	OrderUC      usecase.OrderUsecase
	ImageStorage service.ImageStorage
	Logger       *slog.Logger
}

// AdminHandler holds the operations restricted to the admin role.
type AdminHandler struct {
	settingsUC   usecase.SettingsUsecase
	productUC    usecase.ProductUsecase
	orderUC      usecase.OrderUsecase
	imageStorage service.ImageStorage
	logger       *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		settingsUC:   params.SettingsUC,
		productUC:    params.ProductUC,
		orderUC:      params.OrderUC,
		imageStorage: params.ImageStorage,
		logger:       params.Logger,
	}
}

// UpdateShippingRequest replaces the shipping policy.
type UpdateShippingRequest struct {
	ShippingCost          *decimal.Decimal `json:"shipping_cost" validate:"required"`
	FreeShippingThreshold *decimal.Decimal `json:"free_shipping_threshold" validate:"required"`
}

// UpdatePricingRequest carries the admin-entered price fields.
type UpdatePricingRequest struct {
	Price              *decimal.Decimal `json:"price" validate:"required"`
	OriginalPrice      *decimal.Decimal `json:"original_price"`
	DiscountPercentage int              `json:"discount_percentage" validate:"gte=0,lte=100"`
	DiscountAmount     *decimal.Decimal `json:"discount_amount"`
}

// SetStockRequest overwrites a product's stock.
type SetStockRequest struct {
	Quantity *int `json:"quantity" validate:"required,gte=0"`
}

// UpdateOrderStatusRequest moves an order along its transitions.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending paid processing shipped delivered canceled"`
}

// GetShippingSettings handles GET /admin/settings/shipping.
func (h *AdminHandler) GetShippingSettings(c echo.Context) error {
	settings, err := h.settingsUC.GetShippingSettings(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}

// UpdateShippingSettings handles PUT /admin/settings/shipping.
func (h *AdminHandler) UpdateShippingSettings(c echo.Context) error {
	var req UpdateShippingRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	settings, err := h.settingsUC.UpdateShippingSettings(c.Request().Context(), &entity.ShippingSettings{
		ShippingCost:          *req.ShippingCost,
		FreeShippingThreshold: *req.FreeShippingThreshold,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}

// UpdateProductPricing handles PUT /admin/products/:id/pricing.
func (h *AdminHandler) UpdateProductPricing(c echo.Context) error {
	productID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "product")
	}

	var req UpdatePricingRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	input := pricing.PriceInput{
		Price:              *req.Price,
		DiscountPercentage: req.DiscountPercentage,
		DiscountAmount:     decimal.Zero,
	}
	if req.OriginalPrice != nil {
		input.OriginalPrice = decimal.NewNullDecimal(*req.OriginalPrice)
	}
	if req.DiscountAmount != nil {
		input.DiscountAmount = *req.DiscountAmount
	}

	product, err := h.productUC.UpdateProductPricing(c.Request().Context(), productID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProductView(product))
}

// SetProductStock handles PUT /admin/products/:id/stock.
func (h *AdminHandler) SetProductStock(c echo.Context) error {
	productID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "product")
	}

	var req SetStockRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	product, err := h.productUC.SetProductStock(c.Request().Context(), productID, *req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProductView(product))
}

// ReplaceProductImage handles PUT /admin/product-images/:id with a multipart
// "image" file and optional alt_text, caption and is_primary fields.
func (h *AdminHandler) ReplaceProductImage(c echo.Context) error {
	imageID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "image")
	}

	fileHeader, err := c.FormFile(imageFormField)
	if err != nil {
		return response.BadRequest(c, "MISSING_IMAGE", "An image file is required in the 'image' field")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded image")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return errors.Wrap(err, "failed to read uploaded image")
	}

	input := &usecase.ReplaceImageInput{
		ImageID:     imageID,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Data:        data,
		AltText:     optionalFormValue(c, "alt_text"),
		Caption:     optionalFormValue(c, "caption"),
	}
	if raw := optionalFormValue(c, "is_primary"); raw != nil {
		primary, err := strconv.ParseBool(strings.TrimSpace(*raw))
		if err != nil {
			return response.BadRequest(c, "VALIDATION_FAILED", "is_primary must be true or false")
		}
		input.IsPrimary = &primary
	}

	image, err := h.productUC.ReplaceProductImage(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	url, err := h.imageStorage.URL(c.Request().Context(), image.ImageKey)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Warn("Failed to build image URL",
			slog.String("key", image.ImageKey), slog.Any("error", err))
	}

	return response.Success(c, http.StatusOK, imageView{
		ID:        image.ID,
		ProductID: image.ProductID,
		URL:       url,
		AltText:   image.AltText,
		Caption:   image.Caption,
		IsPrimary: image.IsPrimary,
		SortOrder: image.SortOrder,
	})
}

// UpdateOrderStatus handles PUT /admin/orders/:id/status.
func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	orderID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "order")
	}

	var req UpdateOrderStatusRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	order, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), orderID, entity.OrderStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderView(order))
}

// optionalFormValue distinguishes an absent form field from an empty one.
func optionalFormValue(c echo.Context, name string) *string {
	form, err := c.MultipartForm()
	if err != nil {
		return nil
	}
	values, ok := form.Value[name]
	if !ok || len(values) == 0 {
		return nil
	}

	return &values[0]
}
