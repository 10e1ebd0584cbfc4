package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC    usecase.ProductUsecase
	ImageStorage service.ImageStorage
	Logger       *slog.Logger
}

// ProductHandler serves public product data and image blobs.
type ProductHandler struct {
	productUC    usecase.ProductUsecase
	imageStorage service.ImageStorage
	logger       *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC:    params.ProductUC,
		imageStorage: params.ImageStorage,
		logger:       params.Logger,
	}
}

// GetProduct handles GET /products/:id.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "product")
	}

	detail, err := h.productUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	view := newProductView(detail.Product)
	view.StockStatus = detail.StockStatus
	view.DiscountPercentage = detail.DiscountPercentage

	return response.Success(c, http.StatusOK, view)
}

// Media handles GET /media/* by streaming the blob stored under the key.
func (h *ProductHandler) Media(c echo.Context) error {
	key := strings.TrimPrefix(c.Param("*"), "/")
	if key == "" || strings.Contains(key, "..") {
		return response.NotFound(c, "NOT_FOUND", "Resource not found")
	}

	ctx := c.Request().Context()
	rc, contentType, err := h.imageStorage.Open(ctx, key)
	if err != nil {
		if errors.Is(err, service.ErrBlobNotFound) {
			return response.NotFound(c, "NOT_FOUND", "Resource not found")
		}

		return errors.WithStack(err)
	}
	defer func() {
		if cerr := rc.Close(); cerr != nil {
			deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Failed to close blob reader",
				slog.String("key", key), slog.Any("error", cerr))
		}
	}()

	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	// Keys are content addressed, so a key never changes its bytes.
	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=31536000, immutable")

	return c.Stream(http.StatusOK, contentType, rc)
}
