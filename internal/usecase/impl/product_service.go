package impl

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/pricing"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Accepted image types and the key extension each is stored under.
var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type productService struct {
	txManager    repository.TransactionManager
	productRepo  repository.ProductRepository
	imageRepo    repository.ProductImageRepository
	orderRepo    repository.OrderRepository
	imageStorage service.ImageStorage
	logger       *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProductRepo  repository.ProductRepository
	ImageRepo    repository.ProductImageRepository
	OrderRepo    repository.OrderRepository
	ImageStorage service.ImageStorage
	Logger       *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:    params.TxManager,
		productRepo:  params.ProductRepo,
		imageRepo:    params.ImageRepo,
		orderRepo:    params.OrderRepo,
		imageStorage: params.ImageStorage,
		logger:       params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProduct hides inactive products from shoppers.
func (srv *productService) GetProduct(ctx context.Context, id int64) (*usecase.ProductDetail, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapProductNotFound(err, id)
	}
	if !product.IsPurchasable() {
		return nil, domainerrors.NewProductNotFoundError(id)
	}

	discount := product.DiscountPercentage
	if discount == 0 {
		discount = pricing.DiscountPercentage(product.Price, product.OriginalPrice)
	}

	return &usecase.ProductDetail{
		Product:            product,
		StockStatus:        pricing.StockStatus(product.StockQuantity, product.MinStockAlert),
		DiscountPercentage: discount,
	}, nil
}

// UpdateProductPricing resolves the submitted discount fields before storing them.
func (srv *productService) UpdateProductPricing(ctx context.Context, id int64, input pricing.PriceInput) (*entity.Product, error) {
	resolved, err := pricing.Resolve(input)
	if err != nil {
		return nil, err
	}

	var product *entity.Product
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		found, err := productRepo.FindByID(ctx, id)
		if err != nil {
			return mapProductNotFound(err, id)
		}
		pricing.Apply(found, resolved)

		if err := productRepo.UpdatePricing(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update product pricing")
		}
		product = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product pricing updated",
		slog.Int64("productID", id),
		slog.String("price", product.Price.String()),
		slog.Bool("hasDiscount", product.HasDiscount),
	)

	return product, nil
}

// SetProductStock overwrites the stock level.
func (srv *productService) SetProductStock(ctx context.Context, id int64, quantity int) (*entity.Product, error) {
	if quantity < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("stock quantity must not be negative")
	}

	var product *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		if err := productRepo.SetStock(ctx, id, quantity); err != nil {
			return mapProductNotFound(err, id)
		}

		found, err := productRepo.FindByID(ctx, id)
		if err != nil {
			return mapProductNotFound(err, id)
		}
		product = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product stock set", slog.Int64("productID", id), slog.Int("stock", quantity))

	return product, nil
}

// ReplaceProductImage stores the upload under a content-addressed key and
// swaps the record over to it. The old blob is removed only after the record
// points at the new one.
func (srv *productService) ReplaceProductImage(ctx context.Context, input *usecase.ReplaceImageInput) (*entity.ProductImage, error) {
	if input == nil || len(input.Data) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("image file is required")
	}

	contentType := http.DetectContentType(input.Data)
	ext, ok := imageExtensions[contentType]
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unsupported image type: " + contentType)
	}

	current, err := srv.imageRepo.FindByID(ctx, input.ImageID)
	if err != nil {
		return nil, mapImageNotFound(err)
	}

	checksum, err := util.CalculateChecksum(bytes.NewReader(input.Data))
	if err != nil {
		return nil, err
	}
	newKey := fmt.Sprintf("products/%d/%s%s", current.ProductID, checksum, ext)
	oldKey := current.ImageKey
	wroteBlob := newKey != oldKey

	if wroteBlob {
		if err := srv.imageStorage.Put(ctx, newKey, bytes.NewReader(input.Data), contentType); err != nil {
			return nil, errors.Wrap(err, "failed to store image")
		}
	}

	var image *entity.ProductImage
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		imageRepo := repoFactory.ProductImageRepo()

		found, err := imageRepo.FindByID(ctx, input.ImageID)
		if err != nil {
			return mapImageNotFound(err)
		}

		found.ImageKey = newKey
		if input.AltText != nil {
			found.AltText = *input.AltText
		}
		if input.Caption != nil {
			found.Caption = *input.Caption
		}
		if input.IsPrimary != nil {
			found.IsPrimary = *input.IsPrimary
		}

		if err := imageRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update image record")
		}
		if found.IsPrimary {
			if err := imageRepo.ClearPrimary(ctx, found.ProductID, found.ID); err != nil {
				return errors.Wrap(err, "failed to clear sibling primary flags")
			}
		}
		image = found

		return nil
	})
	if err != nil {
		if wroteBlob {
			srv.deleteBlob(ctx, newKey)
		}

		return nil, err
	}

	if wroteBlob && oldKey != "" {
		srv.deleteBlob(ctx, oldKey)
	}

	srv.log(ctx).Info("Product image replaced",
		slog.Int64("imageID", image.ID),
		slog.String("key", newKey),
		slog.String("size", util.FormatBytes(int64(len(input.Data)))),
	)

	return image, nil
}

// deleteBlob logs instead of failing; an orphaned blob is harmless to readers.
func (srv *productService) deleteBlob(ctx context.Context, key string) {
	if err := srv.imageStorage.Delete(ctx, key); err != nil {
		srv.log(ctx).Warn("Failed to delete image blob", slog.String("key", key), slog.Any("error", err))
	}
}

// ReservedStock lists products held by pending orders, by product id.
func (srv *productService) ReservedStock(ctx context.Context) ([]*usecase.StockReservation, error) {
	reserved, err := srv.orderRepo.PendingQuantities(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum pending quantities")
	}

	ids := make([]int64, 0, len(reserved))
	for id := range reserved {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	reservations := make([]*usecase.StockReservation, 0, len(ids))
	for _, id := range ids {
		reservation := &usecase.StockReservation{ProductID: id, Reserved: reserved[id]}

		product, err := srv.productRepo.FindByID(ctx, id)
		switch {
		case err == nil:
			reservation.Name = product.Name
			reservation.Stock = product.StockQuantity
		case !errors.Is(err, repository.ErrProductNotFound):
			return nil, errors.Wrapf(err, "failed to load product %d", id)
		}

		reservations = append(reservations, reservation)
	}

	return reservations, nil
}

// StockAlertsForOrder reads current stock for every product in the order.
// Products deleted since the order was placed are skipped.
func (srv *productService) StockAlertsForOrder(ctx context.Context, orderID int64) ([]*usecase.StockAlert, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, mapOrderNotFound(err)
	}

	var alerts []*usecase.StockAlert
	for _, item := range order.Items {
		product, err := srv.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				continue
			}

			return nil, errors.Wrapf(err, "failed to load product %d", item.ProductID)
		}

		status := pricing.StockStatus(product.StockQuantity, product.MinStockAlert)
		if status == entity.StockStatusInStock {
			continue
		}

		alerts = append(alerts, &usecase.StockAlert{
			ProductID:     product.ID,
			Name:          product.Name,
			StockQuantity: product.StockQuantity,
			MinStockAlert: product.MinStockAlert,
			Status:        status,
		})
	}

	return alerts, nil
}

func mapProductNotFound(err error, id int64) error {
	if errors.Is(err, repository.ErrProductNotFound) {
		return domainerrors.NewProductNotFoundError(id)
	}

	return errors.Wrap(err, "failed to find product")
}

func mapImageNotFound(err error) error {
	if errors.Is(err, repository.ErrProductImageNotFound) {
		return domainerrors.ErrProductImageNotFound
	}

	return errors.Wrap(err, "failed to find product image")
}
