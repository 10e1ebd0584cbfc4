// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/pricing"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	txManager       repository.TransactionManager
	shipping        *shippingPolicy
	publisher       service.EventPublisher
	metrics         service.OperationMetrics
	orderDetailPath string
	logger          *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	SettingsRepo repository.SettingsRepository
	Publisher    service.EventPublisher
	Metrics      service.OperationMetrics
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	orderDetailPath := "/orders/%d"
	if params.Config != nil && params.Config.Checkout.OrderDetailPath != "" {
		orderDetailPath = params.Config.Checkout.OrderDetailPath
	}

	return &checkoutService{
		txManager:       params.TxManager,
		shipping:        newShippingPolicy(params.SettingsRepo, params.Config),
		publisher:       params.Publisher,
		metrics:         params.Metrics,
		orderDetailPath: orderDetailPath,
		logger:          params.Logger,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder validates the submission, then creates the order and takes the stock in one transaction.
func (srv *checkoutService) PlaceOrder(ctx context.Context, input *usecase.CheckoutInput) (*usecase.CheckoutOutput, error) {
	order, err := srv.placeOrder(ctx, input)
	if srv.metrics != nil {
		srv.metrics.ObserveOrderOperation(opCreate, metricStatus(err))
	}
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order placed",
		slog.Int64("orderID", order.ID),
		slog.String("userID", order.UserID.String()),
		slog.String("total", order.TotalAmount.String()),
		slog.Int("itemCount", order.ItemCount()),
		slog.Time("createdAt", order.CreatedAt),
	)
	publishOrderEvent(ctx, srv.publisher, srv.log(ctx), service.OrderEventCreated, order)

	return &usecase.CheckoutOutput{
		Order:       order,
		OrderID:     order.ID,
		RedirectURL: fmt.Sprintf(srv.orderDetailPath, order.ID),
	}, nil
}

func (srv *checkoutService) placeOrder(ctx context.Context, input *usecase.CheckoutInput) (*entity.Order, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed
	}

	address := input.Address.Normalize()
	if field, missing := address.MissingField(); missing {
		return nil, domainerrors.NewMissingAddressFieldError(field)
	}

	lines, err := mergeCartItems(input.Items)
	if err != nil {
		return nil, err
	}

	settings, err := srv.shipping.load(ctx)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		UserID:          input.UserID,
		ContactEmail:    input.ContactEmail,
		Status:          entity.OrderStatusPending,
		ShippingAddress: address,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		ids := make([]int64, 0, len(lines))
		for _, line := range lines {
			ids = append(ids, line.ProductID)
		}

		products, err := productRepo.FindByIDsForUpdate(ctx, ids)
		if err != nil {
			return errors.Wrap(err, "failed to load cart products")
		}
		byID := make(map[int64]*entity.Product, len(products))
		for _, product := range products {
			byID[product.ID] = product
		}

		subtotal := decimal.Zero
		order.Items = make([]*entity.OrderItem, 0, len(lines))
		for _, line := range lines {
			product, ok := byID[line.ProductID]
			if !ok || !product.IsPurchasable() {
				return domainerrors.NewProductNotFoundError(line.ProductID)
			}
			if product.StockQuantity < line.Quantity {
				return domainerrors.NewInsufficientStockError(product.ID, product.Name, product.StockQuantity)
			}

			lineTotal := pricing.LineTotal(product.Price, line.Quantity)
			subtotal = subtotal.Add(lineTotal)
			order.Items = append(order.Items, &entity.OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    line.Quantity,
				UnitPrice:   product.Price,
				TotalPrice:  lineTotal,
			})
		}

		totals := pricing.ComputeTotals(subtotal, settings)
		order.SubtotalAmount = totals.Subtotal
		order.ShippingAmount = totals.Shipping
		order.TotalAmount = totals.Total

		if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		for _, item := range order.Items {
			ok, err := productRepo.DecrementStock(ctx, item.ProductID, item.Quantity)
			if err != nil {
				return errors.Wrap(err, "failed to decrement stock")
			}
			if !ok {
				return srv.insufficientStock(ctx, productRepo, item)
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Checkout rejected",
			slog.String("userID", input.UserID.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	return order, nil
}

// insufficientStock reports the quantity left when the conditional decrement lost a race.
func (srv *checkoutService) insufficientStock(ctx context.Context, productRepo repository.ProductRepository, item *entity.OrderItem) error {
	available := 0
	if product, err := productRepo.FindByID(ctx, item.ProductID); err == nil {
		available = product.StockQuantity
	}

	return domainerrors.NewInsufficientStockError(item.ProductID, item.ProductName, available)
}

// maxLineQuantity matches the INTEGER order_items.quantity column.
const maxLineQuantity = math.MaxInt32

// mergeCartItems sums quantities of repeated products, keeping first-seen order.
func mergeCartItems(items []usecase.CartItem) ([]usecase.CartItem, error) {
	if len(items) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}

	merged := make([]usecase.CartItem, 0, len(items))
	index := make(map[int64]int, len(items))
	for _, item := range items {
		if item.ProductID <= 0 {
			return nil, domainerrors.NewProductNotFoundError(item.ProductID)
		}
		if item.Quantity < 1 || item.Quantity > maxLineQuantity {
			return nil, domainerrors.ErrInvalidQuantity.WithDetails(fmt.Sprintf("product_id=%d", item.ProductID))
		}

		if i, ok := index[item.ProductID]; ok {
			if merged[i].Quantity > maxLineQuantity-item.Quantity {
				return nil, domainerrors.ErrInvalidQuantity.WithDetails(fmt.Sprintf("product_id=%d", item.ProductID))
			}
			merged[i].Quantity += item.Quantity

			continue
		}
		index[item.ProductID] = len(merged)
		merged = append(merged, item)
	}

	return merged, nil
}
