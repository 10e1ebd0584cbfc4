package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type commands struct {
	cfg        *config.Config
	orderUC    usecase.OrderUsecase
	productUC  usecase.ProductUsecase
	settingsUC usecase.SettingsUsecase
	gateway    service.PaymentGateway
	out        io.Writer
}

func (c *commands) setupShipping(ctx context.Context, cost, threshold string) error {
	shippingCost, err := decimal.NewFromString(cost)
	if err != nil {
		return errors.Wrap(err, "invalid --shipping-cost")
	}
	freeThreshold, err := decimal.NewFromString(threshold)
	if err != nil {
		return errors.Wrap(err, "invalid --free-threshold")
	}

	saved, err := c.settingsUC.UpdateShippingSettings(ctx, &entity.ShippingSettings{
		ShippingCost:          shippingCost,
		FreeShippingThreshold: freeThreshold,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Shipping cost: %s\n", saved.ShippingCost)
	fmt.Fprintf(c.out, "Free shipping from: %s\n", saved.FreeShippingThreshold)

	return nil
}

func (c *commands) setStock(ctx context.Context, productID int64, quantity int) error {
	product, err := c.productUC.SetProductStock(ctx, productID, quantity)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Product %d (%s) stock set to %d\n", product.ID, product.Name, product.StockQuantity)

	return nil
}

func (c *commands) fixInventory(ctx context.Context, before time.Time, dryRun bool) error {
	orders, err := c.orderUC.ReleaseStaleOrders(ctx, before, dryRun)
	if err != nil {
		return err
	}

	verb := "Released"
	if dryRun {
		verb = "Would release"
	}
	fmt.Fprintf(c.out, "%s %d pending order(s) created before %s\n", verb, len(orders), before.Format(time.RFC3339))
	for _, order := range orders {
		fmt.Fprintf(c.out, "  order #%d  %d unit(s)  created %s\n", order.ID, order.ItemCount(), order.CreatedAt.Format(time.RFC3339))
	}

	reservations, err := c.productUC.ReservedStock(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, "Reserved by pending orders:")
	if len(reservations) == 0 {
		fmt.Fprintln(c.out, "  none")
	}
	for _, r := range reservations {
		fmt.Fprintf(c.out, "  product #%d %s: stock %d, reserved %d\n", r.ProductID, r.Name, r.Stock, r.Reserved)
	}

	return nil
}

func (c *commands) testGateway(ctx context.Context, amount string) error {
	if c.cfg.Payment == nil || !c.cfg.Payment.Sandbox {
		return errors.New("test-gateway only runs against the sandbox; set payment.sandbox")
	}

	total, err := decimal.NewFromString(amount)
	if err != nil || !total.IsPositive() {
		return errors.New("--amount must be a positive number")
	}

	order := &entity.Order{TotalAmount: total}
	result, err := c.gateway.CreatePaymentRequest(ctx, order, c.cfg.Payment.CallbackURL)
	if err != nil {
		return err
	}

	if !result.Success {
		return errors.Errorf("gateway rejected the request: %s (code %d)", result.Message, result.Code)
	}

	fmt.Fprintf(c.out, "Authority: %s\n", result.Authority)
	fmt.Fprintf(c.out, "Payment URL: %s\n", result.PaymentURL)

	return nil
}
