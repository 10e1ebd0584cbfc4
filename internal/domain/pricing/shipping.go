package pricing

import (
	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Totals is the money summary of an order.
type Totals struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

// ShippingFor waives shipping when subtotal reaches the free-shipping threshold.
func ShippingFor(subtotal decimal.Decimal, settings entity.ShippingSettings) decimal.Decimal {
	if subtotal.GreaterThanOrEqual(settings.FreeShippingThreshold) {
		return decimal.Zero
	}

	return settings.ShippingCost
}

// ComputeTotals adds shipping to the subtotal.
func ComputeTotals(subtotal decimal.Decimal, settings entity.ShippingSettings) Totals {
	shipping := ShippingFor(subtotal, settings)

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal.Add(shipping),
	}
}
