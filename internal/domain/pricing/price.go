// Package pricing holds the pure price, shipping and stock rules of the storefront.
// Nothing here touches storage, so every rule is testable on plain values.
package pricing

import (
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// PriceInput is the set of price fields an administrator submits for a product.
type PriceInput struct {
	Price              decimal.Decimal
	OriginalPrice      decimal.NullDecimal
	DiscountPercentage int
	DiscountAmount     decimal.Decimal
}

// PriceResult is the resolved price state to persist.
type PriceResult struct {
	Price              decimal.Decimal
	OriginalPrice      decimal.NullDecimal
	DiscountPercentage int
	DiscountAmount     decimal.Decimal
	HasDiscount        bool
}

// Resolve derives the effective price from the submitted discount fields.
//
// A positive percentage recomputes price from the original price (or the
// submitted price when no original exists yet) and forces HasDiscount.
// Otherwise a positive fixed discount amount marks price as already
// discounted and reconstructs the original price from it.
func Resolve(in PriceInput) (PriceResult, error) {
	if in.DiscountPercentage < 0 || in.DiscountPercentage > 100 {
		return PriceResult{}, domainerrors.ErrInvalidDiscount
	}
	if in.Price.IsNegative() || in.DiscountAmount.IsNegative() {
		return PriceResult{}, domainerrors.ErrValidationFailed.WithDetails("amounts must not be negative")
	}

	if in.DiscountPercentage > 0 {
		base := in.Price
		if in.OriginalPrice.Valid && in.OriginalPrice.Decimal.IsPositive() {
			base = in.OriginalPrice.Decimal
		}
		discount := base.Mul(decimal.NewFromInt(int64(in.DiscountPercentage))).Div(hundred).Round(0)

		return PriceResult{
			Price:              base.Sub(discount),
			OriginalPrice:      decimal.NewNullDecimal(base),
			DiscountPercentage: in.DiscountPercentage,
			DiscountAmount:     discount,
			HasDiscount:        true,
		}, nil
	}

	if in.DiscountAmount.IsPositive() {
		return PriceResult{
			Price:          in.Price,
			OriginalPrice:  decimal.NewNullDecimal(in.Price.Add(in.DiscountAmount)),
			DiscountAmount: in.DiscountAmount,
			HasDiscount:    true,
		}, nil
	}

	return PriceResult{
		Price:          in.Price,
		OriginalPrice:  in.OriginalPrice,
		DiscountAmount: decimal.Zero,
	}, nil
}

// Apply copies a resolved price onto a product.
func Apply(p *entity.Product, r PriceResult) {
	p.Price = r.Price
	p.OriginalPrice = r.OriginalPrice
	p.DiscountPercentage = r.DiscountPercentage
	p.DiscountAmount = r.DiscountAmount
	p.HasDiscount = r.HasDiscount
}

// DiscountPercentage returns the whole-percent reduction from original to price,
// or 0 when there is none.
func DiscountPercentage(price decimal.Decimal, original decimal.NullDecimal) int {
	if !original.Valid || !original.Decimal.GreaterThan(price) {
		return 0
	}

	return int(original.Decimal.Sub(price).Div(original.Decimal).Mul(hundred).IntPart())
}

// LineTotal is unit price times quantity.
func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}
