package pricing

import (
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestResolve_PercentageRecomputesFromOriginal(t *testing.T) {
	result, err := Resolve(PriceInput{
		Price:              d(90000),
		OriginalPrice:      decimal.NewNullDecimal(d(100000)),
		DiscountPercentage: 20,
	})
	require.NoError(t, err)

	assert.True(t, result.HasDiscount)
	assert.True(t, d(80000).Equal(result.Price))
	assert.True(t, d(20000).Equal(result.DiscountAmount))
	require.True(t, result.OriginalPrice.Valid)
	assert.True(t, d(100000).Equal(result.OriginalPrice.Decimal))
}

func TestResolve_PercentageIsStableAcrossSaves(t *testing.T) {
	first, err := Resolve(PriceInput{Price: d(100000), DiscountPercentage: 10})
	require.NoError(t, err)

	second, err := Resolve(PriceInput{
		Price:              first.Price,
		OriginalPrice:      first.OriginalPrice,
		DiscountPercentage: first.DiscountPercentage,
	})
	require.NoError(t, err)

	assert.True(t, first.Price.Equal(second.Price), "saving twice must not discount twice")
	assert.True(t, d(90000).Equal(second.Price))
}

func TestResolve_FixedAmount(t *testing.T) {
	result, err := Resolve(PriceInput{Price: d(45000), DiscountAmount: d(5000)})
	require.NoError(t, err)

	assert.True(t, result.HasDiscount)
	assert.True(t, d(45000).Equal(result.Price))
	assert.True(t, d(50000).Equal(result.OriginalPrice.Decimal))
}

func TestResolve_NoDiscount(t *testing.T) {
	result, err := Resolve(PriceInput{Price: d(12000)})
	require.NoError(t, err)

	assert.False(t, result.HasDiscount)
	assert.True(t, d(12000).Equal(result.Price))
	assert.False(t, result.OriginalPrice.Valid)
}

func TestResolve_RejectsOutOfRangePercentage(t *testing.T) {
	for _, pct := range []int{-1, 101} {
		_, err := Resolve(PriceInput{Price: d(1000), DiscountPercentage: pct})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidDiscount)
	}
}

func TestApply(t *testing.T) {
	product := &entity.Product{Price: d(100)}
	Apply(product, PriceResult{Price: d(80), OriginalPrice: decimal.NewNullDecimal(d(100)), DiscountPercentage: 20, DiscountAmount: d(20), HasDiscount: true})

	assert.True(t, d(80).Equal(product.Price))
	assert.Equal(t, 20, product.DiscountPercentage)
	assert.True(t, product.HasDiscount)
}

func TestDiscountPercentage(t *testing.T) {
	assert.Equal(t, 25, DiscountPercentage(d(75), decimal.NewNullDecimal(d(100))))
	assert.Equal(t, 0, DiscountPercentage(d(100), decimal.NewNullDecimal(d(100))))
	assert.Equal(t, 0, DiscountPercentage(d(100), decimal.NullDecimal{}))
}

func TestComputeTotals(t *testing.T) {
	settings := entity.ShippingSettings{
		ShippingCost:          d(70000),
		FreeShippingThreshold: d(500000),
	}

	tests := []struct {
		name         string
		subtotal     int64
		wantShipping int64
		wantTotal    int64
	}{
		{name: "at threshold ships free", subtotal: 500000, wantShipping: 0, wantTotal: 500000},
		{name: "just below threshold pays shipping", subtotal: 499999, wantShipping: 70000, wantTotal: 569999},
		{name: "above threshold ships free", subtotal: 750000, wantShipping: 0, wantTotal: 750000},
		{name: "small order", subtotal: 1000, wantShipping: 70000, wantTotal: 71000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := ComputeTotals(d(tt.subtotal), settings)

			assert.True(t, d(tt.wantShipping).Equal(totals.Shipping), "shipping = %s", totals.Shipping)
			assert.True(t, d(tt.wantTotal).Equal(totals.Total), "total = %s", totals.Total)
			assert.True(t, totals.Subtotal.Add(totals.Shipping).Equal(totals.Total))
		})
	}
}

func TestLineTotal(t *testing.T) {
	assert.True(t, d(36000).Equal(LineTotal(d(12000), 3)))
}

func TestStockStatus(t *testing.T) {
	assert.Equal(t, entity.StockStatusOutOfStock, StockStatus(0, 5))
	assert.Equal(t, entity.StockStatusLowStock, StockStatus(5, 5))
	assert.Equal(t, entity.StockStatusInStock, StockStatus(6, 5))
}
