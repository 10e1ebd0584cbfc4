package pricing

import "storefront/internal/domain/entity"

// StockStatus classifies a stock level against the low-stock alert mark.
func StockStatus(stock, minAlert int) entity.StockStatus {
	switch {
	case stock <= 0:
		return entity.StockStatusOutOfStock
	case stock <= minAlert:
		return entity.StockStatusLowStock
	default:
		return entity.StockStatusInStock
	}
}
