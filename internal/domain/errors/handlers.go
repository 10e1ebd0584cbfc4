package errors

import (
	"fmt"
)

// NewMissingAddressFieldError names the blank shipping address field.
func NewMissingAddressFieldError(field string) *BaseError {
	return ErrMissingAddressField.WithDetails(field)
}

// NewProductNotFoundError names the product reference that could not be ordered.
func NewProductNotFoundError(productID int64) *BaseError {
	return ErrProductNotFound.
		WithMessage(fmt.Sprintf("Product #%d is not available", productID)).
		WithDetails(fmt.Sprintf("product_id=%d", productID))
}

// NewInsufficientStockError names the product and how many units remain.
func NewInsufficientStockError(productID int64, productName string, available int) *BaseError {
	return ErrInsufficientStock.
		WithMessage(fmt.Sprintf("Only %d left in stock for %s", available, productName)).
		WithDetails(fmt.Sprintf("product_id=%d available=%d", productID, available))
}

// NewInvalidStatusTransitionError names the rejected transition.
func NewInvalidStatusTransitionError(from, to string) *BaseError {
	return ErrInvalidStatusTransition.WithDetails(fmt.Sprintf("%s -> %s", from, to))
}
