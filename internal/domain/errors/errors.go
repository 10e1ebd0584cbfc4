package errors

import (
	"net/http"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches any BaseError carrying the same error code, so copies made by
// WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WithMessage returns a copy with a more specific user-facing message.
func (e *BaseError) WithMessage(message string) *BaseError {
	c := *e
	c.message = message

	return &c
}

// WithDetails returns a copy carrying client-visible details.
func (e *BaseError) WithDetails(details string) *BaseError {
	c := *e
	c.details = details

	return &c
}

func define(httpCode int, code, message string) *BaseError {
	return NewBaseError(httpCode, code, message, "")
}

// Errors the use cases return. Handlers render them as-is, so messages are
// written for shoppers and admins.
var (
	// Validation errors
	ErrValidationFailed    = define(http.StatusBadRequest, "VALIDATION_FAILED", "Submitted data is invalid")
	ErrMissingAddressField = define(http.StatusBadRequest, "MISSING_ADDRESS_FIELD", "Please fill in every shipping address field")
	ErrEmptyCart           = define(http.StatusBadRequest, "EMPTY_CART", "Your cart is empty")
	ErrInvalidQuantity     = define(http.StatusBadRequest, "INVALID_QUANTITY", "Quantity must be at least 1")
	ErrInvalidDiscount     = define(http.StatusBadRequest, "INVALID_DISCOUNT", "Discount percentage must be between 0 and 100")

	// Catalog errors
	ErrProductNotFound      = define(http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found")
	ErrInsufficientStock    = define(http.StatusConflict, "INSUFFICIENT_STOCK", "Not enough stock for this product")
	ErrProductImageNotFound = define(http.StatusNotFound, "PRODUCT_IMAGE_NOT_FOUND", "Product image not found")

	// Order errors
	ErrOrderNotFound           = define(http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found")
	ErrInvalidStatusTransition = define(http.StatusConflict, "INVALID_STATUS_TRANSITION", "Order status cannot be changed this way")
	ErrOrderNotPayable         = define(http.StatusConflict, "ORDER_NOT_PAYABLE", "Only pending orders can be paid")

	// Payment gateway errors
	ErrPaymentGatewayUnavailable = define(http.StatusBadGateway, "PAYMENT_GATEWAY_UNAVAILABLE", "Could not reach the payment gateway, please try again")
	ErrPaymentRequestRejected    = define(http.StatusPaymentRequired, "PAYMENT_REQUEST_REJECTED", "The payment gateway rejected the request, please try again")
	ErrPaymentVerificationFailed = define(http.StatusPaymentRequired, "PAYMENT_VERIFICATION_FAILED", "Payment could not be verified")
	ErrPaymentNotFound           = define(http.StatusNotFound, "PAYMENT_NOT_FOUND", "No order matches this payment")

	// Transaction-related errors
	ErrTransactionFailed = define(http.StatusInternalServerError, "TRANSACTION_FAILED", "Database transaction failed")

	// General errors
	ErrInternalError = define(http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong, please try again")
	ErrUnauthorized  = define(http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
	ErrForbidden     = define(http.StatusForbidden, "FORBIDDEN", "Access denied")
	ErrNotFound      = define(http.StatusNotFound, "NOT_FOUND", "Resource not found")
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
