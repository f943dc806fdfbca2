package errors

import (
	"net/http"

	"github.com/pkg/errors"
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

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

// WithDetails returns a copy carrying details. The copy still matches the original with errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches BaseErrors by business code so that copies made by WithDetails compare equal.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Menu errors
	ErrMenuItemNotFound = NewBaseError(
		http.StatusNotFound,
		"MENU_ITEM_NOT_FOUND",
		"Menu item not found",
		"",
	)

	ErrMenuItemUnavailable = NewBaseError(
		http.StatusConflict,
		"MENU_ITEM_UNAVAILABLE",
		"Menu item is not available",
		"",
	)

	ErrInvalidPrice = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PRICE",
		"Price must not be negative",
		"",
	)

	// Order errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrEmptyOrder = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_ORDER",
		"Order must contain at least one item",
		"",
	)

	ErrInvalidQuantity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUANTITY",
		"Quantity must be greater than zero",
		"",
	)

	ErrInvalidDiscount = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DISCOUNT",
		"Discount must not be negative",
		"",
	)

	ErrInvalidStatusTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_STATUS_TRANSITION",
		"Order cannot move to the requested status",
		"",
	)

	ErrOrderNotEditable = NewBaseError(
		http.StatusConflict,
		"ORDER_NOT_EDITABLE",
		"Only pending orders can be changed",
		"",
	)

	ErrTableRequired = NewBaseError(
		http.StatusBadRequest,
		"TABLE_REQUIRED",
		"Dine-in orders need a table",
		"",
	)

	ErrOrderCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"ORDER_CREATION_FAILED",
		"Failed to create order",
		"",
	)

	// Payment errors
	ErrPaymentNotFound = NewBaseError(
		http.StatusNotFound,
		"PAYMENT_NOT_FOUND",
		"Payment not found",
		"",
	)

	ErrInvalidPaymentMethod = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PAYMENT_METHOD",
		"Unsupported payment method",
		"",
	)

	ErrOrderAlreadyPaid = NewBaseError(
		http.StatusConflict,
		"ORDER_ALREADY_PAID",
		"Order already has a completed payment",
		"",
	)

	ErrOrderNotPayable = NewBaseError(
		http.StatusConflict,
		"ORDER_NOT_PAYABLE",
		"Order cannot be paid in its current status",
		"",
	)

	ErrRefundNotAllowed = NewBaseError(
		http.StatusConflict,
		"REFUND_NOT_ALLOWED",
		"Only completed payments can be refunded",
		"",
	)

	ErrPaymentGatewayFailed = NewBaseError(
		http.StatusBadGateway,
		"PAYMENT_GATEWAY_FAILED",
		"Payment processor is unavailable",
		"",
	)

	// Table errors
	ErrTableNotFound = NewBaseError(
		http.StatusNotFound,
		"TABLE_NOT_FOUND",
		"Table not found",
		"",
	)

	ErrTableAlreadyExists = NewBaseError(
		http.StatusConflict,
		"TABLE_ALREADY_EXISTS",
		"A table with this number already exists",
		"",
	)

	ErrTableUnavailable = NewBaseError(
		http.StatusConflict,
		"TABLE_UNAVAILABLE",
		"Table is not available",
		"",
	)

	ErrInvalidReservation = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RESERVATION",
		"Reservation must end in the future on an available table",
		"",
	)

	ErrInvalidTable = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TABLE",
		"Table number and capacity must be positive",
		"",
	)

	ErrNoTableForParty = NewBaseError(
		http.StatusNotFound,
		"NO_TABLE_FOR_PARTY",
		"No available table fits the party",
		"",
	)

	// Inventory errors
	ErrIngredientNotFound = NewBaseError(
		http.StatusNotFound,
		"INGREDIENT_NOT_FOUND",
		"Ingredient not found",
		"",
	)

	ErrStockLimitExceeded = NewBaseError(
		http.StatusConflict,
		"STOCK_LIMIT_EXCEEDED",
		"Stock would exceed the maximum level",
		"",
	)

	ErrInsufficientStock = NewBaseError(
		http.StatusConflict,
		"INSUFFICIENT_STOCK",
		"Not enough stock on hand",
		"",
	)

	ErrInvalidIngredient = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INGREDIENT",
		"Ingredient data is invalid",
		"",
	)

	// Customer errors
	ErrCustomerNotFound = NewBaseError(
		http.StatusNotFound,
		"CUSTOMER_NOT_FOUND",
		"Customer not found",
		"",
	)

	ErrCustomerAlreadyExists = NewBaseError(
		http.StatusConflict,
		"CUSTOMER_ALREADY_EXISTS",
		"This email is already registered",
		"",
	)

	ErrInvalidCustomer = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CUSTOMER",
		"Name, phone and a valid email are required",
		"",
	)

	ErrInsufficientLoyaltyPoints = NewBaseError(
		http.StatusConflict,
		"INSUFFICIENT_LOYALTY_POINTS",
		"Not enough loyalty points",
		"",
	)

	ErrInvalidLoyaltyPoints = NewBaseError(
		http.StatusBadRequest,
		"INVALID_LOYALTY_POINTS",
		"Points must be greater than zero",
		"",
	)

	// Authentication errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid manager secret",
		"",
	)

	ErrTokenGenerationFailed = NewBaseError(
		http.StatusInternalServerError,
		"TOKEN_GENERATION_FAILED",
		"Failed to issue access token",
		"",
	)

	// General errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)
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

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
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
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
