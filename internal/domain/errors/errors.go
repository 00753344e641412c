package errors

import (
	"fmt"
	"net/http"
	"strings"

	"shipway/internal/errors"
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

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Rule authoring validation errors
	ErrCountryRequired = NewBaseError(
		http.StatusBadRequest,
		"COUNTRY_REQUIRED",
		"Country selection is required",
		"",
	)

	ErrDateOrder = NewBaseError(
		http.StatusBadRequest,
		"DATE_ORDER",
		"Start date cannot be after end date",
		"",
	)

	ErrEndDatePast = NewBaseError(
		http.StatusBadRequest,
		"END_DATE_PAST",
		"End date cannot be in the past",
		"",
	)

	ErrDeliveryTimeTooShort = NewBaseError(
		http.StatusBadRequest,
		"DELIVERY_TIME_TOO_SHORT",
		"Delivery time must be descriptive (e.g., 1-2 days)",
		"",
	)

	ErrResourceRequired = NewBaseError(
		http.StatusBadRequest,
		"RESOURCE_REQUIRED",
		"At least one resource is required",
		"",
	)

	ErrResourceListMismatch = NewBaseError(
		http.StatusBadRequest,
		"RESOURCE_LIST_MISMATCH",
		"Resource flag lists must match the resource id list in length",
		"",
	)

	ErrInvalidDate = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DATE",
		"Dates must be in YYYY-MM-DD format",
		"",
	)

	// Conflict detection
	ErrRuleConflict = NewBaseError(
		http.StatusBadRequest,
		"RULE_CONFLICT",
		"Conflicting rules found. Please delete existing rules first.",
		"",
	)

	// Storefront query errors
	ErrResourceRefRequired = NewBaseError(
		http.StatusBadRequest,
		"RESOURCE_REF_REQUIRED",
		"Product ID or Collection ID required",
		"",
	)

	ErrInvalidCountryName = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COUNTRY",
		"Invalid country name",
		"",
	)

	ErrCountryParamRequired = NewBaseError(
		http.StatusBadRequest,
		"COUNTRY_PARAM_REQUIRED",
		"Country is required for this request",
		"",
	)

	// Notification signup errors
	ErrInvalidEmail = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EMAIL",
		"Valid email is required",
		"",
	)

	ErrNotificationsNotEnabled = NewBaseError(
		http.StatusForbidden,
		"NOTIFICATIONS_NOT_ENABLED",
		"Notifications not enabled for this product in your country",
		"",
	)

	// Admin session errors
	ErrSessionTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_TOKEN_INVALID",
		"Invalid or expired session token",
		"",
	)
)

// NewInvalidZipSpecError reports the offending zip patterns back to the admin.
func NewInvalidZipSpecError(invalid []string) *BaseError {
	return NewBaseError(
		http.StatusBadRequest,
		"INVALID_ZIP_SPEC",
		fmt.Sprintf("Invalid zip code format: %s", strings.Join(invalid, ", ")),
		"",
	)
}

// NewCatalogFetchError surfaces a non-200 host platform response.
func NewCatalogFetchError(status int) *BaseError {
	return NewBaseError(
		http.StatusInternalServerError,
		"CATALOG_FETCH_FAILED",
		fmt.Sprintf("HTTP error! status: %d", status),
		"",
	)
}

// NewDatabaseExecuteError wraps an unexpected database failure.
func NewDatabaseExecuteError(err error, message string) error {
	base := NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		message,
		err.Error(),
	)

	return errors.WithStack(base)
}
