package errors

import (
	"net/http"

	"accounts/internal/errors"
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

// Predefined error types
var (
	// Request errors
	ErrBadRequest = NewBaseError(
		http.StatusBadRequest,
		"BAD_REQUEST",
		"Malformed request",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrDeviceIDRequired = NewBaseError(
		http.StatusBadRequest,
		"DEVICE_ID_REQUIRED",
		"Device id is required",
		"",
	)

	// Account-related errors
	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"Account not found",
		"",
	)

	ErrAccountConflict = NewBaseError(
		http.StatusConflict,
		"ACCOUNT_CONFLICT",
		"A device is already bound to another account",
		"",
	)

	ErrSelfMerge = NewBaseError(
		http.StatusBadRequest,
		"SELF_MERGE",
		"Cannot merge an account with itself",
		"",
	)

	ErrDevicePairNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device is not bound to this account",
		"",
	)

	// Notification-related errors
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Notification not found",
		"",
	)

	ErrNotificationSyncDisabled = NewBaseError(
		http.StatusNotImplemented,
		"NOTIFICATION_SYNC_DISABLED",
		"Smart notifications are not enabled",
		"",
	)

	// Authentication-related errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Invalid authorization token",
		"",
	)

	ErrInvalidSyncToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_SYNC_TOKEN",
		"Invalid or expired sync token",
		"",
	)

	ErrSyncTokenUsed = NewBaseError(
		http.StatusUnauthorized,
		"SYNC_TOKEN_USED",
		"Sync token has already been used",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"You are not allowed to execute this action",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// StorageError represents a document store failure, implementing the AppError interface
type StorageError struct {
	err     error
	details string
}

// NewStorageError creates a storage-related error
func NewStorageError(err error, details string) AppError {
	return &StorageError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return errors.Wrap(e.err, "storage operation failed").Error()
}

// Unwrap returns the underlying driver error
func (e *StorageError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *StorageError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StorageError) ErrorCode() string {
	return "STORAGE_ERROR"
}

// Message returns the user-friendly error message
func (e *StorageError) Message() string {
	return "Storage operation failed"
}

// Details returns detailed error information
func (e *StorageError) Details() string {
	return e.details
}

// UpstreamError reports a failed call to the external smart notification service.
// The local write that preceded the call has already been committed.
type UpstreamError struct {
	status  int
	message string
	err     error
}

// NewUpstreamError creates an upstream error. A zero status means the service was unreachable.
func NewUpstreamError(status int, message string, err error) AppError {
	if status == 0 {
		status = http.StatusBadGateway
	}
	if message == "" {
		message = http.StatusText(status)
	}

	return &UpstreamError{
		status:  status,
		message: message,
		err:     err,
	}
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	if e.err != nil {
		return errors.Wrap(e.err, "smart notifications: "+e.message).Error()
	}

	return "smart notifications: " + e.message
}

// Unwrap returns the transport error, if any
func (e *UpstreamError) Unwrap() error {
	return e.err
}

// HTTPCode returns the status reported by the external service
func (e *UpstreamError) HTTPCode() int {
	return e.status
}

// ErrorCode returns the business error code
func (e *UpstreamError) ErrorCode() string {
	return "UPSTREAM_ERROR"
}

// Message returns the message reported by the external service
func (e *UpstreamError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *UpstreamError) Details() string {
	return "local change was saved but the smart notification service rejected it"
}
