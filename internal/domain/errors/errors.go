// Package errors defines the application error contract shared by usecases
// and the delivery layer.
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
	// Session-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Station or password is incorrect",
		"",
	)

	ErrSessionRequired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_REQUIRED",
		"Sign in to access the dashboard",
		"",
	)

	// Record lookups against the in-memory lists
	ErrRecordNotFound = NewBaseError(
		http.StatusNotFound,
		"RECORD_NOT_FOUND",
		"The requested record is not in the current list",
		"",
	)

	// Resolve actions
	ErrResolveFailed = NewBaseError(
		http.StatusBadGateway,
		"RESOLVE_FAILED",
		"Failed to mark the record as resolved",
		"",
	)

	ErrAlertFeedUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"ALERT_FEED_UNAVAILABLE",
		"The device alert backend is not configured",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
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

// BackendWriteError represents a failed write against one of the Firebase
// backends, implementing the AppError interface. The raw backend message is
// surfaced to the operator so they can decide whether to retry.
type BackendWriteError struct {
	err     error
	details string
}

// NewBackendWriteError creates a backend-write error
func NewBackendWriteError(err error, details string) AppError {
	return &BackendWriteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *BackendWriteError) Error() string {
	return errors.Wrap(e.err, "backend write failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *BackendWriteError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *BackendWriteError) ErrorCode() string {
	return "BACKEND_WRITE_FAILED"
}

// Message returns the user-friendly error message
func (e *BackendWriteError) Message() string {
	return e.err.Error()
}

// Details returns detailed error information
func (e *BackendWriteError) Details() string {
	return e.details
}

// Response unified API response structure
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}
