package errors

import (
	"net/http"

	"kumoart/internal/errors"
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
	// Catalog-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Produk tidak ditemukan",
		"",
	)

	ErrEventNotFound = NewBaseError(
		http.StatusNotFound,
		"EVENT_NOT_FOUND",
		"Event tidak ditemukan",
		"",
	)

	// OAuth-related errors
	ErrOAuthNotConfigured = NewBaseError(
		http.StatusInternalServerError,
		"OAUTH_NOT_CONFIGURED",
		"Kredensial OAuth belum dikonfigurasi",
		"",
	)

	ErrOAuthCodeMissing = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_CODE_MISSING",
		"Kode otorisasi tidak ditemukan",
		"",
	)

	ErrOAuthCodeRejected = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_CODE_REJECTED",
		"Kode otorisasi ditolak oleh penyedia",
		"",
	)

	ErrOAuthExchangeFailed = NewBaseError(
		http.StatusInternalServerError,
		"OAUTH_EXCHANGE_FAILED",
		"Gagal menukar kode otorisasi",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Data masukan tidak valid",
		"",
	)

	// Content-related errors
	ErrContentLoadFailed = NewBaseError(
		http.StatusInternalServerError,
		"CONTENT_LOAD_FAILED",
		"Gagal memuat konten",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Terjadi kesalahan pada sistem",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Halaman tidak ditemukan",
		"",
	)
)
