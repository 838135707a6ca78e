package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Payment link (UPI) ----

func ErrPayeeAddressRequired() *AppError {
	return New("UPI_001", "Payee UPI ID is required", http.StatusBadRequest)
}

// Validation returns a UPI_002 request validation error.
func Validation(message string) *AppError {
	return New("UPI_002", message, http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New("UPI_003", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an unexpected failure as SYS_001.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrDependencyUnavailable(name string, err error) *AppError {
	return Wrap("SYS_002", fmt.Sprintf("%s unavailable", name), http.StatusServiceUnavailable, err)
}

func ErrQRCodeFailure(err error) *AppError {
	return Wrap("SYS_003", "QR code generation failed", http.StatusInternalServerError, err)
}
