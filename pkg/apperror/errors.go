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

// ---- User & Wallet (USR) ----

func ErrDuplicateWallet() *AppError {
	return New("USR_001", "Wallet code is already registered", http.StatusBadRequest)
}

func ErrInvalidWalletCode() *AppError {
	return New("USR_002", "Wallet code is not a valid public key", http.StatusBadRequest)
}

// ---- System & Infrastructure (SYS) ----

// ErrStoreError wraps a database connectivity or query failure.
// The underlying cause is kept for logging, never sent to the client.
func ErrStoreError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// Validation returns a malformed-request error.
func Validation(message string) *AppError {
	return New("REQ_001", message, http.StatusBadRequest)
}
