package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("USR_001", "Wallet code is already registered", http.StatusBadRequest),
			expected: "[USR_001] Wallet code is already registered",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("USR_001", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestUserErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"DuplicateWallet", ErrDuplicateWallet(), "USR_001", 400},
		{"InvalidWalletCode", ErrInvalidWalletCode(), "USR_002", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestSystemErrors(t *testing.T) {
	inner := fmt.Errorf("pg: connection closed")

	storeErr := ErrStoreError(inner)
	assert.Equal(t, "SYS_001", storeErr.Code)
	assert.Equal(t, 500, storeErr.HTTPStatus)
	assert.True(t, errors.Is(storeErr, inner))
	assert.NotContains(t, storeErr.Message, "pg:", "cause must not leak into the client message")
}

func TestValidation(t *testing.T) {
	err := Validation("name is required")
	assert.Equal(t, "REQ_001", err.Code)
	assert.Equal(t, 400, err.HTTPStatus)
	assert.Contains(t, err.Message, "name")
}
