package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/storefront-api/internal/api/shared"
	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/service"
	"github.com/phrazzld/storefront-api/internal/service/auth"
	"github.com/phrazzld/storefront-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{
			name:           "nil error",
			err:            nil,
			expectedStatus: http.StatusInternalServerError, // Default to 500 for nil error
		},
		{
			name:           "authentication error",
			err:            auth.ErrInvalidToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrapped authentication error",
			err:            fmt.Errorf("failed to authenticate: %w", auth.ErrExpiredToken),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid credentials",
			err:            auth.ErrInvalidCredentials,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "user not found",
			err:            store.ErrUserNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "wrapped item not found",
			err:            fmt.Errorf("no items named %q: %w", "x", store.ErrItemNotFound),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "malformed id is not found",
			err:            fmt.Errorf("%w: id: %w", store.ErrItemNotFound, domain.ErrInvalidID),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "conflict error",
			err:            store.ErrUsernameExists,
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "password too short",
			err:            fmt.Errorf("failed to create user: %w", domain.ErrPasswordTooShort),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid quantity",
			err:            domain.ErrInvalidQuantity,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "cart full",
			err:            fmt.Errorf("failed to add_to_cart: %w", domain.ErrCartFull),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid entity",
			err:            store.ErrInvalidEntity,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "service error wrapping not found",
			err:            service.NewServiceError("cart", "add_to_cart", store.ErrCartNotFound),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "service error wrapping unknown error",
			err:            service.NewServiceError("order", "submit", errors.New("connection reset")),
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "unknown error",
			err:            errors.New("unknown error"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedStatus, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedMessage string
	}{
		{"nil error", nil, "An unexpected error occurred"},
		{"invalid token", auth.ErrInvalidToken, "Invalid token"},
		{"expired token", fmt.Errorf("failed due to: %w", auth.ErrExpiredToken), "Token expired"},
		{"invalid credentials", auth.ErrInvalidCredentials, "Invalid credentials"},
		{"user not found", fmt.Errorf("failed to retrieve user: %w", store.ErrUserNotFound), "User not found"},
		{"item not found", store.ErrItemNotFound, "Item not found"},
		{"username exists", store.ErrUsernameExists, "Username already exists"},
		{"password too short", domain.ErrPasswordTooShort, "Password must be at least 7 characters long"},
		{"password mismatch", domain.ErrPasswordMismatch, "Password and confirmation do not match"},
		{"empty username", domain.ErrEmptyUsername, "Username is required"},
		{"invalid quantity", domain.ErrInvalidQuantity, "Quantity must be a positive integer"},
		{"quantity too large", fmt.Errorf("failed to add_to_cart: %w", domain.ErrQuantityTooLarge), "Quantity must be at most 10000"},
		{"cart full", domain.ErrCartFull, "A cart cannot hold more than 10000 items"},
		{"generic validation", domain.NewValidationError("name", "is bad", nil), "Invalid request data"},
		{"unknown error", errors.New("database error: connection refused"), "An unexpected error occurred"},
		{
			"wrapped database error with SQL details",
			fmt.Errorf("SQL error: %w", errors.New("syntax error at line 42 in SELECT * FROM users")),
			"An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			message := GetSafeErrorMessage(tt.err)
			assert.Equal(t, tt.expectedMessage, message)

			// Verify no sensitive details are leaked
			if tt.err != nil && tt.expectedMessage == "An unexpected error occurred" {
				assert.NotContains(t, message, tt.err.Error())
			}
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	testError := errors.New(
		"Key: 'ModifyCartRequest.Quantity' Error:Field validation for 'Quantity' failed on the 'required' tag",
	)
	safeMessage := SanitizeValidationError(testError)

	assert.NotEqual(t, testError.Error(), safeMessage)
	assert.Equal(t, "Invalid Quantity: required field", safeMessage)

	otherError := errors.New("Some other kind of error")
	assert.Equal(t, "Validation error", SanitizeValidationError(otherError))
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		defaultMessage string
		wantStatus     int
		wantMessage    string
	}{
		{"not found", store.ErrUserNotFound, "Failed", http.StatusNotFound, "User not found"},
		{"default message for 500", errors.New("boom"), "Failed to submit order", http.StatusInternalServerError, "Failed to submit order"},
		{"generic message for 500", errors.New("boom"), "", http.StatusInternalServerError, "An unexpected error occurred"},
		{"default ignored for 4xx", domain.ErrPasswordMismatch, "Failed", http.StatusBadRequest, "Password and confirmation do not match"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req = req.WithContext(shared.SetTraceID(req.Context()))
			w := httptest.NewRecorder()

			HandleAPIError(w, req, tt.err, tt.defaultMessage)

			assert.Equal(t, tt.wantStatus, w.Code)
			var resp shared.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantMessage, resp.Error)
			assert.Equal(t, shared.GetTraceID(req.Context()), resp.TraceID)
		})
	}
}
