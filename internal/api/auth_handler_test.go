package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/mocks"
	"github.com/phrazzld/storefront-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoginUserStore(t *testing.T) *mocks.MockUserStore {
	t.Helper()
	userStore := mocks.NewMockUserStore()
	require.NoError(t, userStore.Create(context.Background(), &domain.User{
		ID:             uuid.New(),
		Username:       "alice",
		HashedPassword: mocks.HashPrefix + "password1",
	}))
	return userStore
}

func TestLogin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantHeader string
	}{
		{
			name:       "valid credentials",
			body:       `{"username":"alice","password":"password1"}`,
			wantStatus: http.StatusOK,
			wantHeader: "Bearer test-token",
		},
		{
			name:       "wrong password",
			body:       `{"username":"alice","password":"password2"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown user",
			body:       `{"username":"mallory","password":"password1"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing password",
			body:       `{"username":"alice"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed body",
			body:       `{"username":`,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var tokenFor string
			jwtService := &mocks.MockJWTService{
				GenerateTokenFn: func(ctx context.Context, username string) (string, error) {
					tokenFor = username
					return "test-token", nil
				},
			}
			handler := NewAuthHandler(newLoginUserStore(t), jwtService, &mocks.MockPasswordHasher{})

			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler.Login(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantHeader, rr.Header().Get("Authorization"))

			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "alice", tokenFor, "token subject is the username")
				var resp LoginResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "alice", resp.Username)
			} else {
				assert.Empty(t, tokenFor, "no token for failed login")
				var resp map[string]interface{}
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "Invalid credentials", resp["error"])
			}
		})
	}
}

func TestLogin_VerifierReceivesStoredHash(t *testing.T) {
	t.Parallel()

	verifier := &mocks.MockPasswordVerifier{ShouldSucceed: true}
	handler := NewAuthHandler(newLoginUserStore(t), &mocks.MockJWTService{Token: "tok"}, verifier)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{"username":"alice","password":"pw"}`))
	rr := httptest.NewRecorder()
	handler.Login(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, verifier.CompareCallCount)
	assert.Equal(t, mocks.HashPrefix+"password1", verifier.CompareCalledWith.HashedPassword)
	assert.Equal(t, "pw", verifier.CompareCalledWith.Password)
}

func TestLogin_Failures(t *testing.T) {
	t.Parallel()

	t.Run("user store error", func(t *testing.T) {
		t.Parallel()
		userStore := mocks.NewMockUserStore()
		userStore.GetByUsernameFn = func(ctx context.Context, username string) (*domain.User, error) {
			return nil, errors.New("connection refused")
		}
		handler := NewAuthHandler(userStore, &mocks.MockJWTService{Token: "tok"}, &mocks.MockPasswordHasher{})

		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{"username":"alice","password":"password1"}`))
		rr := httptest.NewRecorder()
		handler.Login(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Empty(t, rr.Header().Get("Authorization"))
	})

	t.Run("token generation error", func(t *testing.T) {
		t.Parallel()
		handler := NewAuthHandler(newLoginUserStore(t), &mocks.MockJWTService{Err: errors.New("signing failed")}, &mocks.MockPasswordHasher{})

		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{"username":"alice","password":"password1"}`))
		rr := httptest.NewRecorder()
		handler.Login(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), "Failed to generate authentication token")
	})
}

func TestLogin_WithRealTokens(t *testing.T) {
	t.Parallel()

	jwtService, err := auth.NewJWTService(testAuthConfig())
	require.NoError(t, err)
	handler := NewAuthHandler(newLoginUserStore(t), jwtService, &mocks.MockPasswordHasher{})

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{"username":"alice","password":"password1"}`))
	rr := httptest.NewRecorder()
	handler.Login(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	header := rr.Header().Get("Authorization")
	require.Greater(t, len(header), len("Bearer "))

	claims, err := jwtService.ValidateToken(context.Background(), header[len("Bearer "):])
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
}
