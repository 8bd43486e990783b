package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/storefront-api/internal/api"
	"github.com/phrazzld/storefront-api/internal/config"
	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 0, LogLevel: "error", ShutdownTimeoutSeconds: 1},
		Auth: config.AuthConfig{
			JWTSecret:            "test-secret-that-is-at-least-32-characters",
			TokenLifetimeMinutes: 60,
			BCryptCost:           4,
		},
		Bootstrap: config.BootstrapConfig{Enabled: true, AdminUsername: "admin", AdminPassword: "password"},
		CORS:      config.CORSConfig{AllowedOrigins: []string{"*"}},
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var roundWidget = domain.Item{
	ID:          uuid.MustParse("7a1c4f2e-5b0d-4c7e-9a1f-3d2e8b6c0001"),
	Name:        "Round Widget",
	Description: "A widget that is round",
	Price:       decimal.RequireFromString("21.45"),
}

// newTestApplication wires the real services and router over map-backed stores.
func newTestApplication(t *testing.T) (*application, *mocks.MockUserStore) {
	t.Helper()

	users := mocks.NewMockUserStore()
	stores := appStores{
		users:      users,
		items:      mocks.NewMockItemStore(roundWidget),
		carts:      mocks.NewMockCartStore(),
		orders:     mocks.NewMockOrderStore(),
		transactor: &mocks.MockTransactor{},
	}

	app, err := assembleApplication(testConfig(), quietLogger(), stores, &mocks.MockPasswordHasher{})
	require.NoError(t, err)
	return app, users
}

func serve(t *testing.T, h http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestAssembleApplicationRejectsShortSecret(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.JWTSecret = "short"

	_, err := assembleApplication(cfg, quietLogger(), appStores{}, &mocks.MockPasswordHasher{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize JWT service")
}

func TestHealthCheck(t *testing.T) {
	app, _ := newTestApplication(t)
	router := app.setupRouter()

	rr := serve(t, router, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", rr.Body.String())
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app, _ := newTestApplication(t)
	router := app.setupRouter()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/item"},
		{http.MethodGet, "/api/item/" + roundWidget.ID.String()},
		{http.MethodGet, "/api/item/name/Round%20Widget"},
		{http.MethodGet, "/api/user/alice"},
		{http.MethodGet, "/api/user/id/" + uuid.NewString()},
		{http.MethodPost, "/api/cart/addToCart"},
		{http.MethodPost, "/api/cart/removeFromCart"},
		{http.MethodPost, "/api/order/submit/alice"},
		{http.MethodGet, "/api/order/history/alice"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			rr := serve(t, router, route.method, route.path, "", "")
			assert.Equal(t, http.StatusUnauthorized, rr.Code)

			rr = serve(t, router, route.method, route.path, "", "not-a-jwt")
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestRegistrationIsPublic(t *testing.T) {
	app, users := newTestApplication(t)
	router := app.setupRouter()

	rr := serve(t, router, http.MethodPost, "/api/user/create",
		`{"username":"alice","password":"password1","confirmPassword":"password1"}`, "")

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Contains(t, users.Users, "alice")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app, _ := newTestApplication(t)
	router := app.setupRouter()

	rr := serve(t, router, http.MethodPost, "/login", `{"username":"nobody","password":"password1"}`, "")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Empty(t, rr.Header().Get("Authorization"))
}

func TestLoginTokenOpensProtectedRoutes(t *testing.T) {
	app, _ := newTestApplication(t)
	router := app.setupRouter()

	rr := serve(t, router, http.MethodPost, "/api/user/create",
		`{"username":"alice","password":"password1","confirmPassword":"password1"}`, "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = serve(t, router, http.MethodPost, "/login", `{"username":"alice","password":"password1"}`, "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	header := rr.Header().Get("Authorization")
	require.True(t, strings.HasPrefix(header, "Bearer "), "unexpected header %q", header)
	token := strings.TrimPrefix(header, "Bearer ")

	rr = serve(t, router, http.MethodGet, "/api/item", "", token)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = serve(t, router, http.MethodPost, "/api/cart/addToCart",
		`{"username":"alice","itemId":"`+roundWidget.ID.String()+`","quantity":2}`, token)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var cart api.CartResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &cart))
	assert.Len(t, cart.Items, 2)
	assert.True(t, decimal.RequireFromString("42.90").Equal(cart.Total), "total %s", cart.Total)

	rr = serve(t, router, http.MethodPost, "/api/order/submit/alice", "", token)
	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
}

func TestCORSExposesAuthorizationHeader(t *testing.T) {
	app, _ := newTestApplication(t)
	router := app.setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://shop.example.com")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Expose-Headers"), "Authorization")
}

func TestCORSPreflight(t *testing.T) {
	app, _ := newTestApplication(t)
	router := app.setupRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/cart/addToCart", nil)
	req.Header.Set("Origin", "http://shop.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestBootstrapAdmin(t *testing.T) {
	app, users := newTestApplication(t)
	cfg := app.config.Bootstrap

	require.NoError(t, bootstrapAdmin(context.Background(), app.bootstrapper, cfg))
	require.Contains(t, users.Users, "admin")
	firstID := users.Users["admin"].ID

	// A second start leaves the existing account alone.
	require.NoError(t, bootstrapAdmin(context.Background(), app.bootstrapper, cfg))
	assert.Equal(t, firstID, users.Users["admin"].ID)

	rr := serve(t, app.setupRouter(), http.MethodPost, "/login", `{"username":"admin","password":"password"}`, "")
	assert.Equal(t, http.StatusOK, rr.Code)
}
