package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/example/artshop/pkg/config"
	"github.com/example/artshop/pkg/metrics"
	"github.com/example/artshop/pkg/models"
	"github.com/example/artshop/pkg/repository"
	"github.com/example/artshop/pkg/security"
	"github.com/example/artshop/pkg/service"
	"github.com/example/artshop/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type staticAudit struct{}

func (staticAudit) AuditTrail(_ context.Context, orderID string, limit int64) ([]*repository.AuditLog, error) {
	return []*repository.AuditLog{{Service: "order-service", Action: "create_order", EntityID: orderID, Data: map[string]interface{}{"limit": limit}}}, nil
}

type testEnv struct {
	gw     *Gateway
	admins *service.AdminService
	cfg    *config.Config
}

func testConfig() *config.Config {
	return &config.Config{
		Gateway: config.GatewayConfig{Host: "127.0.0.1", Port: 0},
		Auth: config.AuthConfig{
			JWTSecret:     "gateway-secret",
			JWTExpiration: time.Hour,
			FrontendURL:   "http://shop.test",
		},
	}
}

func newTestEnv(t *testing.T, cfg *config.Config, audit AuditReader) *testEnv {
	t.Helper()

	db := testutil.NewTestDB(t)
	tokens, err := security.NewTokenProvider(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiration)
	require.NoError(t, err)

	admins := service.NewAdminService(repository.NewAdminRepository(db), tokens, zap.NewNop())
	gw := NewGateway(cfg, Services{
		Orders: service.NewOrderService(repository.NewOrderRepository(db), zap.NewNop()),
		Audit:  audit,
		Auth:   service.NewAuthService(repository.NewUserRepository(db), tokens, zap.NewNop()),
		Admins: admins,

		Artworks:     service.NewArtworkService(repository.NewArtworkRepository(db), zap.NewNop()),
		Testimonials: service.NewTestimonialService(repository.NewTestimonialRepository(db), zap.NewNop()),
	}, metrics.New(), zap.NewNop())
	gw.SetupRoutes()

	return &testEnv{gw: gw, admins: admins, cfg: cfg}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if s, ok := body.(string); ok {
		reader = bytes.NewReader([]byte(s))
	} else if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	e.gw.Handler().ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

const sampleOrder = `{
  "customer_name": "Ana",
  "customer_email": "ana@example.com",
  "items": [
    {"artwork_id": "a-1", "price": "10.00", "quantity": 2},
    {"artwork_id": "a-2", "price": "5.50", "quantity": 1}
  ]
}`

func TestGateway_OrderLifecycle(t *testing.T) {
	env := newTestEnv(t, testConfig(), staticAudit{})

	w := env.do(t, http.MethodPost, "/api/v1/orders", sampleOrder)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[models.Order](t, w)
	assert.Equal(t, "25.5", created.TotalAmount.String())
	assert.Equal(t, models.OrderStatusPending, created.Status)
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))

	w = env.do(t, http.MethodGet, "/api/v1/orders/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[models.Order](t, w).Items, 2)

	w = env.do(t, http.MethodGet, "/api/v1/orders/customer/ana@example.com", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Order](t, w), 1)

	w = env.do(t, http.MethodGet, "/api/v1/orders/pending", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Order](t, w), 1)

	w = env.do(t, http.MethodPut, "/api/v1/orders/"+created.ID+"/status?status=delivered", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.OrderStatusDelivered, decode[models.Order](t, w).Status)

	w = env.do(t, http.MethodGet, "/api/v1/orders/status/DELIVERED", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Order](t, w), 1)

	w = env.do(t, http.MethodGet, "/api/v1/orders/completed", nil)
	assert.Len(t, decode[[]models.Order](t, w), 1)

	w = env.do(t, http.MethodGet, "/api/v1/orders/statistics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode[models.OrderStatistics](t, w)
	assert.Equal(t, int64(1), stats.CompletedOrders)
	assert.Equal(t, "25.5", stats.TotalRevenue.String())

	w = env.do(t, http.MethodPut, "/api/v1/orders/"+created.ID+"/cancel", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Cannot cancel a delivered order", decode[errorResponse](t, w).Error)

	w = env.do(t, http.MethodGet, "/api/v1/orders/"+created.ID+"/audit?limit=5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]repository.AuditLog](t, w), 1)

	w = env.do(t, http.MethodDelete, "/api/v1/orders/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestGateway_CancelAndListCancelled(t *testing.T) {
	env := newTestEnv(t, testConfig(), nil)

	created := decode[models.Order](t, env.do(t, http.MethodPost, "/api/v1/orders", sampleOrder))

	for i := 0; i < 2; i++ {
		w := env.do(t, http.MethodPut, "/api/v1/orders/"+created.ID+"/cancel", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, models.OrderStatusCancelled, decode[models.Order](t, w).Status)
	}

	w := env.do(t, http.MethodGet, "/api/v1/orders/cancelled", nil)
	assert.Len(t, decode[[]models.Order](t, w), 1)
}

func TestGateway_OrderErrors(t *testing.T) {
	env := newTestEnv(t, testConfig(), nil)

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
		code   int
		msg    string
	}{
		{"no items", http.MethodPost, "/api/v1/orders", `{"customer_email":"a@b.c","items":[]}`, http.StatusBadRequest, "Order must have at least one item"},
		{"missing price", http.MethodPost, "/api/v1/orders", `{"items":[{"quantity":1}]}`, http.StatusBadRequest, "Item price and quantity must not be null"},
		{"bad json", http.MethodPost, "/api/v1/orders", `{"items":`, http.StatusBadRequest, ""},
		{"unknown order", http.MethodGet, "/api/v1/orders/nope", nil, http.StatusNotFound, "Order not found with id: nope"},
		{"delete unknown", http.MethodDelete, "/api/v1/orders/nope", nil, http.StatusNotFound, "Order not found with id: nope"},
		{"cancel unknown", http.MethodPut, "/api/v1/orders/nope/cancel", nil, http.StatusNotFound, "Order not found with id: nope"},
		{"status missing", http.MethodPut, "/api/v1/orders/nope/status", nil, http.StatusBadRequest, "status query parameter is required"},
		{"status invalid", http.MethodPut, "/api/v1/orders/nope/status?status=LOST", nil, http.StatusBadRequest, `unknown order status "LOST"`},
		{"list invalid status", http.MethodGet, "/api/v1/orders/status/LOST", nil, http.StatusBadRequest, `unknown order status "LOST"`},
		{"audit disabled", http.MethodGet, "/api/v1/orders/x/audit", nil, http.StatusServiceUnavailable, "audit log is not enabled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.code, w.Code, w.Body.String())
			if tt.msg != "" {
				assert.Equal(t, tt.msg, decode[errorResponse](t, w).Error)
			}
		})
	}
}

type brokenOrders struct {
	OrderService
}

func (brokenOrders) GetAllOrders(context.Context) ([]models.Order, error) {
	return nil, errors.New("connection refused")
}

func TestGateway_InternalErrorHidesDetail(t *testing.T) {
	cfg := testConfig()
	gw := NewGateway(cfg, Services{Orders: brokenOrders{}}, nil, zap.NewNop())
	gw.SetupRoutes()

	w := httptest.NewRecorder()
	gw.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", decode[errorResponse](t, w).Error)
}

func TestGateway_AuditLimitValidation(t *testing.T) {
	env := newTestEnv(t, testConfig(), staticAudit{})

	w := env.do(t, http.MethodGet, "/api/v1/orders/o-1/audit?limit=0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/orders/o-1/audit?limit=100000", nil)
	require.Equal(t, http.StatusOK, w.Code)
	logs := decode[[]repository.AuditLog](t, w)
	assert.EqualValues(t, maxAuditLimit, logs[0].Data["limit"])
}

func TestGateway_Auth(t *testing.T) {
	env := newTestEnv(t, testConfig(), nil)
	account := map[string]string{"name": "Ana", "email": "ana@example.com", "password": "secret1"}

	w := env.do(t, http.MethodPost, "/api/v1/auth/register", account)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.True(t, decode[apiResponse](t, w).Success)

	w = env.do(t, http.MethodPost, "/api/v1/auth/signup", account)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User already exists with this email", decode[apiResponse](t, w).Message)

	w = env.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{"email": "ana@example.com", "password": "nope!!"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password", decode[apiResponse](t, w).Message)

	w = env.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{"email": "ana@example.com", "password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Data service.LoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.Data.Token)

	w = env.do(t, http.MethodGet, "/api/v1/auth/me", nil, "Authorization", "Bearer "+login.Data.Token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ana@example.com")

	w = env.do(t, http.MethodGet, "/api/v1/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodPost, "/api/v1/auth/logout", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGateway_AdminLogin(t *testing.T) {
	env := newTestEnv(t, testConfig(), nil)
	_, err := env.admins.CreateAdmin(context.Background(), "Root", "root@example.com", "rootpass")
	require.NoError(t, err)

	w := env.do(t, http.MethodPost, "/api/v1/admin/login", map[string]string{"email": "root@example.com", "password": "rootpass"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[service.AdminLoginResponse](t, w)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "root@example.com", resp.Admin.Email)
	assert.NotContains(t, w.Body.String(), "password")

	w = env.do(t, http.MethodPost, "/api/v1/admin/login", map[string]string{"email": "root@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password", decode[errorResponse](t, w).Error)

	w = env.do(t, http.MethodPost, "/api/v1/admin/login", map[string]string{"email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGateway_HealthAndMetrics(t *testing.T) {
	env := newTestEnv(t, testConfig(), nil)

	w := env.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	env.do(t, http.MethodGet, "/api/v1/orders", nil)
	w = env.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `artshop_http_request_duration_seconds_count{method="GET",route="/api/v1/orders",status="200"}`)
}

func TestGateway_RequestIDPropagation(t *testing.T) {
	env := newTestEnv(t, testConfig(), nil)

	w := env.do(t, http.MethodGet, "/health", nil, requestIDHeader, "abc-123")
	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
}

// fakeGoogle serves the token and userinfo endpoints.
func fakeGoogle(t *testing.T, email string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil || r.Form.Get("code") != "good-code" {
			http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"provider-token","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer provider-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"sub": "g-1", "name": "Gus", "email": email, "picture": "http://img"})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newOAuthEnv(t *testing.T, email string) *testEnv {
	t.Helper()
	cfg := testConfig()
	cfg.Auth.Google = config.OAuthClient{ClientID: "client", ClientSecret: "secret", RedirectURL: "http://api.test/login/oauth2/code/google"}
	env := newTestEnv(t, cfg, nil)

	provider := fakeGoogle(t, email)
	env.gw.oauth.config.Endpoint.AuthURL = provider.URL + "/auth"
	env.gw.oauth.config.Endpoint.TokenURL = provider.URL + "/token"
	env.gw.oauth.userInfoURL = provider.URL + "/userinfo"
	return env
}

func TestGateway_GoogleLogin(t *testing.T) {
	env := newOAuthEnv(t, "gus@example.com")

	w := env.do(t, http.MethodGet, "/oauth2/authorization/google", nil)
	require.Equal(t, http.StatusFound, w.Code)
	location, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	state := location.Query().Get("state")
	require.NotEmpty(t, state)
	assert.Equal(t, "client", location.Query().Get("client_id"))

	cookie := oauthStateCookie + "=" + state
	w = env.do(t, http.MethodGet, "/login/oauth2/code/google?code=good-code&state="+state, nil, "Cookie", cookie)
	require.Equal(t, http.StatusFound, w.Code)

	redirect, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/auth/success", redirect.Path)
	assert.Equal(t, "gus@example.com", redirect.Query().Get("email"))
	assert.Equal(t, "Gus", redirect.Query().Get("name"))
	token := redirect.Query().Get("token")
	require.NotEmpty(t, token)

	w = env.do(t, http.MethodGet, "/api/v1/auth/me", nil, "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGateway_GoogleLoginFailures(t *testing.T) {
	env := newOAuthEnv(t, "gus@example.com")
	failure := "http://shop.test/login?error=google_auth_failed"

	w := env.do(t, http.MethodGet, "/login/oauth2/code/google?code=good-code&state=abc", nil, "Cookie", oauthStateCookie+"=other")
	assert.Equal(t, failure, w.Header().Get("Location"))

	w = env.do(t, http.MethodGet, "/login/oauth2/code/google?code=bad-code&state=abc", nil, "Cookie", oauthStateCookie+"=abc")
	assert.Equal(t, failure, w.Header().Get("Location"))

	w = env.do(t, http.MethodGet, "/login/oauth2/code/google?error=access_denied&state=abc", nil, "Cookie", oauthStateCookie+"=abc")
	assert.Equal(t, failure, w.Header().Get("Location"))

	noEmail := newOAuthEnv(t, "")
	w = noEmail.do(t, http.MethodGet, "/login/oauth2/code/google?code=good-code&state=abc", nil, "Cookie", oauthStateCookie+"=abc")
	assert.True(t, strings.HasSuffix(w.Header().Get("Location"), "error=google_auth_failed"))
}

func TestGateway_GoogleNotConfigured(t *testing.T) {
	env := newTestEnv(t, testConfig(), nil)

	w := env.do(t, http.MethodGet, "/oauth2/authorization/google", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
