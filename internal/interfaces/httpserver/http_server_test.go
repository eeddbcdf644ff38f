package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"storefront-server/services/store-api/internal/config"
	"storefront-server/services/store-api/internal/domain/account"
	domainauth "storefront-server/services/store-api/internal/domain/auth"
	"storefront-server/services/store-api/internal/domain/product"
	"storefront-server/services/store-api/internal/infrastructure"
	"storefront-server/services/store-api/internal/infrastructure/oauth"
	"storefront-server/services/store-api/internal/infrastructure/session"
	"storefront-server/services/store-api/internal/interfaces/httpserver/handlers/authhandler"
	"storefront-server/services/store-api/internal/interfaces/httpserver/handlers/producthandler"
	"storefront-server/services/store-api/internal/interfaces/httpserver/routes/api"
	authroute "storefront-server/services/store-api/internal/interfaces/httpserver/routes/auth"
	v1 "storefront-server/services/store-api/internal/interfaces/httpserver/routes/v1"
	productroute "storefront-server/services/store-api/internal/interfaces/httpserver/routes/v1/product"
	"storefront-server/services/store-api/internal/utils/crypto"
)

type memAccountRepo struct {
	nextID   uint
	accounts map[uint]*account.Account
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{nextID: 1, accounts: make(map[uint]*account.Account)}
}

func (m *memAccountRepo) FindByUsername(_ context.Context, username string) (*account.Account, error) {
	for _, acct := range m.accounts {
		if acct.Username == username {
			return acct, nil
		}
	}
	return nil, nil
}

func (m *memAccountRepo) FindByID(_ context.Context, id uint) (*account.Account, error) {
	acct, ok := m.accounts[id]
	if !ok {
		return nil, nil
	}
	return acct, nil
}

func (m *memAccountRepo) Create(_ context.Context, acct *account.Account) (*account.Account, error) {
	acct.ID = m.nextID
	m.nextID++
	m.accounts[acct.ID] = acct
	return acct, nil
}

func (m *memAccountRepo) UpsertExternal(ctx context.Context, acct *account.Account) (*account.Account, error) {
	for _, existing := range m.accounts {
		if existing.AuthProvider == acct.AuthProvider && existing.Subject != nil && acct.Subject != nil && *existing.Subject == *acct.Subject {
			return existing, nil
		}
	}
	return m.Create(ctx, acct)
}

type memProductRepo struct {
	products []*product.Product
}

func (m *memProductRepo) ListActive(context.Context) ([]*product.Product, error) {
	return m.products, nil
}

func (m *memProductRepo) FindByID(_ context.Context, id uint) (*product.Product, error) {
	for _, p := range m.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (m *memProductRepo) Create(_ context.Context, p *product.Product) (*product.Product, error) {
	m.products = append(m.products, p)
	return p, nil
}

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := session.NewStore(client, "storeapi:session", time.Hour)

	cfg := &config.Config{
		SessionTTL:              time.Hour,
		SessionCookieName:       "store_session",
		APIRequiredRole:         "admin",
		DefaultRole:             "user",
		LoginRateLimitPerMinute: 1000,
	}

	repo := newMemAccountRepo()
	seedLocal(t, repo, "alice", "pw123", "admin")
	seedLocal(t, repo, "bob", "pw456", "user")
	accounts := account.NewService(repo)

	products := &memProductRepo{products: []*product.Product{
		{ID: 1, Name: "Mechanical Keyboard", Price: decimal.NewFromFloat(129.99), Active: true},
		{ID: 2, Name: "USB-C Dock", Price: decimal.NewFromFloat(189.00), Active: true},
	}}

	log := zerolog.Nop()
	registry := oauth.NewRegistry(cfg, log)
	infra := infrastructure.NewInfrastructure(nil, store, registry, log)

	localStrategy := domainauth.NewLocalPassword(accounts)
	delegated := domainauth.NewOAuth2Delegated(registry, accounts, cfg.DefaultRole)

	localHandler := authhandler.NewLocalHandler(localStrategy, store, cfg, log)
	oauthHandler := authhandler.NewOAuthHandler(registry, delegated, store, cfg, log)
	productHandler := producthandler.NewHandler(product.NewService(products))

	server := NewHttpServer(
		authroute.NewAuthRoute(localHandler, oauthHandler, cfg),
		api.NewAPIRoute(cfg),
		v1.NewV1Route(productroute.NewProductRoute(productHandler)),
		accounts,
		infra,
		cfg,
	)
	server.RegisterRoutes()
	return server
}

func seedLocal(t *testing.T, repo *memAccountRepo, username, password, role string) {
	t.Helper()
	hash, err := crypto.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if _, err := repo.Create(context.Background(), &account.Account{
		Username:     username,
		PasswordHash: &hash,
		Role:         role,
		AuthProvider: "local",
	}); err != nil {
		t.Fatalf("seed account: %v", err)
	}
}

func doLogin(t *testing.T, server *HTTPServer, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	server.engine.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "store_session" && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatalf("no session cookie in response")
	return nil
}

func getAPI(server *HTTPServer, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	server.engine.ServeHTTP(rec, req)
	return rec
}

func TestLoginIssuesSessionAndGrantsAccess(t *testing.T) {
	server := newTestServer(t)

	rec := doLogin(t, server, "alice", "pw123")
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d: %s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "/api" {
		t.Fatalf("expected redirect to /api, got %q", loc)
	}

	cookie := sessionCookie(t, rec)
	apiRec := getAPI(server, cookie)
	if apiRec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", apiRec.Code, apiRec.Body.String())
	}

	var body map[string]string
	if err := json.Unmarshal(apiRec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["data"] != "secret information" {
		t.Fatalf("unexpected payload: %v", body)
	}
}

func TestLoginFailureIsUniform(t *testing.T) {
	server := newTestServer(t)

	wrongPassword := doLogin(t, server, "alice", "nope")
	unknownUser := doLogin(t, server, "mallory", "nope")

	if wrongPassword.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: expected 401, got %d", wrongPassword.Code)
	}
	if unknownUser.Code != http.StatusUnauthorized {
		t.Fatalf("unknown user: expected 401, got %d", unknownUser.Code)
	}
	if wrongPassword.Body.String() != unknownUser.Body.String() {
		t.Fatalf("failure responses differ: %q vs %q", wrongPassword.Body.String(), unknownUser.Body.String())
	}
	for _, cookie := range wrongPassword.Result().Cookies() {
		if cookie.Name == "store_session" && cookie.Value != "" {
			t.Fatalf("failed login must not issue a session")
		}
	}
}

func TestLoginMissingFieldsIsBadRequest(t *testing.T) {
	server := newTestServer(t)

	rec := doLogin(t, server, "alice", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestProtectedRouteWithoutSession(t *testing.T) {
	server := newTestServer(t)

	rec := getAPI(server, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if rec.Body.String() != `{"error":"Unauthorized"}` {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestProtectedRouteWrongRole(t *testing.T) {
	server := newTestServer(t)

	rec := doLogin(t, server, "bob", "pw456")
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}

	apiRec := getAPI(server, sessionCookie(t, rec))
	if apiRec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", apiRec.Code, apiRec.Body.String())
	}
	if apiRec.Body.String() != `{"error":"Forbidden"}` {
		t.Fatalf("unexpected body: %s", apiRec.Body.String())
	}
}

func TestStaleSessionIsUnauthenticated(t *testing.T) {
	server := newTestServer(t)

	// Session referencing an account that no longer exists.
	token, err := server.infra.Sessions.Create(context.Background(), 999)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	rec := getAPI(server, &http.Cookie{Name: "store_session", Value: token})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for stale session, got %d", rec.Code)
	}
}

func TestLogoutInvalidatesSession(t *testing.T) {
	server := newTestServer(t)

	cookie := sessionCookie(t, doLogin(t, server, "alice", "pw123"))

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	server.engine.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	apiRec := getAPI(server, cookie)
	if apiRec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", apiRec.Code)
	}
}

func TestProductListingIsPublic(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
	rec := httptest.NewRecorder()
	server.engine.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Products []producthandler.ProductResponse `json:"products"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(body.Products))
	}
	if body.Products[0].Price != "129.99" {
		t.Fatalf("unexpected price: %s", body.Products[0].Price)
	}

	missing := httptest.NewRequest(http.MethodGet, "/v1/products/999", nil)
	missingRec := httptest.NewRecorder()
	server.engine.ServeHTTP(missingRec, missing)
	if missingRec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", missingRec.Code)
	}
}

func TestUnknownOAuthProvider(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/missing", nil)
	rec := httptest.NewRecorder()
	server.engine.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown provider, got %d", rec.Code)
	}
}

func TestHealthEndpoints(t *testing.T) {
	server := newTestServer(t)

	for _, path := range []string{"/healthz", "/readyz", "/v1/healthz", "/v1/readyz"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		server.engine.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}
