package middlewares

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"storefront-server/services/store-api/internal/domain"
)

func runGate(t *testing.T, principal *domain.Principal) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/api", nil)
	if principal != nil {
		ctx.Set(principalContextKey, *principal)
	}

	RequireRole("admin")(ctx)
	return w
}

func TestGateUnauthenticated(t *testing.T) {
	w := runGate(t, nil)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "Unauthorized" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestGateWrongRoleIsForbiddenNeverUnauthorized(t *testing.T) {
	w := runGate(t, &domain.Principal{AccountID: 2, Username: "bob", Role: "user"})

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "Forbidden" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestGateCorrectRoleAllows(t *testing.T) {
	w := runGate(t, &domain.Principal{AccountID: 1, Username: "alice", Role: "admin"})

	// The gate must neither write a denial nor abort.
	if w.Code == http.StatusUnauthorized || w.Code == http.StatusForbidden {
		t.Fatalf("admin principal was denied with %d", w.Code)
	}
}

// Identity is checked before role: a request with no principal but an
// admin-looking role claim elsewhere still gets 401, never 403.
func TestGateOrderingAnonymousAlwaysUnauthorized(t *testing.T) {
	w := runGate(t, &domain.Principal{AccountID: 0, Role: "admin"})

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for empty identity, got %d", w.Code)
	}
}
