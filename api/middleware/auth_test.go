package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/zeevo-shop/zeevo-edge/pkg/auth"
	"github.com/zeevo-shop/zeevo-edge/pkg/config"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "zeevo-api",
		ExpirationMinutes: 60,
	}
}

func TestAuthSeedsIdentityFromBearerToken(t *testing.T) {
	cfg := testJWTConfig()
	token, err := auth.MintSessionToken(cfg, time.Now(), auth.SessionClaims{
		UserID: "user-1",
		Role:   "owner",
	})
	if err != nil {
		t.Fatalf("failed to mint token: %v", err)
	}

	var gotUser, gotRole, gotBearer string
	handler := Auth(cfg, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = UserIDFromContext(r.Context())
		gotRole = RoleFromContext(r.Context())
		gotBearer = BearerFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 but got %d", w.Code)
	}
	if gotUser != "user-1" {
		t.Fatalf("expected user-1 but got %q", gotUser)
	}
	if gotRole != "owner" {
		t.Fatalf("expected owner role but got %q", gotRole)
	}
	if gotBearer != token {
		t.Fatalf("expected raw token in context")
	}
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	handler := Auth(testJWTConfig(), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler should not run without credentials")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 but got %d", w.Code)
	}
}

func TestAuthRejectsForgedToken(t *testing.T) {
	forged := testJWTConfig()
	forged.Secret = "other-secret"
	token, err := auth.MintSessionToken(forged, time.Now(), auth.SessionClaims{UserID: "user-1"})
	if err != nil {
		t.Fatalf("failed to mint token: %v", err)
	}

	handler := Auth(testJWTConfig(), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler should not run with a forged token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 but got %d", w.Code)
	}
}

func TestCartIDMintsCookieWhenAbsent(t *testing.T) {
	cfg := config.CartConfig{CookieName: "zeevo_cart"}

	var gotCartID string
	handler := CartID(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCartID = CartIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if gotCartID == "" {
		t.Fatalf("expected a minted cart id")
	}

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "zeevo_cart" {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatalf("expected cart cookie to be set")
	}
	if cookie.Value != gotCartID {
		t.Fatalf("cookie %q does not match context cart id %q", cookie.Value, gotCartID)
	}
}

func TestCartIDReusesExistingCookie(t *testing.T) {
	cfg := config.CartConfig{CookieName: "zeevo_cart"}
	existing := "4a8c5be5-3f3f-4f57-9f7a-6f90a1a6d001"

	var gotCartID string
	handler := CartID(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCartID = CartIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.AddCookie(&http.Cookie{Name: "zeevo_cart", Value: existing})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if gotCartID != existing {
		t.Fatalf("expected existing cart id %q but got %q", existing, gotCartID)
	}
	if len(w.Result().Cookies()) != 0 {
		t.Fatalf("did not expect a new cookie when one already exists")
	}
}

func TestCartIDRejectsMalformedCookie(t *testing.T) {
	cfg := config.CartConfig{CookieName: "zeevo_cart"}

	var gotCartID string
	handler := CartID(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCartID = CartIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.AddCookie(&http.Cookie{Name: "zeevo_cart", Value: "not-a-uuid"})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if gotCartID == "not-a-uuid" {
		t.Fatalf("malformed cart cookie should be replaced")
	}
	if gotCartID == "" {
		t.Fatalf("expected a minted replacement cart id")
	}
}
