package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/zeevo-shop/zeevo-edge/internal/session"
	"github.com/zeevo-shop/zeevo-edge/internal/verify"
	"github.com/zeevo-shop/zeevo-edge/pkg/auth"
	"github.com/zeevo-shop/zeevo-edge/pkg/backend"
	"github.com/zeevo-shop/zeevo-edge/pkg/config"
	"github.com/zeevo-shop/zeevo-edge/pkg/types"
)

func newVerifyService(t *testing.T, upstream *httptest.Server, profiles session.ProfileStore) *verify.Service {
	t.Helper()
	client, err := backend.New(config.UpstreamConfig{BaseURL: upstream.URL})
	if err != nil {
		t.Fatalf("failed to build backend client: %v", err)
	}
	svc, err := verify.NewService(client, profiles, testJWTConfig(), nil)
	if err != nil {
		t.Fatalf("failed to build verify service: %v", err)
	}
	return svc
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "zeevo-api",
		ExpirationMinutes: 60,
	}
}

func TestVerifyMagicTokenSeedsProfile(t *testing.T) {
	sessionToken, err := auth.MintSessionToken(testJWTConfig(), time.Now(), auth.SessionClaims{
		UserID:   "user-1",
		Email:    "owner@acme.shop",
		Name:     "Acme Owner",
		Role:     "owner",
		Verified: true,
	})
	if err != nil {
		t.Fatalf("failed to mint session token: %v", err)
	}

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/user/verify-magic-token" {
			t.Fatalf("unexpected upstream path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]string{"token": sessionToken}})
	}))
	defer upstream.Close()

	profiles := session.NewMemoryProfileStore()
	handler := VerifyMagicToken(newVerifyService(t, upstream, profiles), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/verify/magic-token", strings.NewReader(`{"token":"magic-123"}`))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 but got %d: %s", w.Code, w.Body.String())
	}

	var envelope struct {
		Data verify.MagicTokenResult `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}
	if envelope.Data.Token != sessionToken {
		t.Fatalf("expected upstream session token in response")
	}
	if envelope.Data.Profile.Email != "owner@acme.shop" {
		t.Fatalf("unexpected profile email %q", envelope.Data.Profile.Email)
	}

	stored, err := profiles.Get(req.Context(), envelope.Data.SessionID)
	if err != nil {
		t.Fatalf("failed to read profile store: %v", err)
	}
	if stored == nil || stored.ID != "user-1" {
		t.Fatalf("expected seeded profile for user-1, got %+v", stored)
	}
}

func TestVerifyMagicTokenPassesUpstreamMessageThrough(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"magic token expired"}}`))
	}))
	defer upstream.Close()

	handler := VerifyMagicToken(newVerifyService(t, upstream, session.NewMemoryProfileStore()), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/verify/magic-token", strings.NewReader(`{"token":"stale"}`))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 but got %d", w.Code)
	}

	var envelope types.ErrorEnvelope
	if err := json.NewDecoder(w.Body).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode error envelope: %v", err)
	}
	if envelope.Error.Message != "magic token expired" {
		t.Fatalf("expected literal upstream message but got %q", envelope.Error.Message)
	}
}

func TestVerifyMagicTokenRejectsEmptyBody(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("upstream should not be called for an invalid body")
	}))
	defer upstream.Close()

	handler := VerifyMagicToken(newVerifyService(t, upstream, session.NewMemoryProfileStore()), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/verify/magic-token", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 but got %d", w.Code)
	}
}

func TestVerifyPayoutAccountSuccess(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/user/verify-payout-account" {
			t.Fatalf("unexpected upstream path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"verified":true}}`))
	}))
	defer upstream.Close()

	handler := VerifyPayoutAccount(newVerifyService(t, upstream, session.NewMemoryProfileStore()), nil)

	body := `{"payoutAccountId":"pa-1","userId":"user-1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/verify/payout-account", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 but got %d: %s", w.Code, w.Body.String())
	}
}

func TestVerifyPayoutAccountPassesUpstreamMessageThrough(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"payout account already verified"}}`))
	}))
	defer upstream.Close()

	handler := VerifyPayoutAccount(newVerifyService(t, upstream, session.NewMemoryProfileStore()), nil)

	body := `{"payoutAccountId":"pa-1","userId":"user-1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/verify/payout-account", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 but got %d", w.Code)
	}

	var envelope types.ErrorEnvelope
	if err := json.NewDecoder(w.Body).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode error envelope: %v", err)
	}
	if envelope.Error.Message != "payout account already verified" {
		t.Fatalf("expected literal upstream message but got %q", envelope.Error.Message)
	}
}
