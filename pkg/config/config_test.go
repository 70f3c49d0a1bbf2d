package config

import (
	"testing"
	"time"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ZEEVO_APP_ENV", "development")
	t.Setenv("ZEEVO_APP_PORT", "8080")
	t.Setenv("ZEEVO_UPSTREAM_BASE_URL", "https://api.zeevo.shop")
	t.Setenv("ZEEVO_JWT_SECRET", "test-secret")
}

func TestLoadDefaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !cfg.App.IsDev() {
		t.Fatal("expected dev environment")
	}
	if cfg.Hosting.RootDomain != "zeevo.shop" {
		t.Fatalf("unexpected root domain %q", cfg.Hosting.RootDomain)
	}
	if len(cfg.Hosting.MainHosts) != 3 {
		t.Fatalf("unexpected main hosts %v", cfg.Hosting.MainHosts)
	}
	if cfg.Cart.Backend != "redis" {
		t.Fatalf("unexpected cart backend %q", cfg.Cart.Backend)
	}
	if cfg.Cart.RemoveScope != RemoveScopeID {
		t.Fatalf("unexpected remove scope %q", cfg.Cart.RemoveScope)
	}
	if cfg.Upstream.Timeout != 0 {
		t.Fatalf("expected no upstream timeout, got %s", cfg.Upstream.Timeout)
	}
}

func TestLoadRejectsRelativeUpstream(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("ZEEVO_UPSTREAM_BASE_URL", "api.zeevo.shop/v1")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for schemeless upstream url")
	}
}

func TestLoadRejectsUnknownCartBackend(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("ZEEVO_CART_BACKEND", "scrolls")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown cart backend")
	}
}

func TestLoadRejectsUnknownRemoveScope(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("ZEEVO_CART_REMOVE_SCOPE", "everything")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown remove scope")
	}
}

func TestSessionTTL(t *testing.T) {
	cfg := JWTConfig{ExpirationMinutes: 90}
	if got := cfg.SessionTTL(); got != 90*time.Minute {
		t.Fatalf("unexpected ttl %s", got)
	}
	if got := (JWTConfig{}).SessionTTL(); got != 0 {
		t.Fatalf("expected zero ttl, got %s", got)
	}
}
