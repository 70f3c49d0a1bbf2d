package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "zeevo"

	AppEnvDev  = "development"
	AppEnvProd = "production"
)

type Config struct {
	App        AppConfig
	Upstream   UpstreamConfig
	Hosting    HostingConfig
	Storefront StorefrontConfig
	Cart       CartConfig
	Redis      RedisConfig
	DB         DBConfig
	JWT        JWTConfig
	CORS       CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Upstream.validate(); err != nil {
		return nil, err
	}
	if err := cfg.Cart.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"ZEEVO_APP_ENV" required:"true"`
	Port         string `envconfig:"ZEEVO_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"ZEEVO_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ZEEVO_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// UpstreamConfig points the edge at the commerce backend API.
type UpstreamConfig struct {
	BaseURL string `envconfig:"ZEEVO_UPSTREAM_BASE_URL" required:"true"`
	// Timeout of zero means no client-side deadline; a hung upstream call
	// leaves the caller waiting, matching the legacy front-end behavior.
	Timeout time.Duration `envconfig:"ZEEVO_UPSTREAM_TIMEOUT" default:"0"`
}

func (u UpstreamConfig) validate() error {
	parsed, err := url.Parse(u.BaseURL)
	if err != nil {
		return fmt.Errorf("parsing upstream base url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("upstream base url %q must be absolute", u.BaseURL)
	}
	return nil
}

// HostingConfig drives the host-to-tenant rewrite.
type HostingConfig struct {
	// MainHosts are served as-is and never rewritten to a tenant path.
	MainHosts []string `envconfig:"ZEEVO_MAIN_HOSTS" default:"zeevo.shop,www.zeevo.shop,localhost"`
	// RootDomain is the suffix under which tenant subdomains live, and the
	// fallback base for absolutizing tenant asset URLs.
	RootDomain string `envconfig:"ZEEVO_ROOT_DOMAIN" default:"zeevo.shop"`
	// SkipPrefixes are internal paths the rewriter must leave alone.
	SkipPrefixes []string `envconfig:"ZEEVO_SKIP_PREFIXES" default:"/api,/store,/assets,/health,/metrics,/sitemap.xml"`
}

// StorefrontConfig carries the defaults used when a store record is missing
// or comes back with holes.
type StorefrontConfig struct {
	FallbackTitle       string `envconfig:"ZEEVO_FALLBACK_TITLE" default:"Online Store"`
	FallbackDescription string `envconfig:"ZEEVO_FALLBACK_DESCRIPTION" default:"Welcome to our online store. Discover quality products at great prices."`
	PlaceholderLogo     string `envconfig:"ZEEVO_PLACEHOLDER_LOGO" default:"/assets/placeholder-logo.png"`
}

// CartRemoveScope selects how RemoveItem matches entries.
type CartRemoveScope string

const (
	// RemoveScopeID removes every entry with the id, across stores. This is
	// the legacy contract and the default.
	RemoveScopeID CartRemoveScope = "id"
	// RemoveScopeIDStore removes only the (id, storeId) entry.
	RemoveScopeIDStore CartRemoveScope = "id_store"
)

type CartConfig struct {
	// Backend picks the cart persistence adapter: redis, database or memory.
	Backend     string          `envconfig:"ZEEVO_CART_BACKEND" default:"redis"`
	RemoveScope CartRemoveScope `envconfig:"ZEEVO_CART_REMOVE_SCOPE" default:"id"`
	CookieName  string          `envconfig:"ZEEVO_CART_COOKIE" default:"zeevo_cart"`
}

func (c CartConfig) validate() error {
	switch c.Backend {
	case "redis", "database", "memory":
	default:
		return fmt.Errorf("unknown cart backend %q", c.Backend)
	}
	switch c.RemoveScope {
	case RemoveScopeID, RemoveScopeIDStore:
	default:
		return fmt.Errorf("unknown cart remove scope %q", c.RemoveScope)
	}
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"ZEEVO_REDIS_URL"`
	Address      string        `envconfig:"ZEEVO_REDIS_ADDR"`
	Password     string        `envconfig:"ZEEVO_REDIS_PASSWORD"`
	DB           int           `envconfig:"ZEEVO_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"ZEEVO_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"ZEEVO_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"ZEEVO_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"ZEEVO_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"ZEEVO_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type DBConfig struct {
	DSN    string `envconfig:"ZEEVO_DB_DSN"`
	Driver string `envconfig:"ZEEVO_DB_DRIVER" default:"sqlite"`

	MaxOpenConns    int           `envconfig:"ZEEVO_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"ZEEVO_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"ZEEVO_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"ZEEVO_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// JWTConfig verifies session tokens minted by the backend. The edge never
// issues tokens; it only checks the shared-secret signature.
type JWTConfig struct {
	Secret            string `envconfig:"ZEEVO_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"ZEEVO_JWT_ISSUER" default:"zeevo-api"`
	ExpirationMinutes int    `envconfig:"ZEEVO_JWT_EXPIRATION_MINUTES" default:"1440"`
}

// SessionTTL mirrors the upstream token lifetime for profile storage.
func (j JWTConfig) SessionTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"ZEEVO_CORS_ORIGINS" default:"http://localhost:3000"`
}
