package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"

	"github.com/zeevo-shop/zeevo-edge/api/routes"
	"github.com/zeevo-shop/zeevo-edge/internal/cart"
	"github.com/zeevo-shop/zeevo-edge/internal/notifications"
	"github.com/zeevo-shop/zeevo-edge/internal/resolver"
	"github.com/zeevo-shop/zeevo-edge/internal/session"
	"github.com/zeevo-shop/zeevo-edge/internal/sitemap"
	"github.com/zeevo-shop/zeevo-edge/internal/verify"
	"github.com/zeevo-shop/zeevo-edge/pkg/backend"
	"github.com/zeevo-shop/zeevo-edge/pkg/config"
	"github.com/zeevo-shop/zeevo-edge/pkg/db"
	"github.com/zeevo-shop/zeevo-edge/pkg/logger"
	"github.com/zeevo-shop/zeevo-edge/pkg/metrics"
	"github.com/zeevo-shop/zeevo-edge/pkg/redis"

	"github.com/prometheus/client_golang/prometheus"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "edge"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "edge",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	upstream, err := backend.New(cfg.Upstream)
	if err != nil {
		logg.Error(context.Background(), "failed to build upstream client", err)
		os.Exit(1)
	}

	var closers []func() error

	var redisClient *redis.Client
	needsRedis := cfg.Cart.Backend == "redis"
	if cfg.Redis.URL != "" || cfg.Redis.Address != "" || needsRedis {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		closers = append(closers, redisClient.Close)
	}

	persister, dbClose, err := buildCartPersister(context.Background(), cfg, redisClient, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap cart persistence", err)
		os.Exit(1)
	}
	if dbClose != nil {
		closers = append(closers, dbClose)
	}

	cartSvc, err := cart.NewService(persister, cfg.Cart.RemoveScope)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	var profiles session.ProfileStore
	if redisClient != nil {
		profiles, err = session.NewRedisProfileStore(redisClient, cfg.JWT.SessionTTL())
		if err != nil {
			logg.Error(context.Background(), "failed to create profile store", err)
			os.Exit(1)
		}
	} else {
		profiles = session.NewMemoryProfileStore()
	}

	resolverSvc, err := resolver.NewService(upstream, cfg.Hosting, cfg.Storefront, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create resolver", err)
		os.Exit(1)
	}
	verifySvc, err := verify.NewService(upstream, profiles, cfg.JWT, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create verify service", err)
		os.Exit(1)
	}
	notifySvc, err := notifications.NewService(upstream, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create notifications service", err)
		os.Exit(1)
	}
	sitemapSvc, err := sitemap.NewService(upstream, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create sitemap service", err)
		os.Exit(1)
	}

	router := routes.NewRouter(routes.Deps{
		Config:        cfg,
		Logger:        logg,
		Metrics:       metrics.NewHTTPMetrics(prometheus.DefaultRegisterer),
		Upstream:      upstream,
		Resolver:      resolverSvc,
		Cart:          cartSvc,
		Verify:        verifySvc,
		Notifications: notifySvc,
		Sitemap:       sitemapSvc,
		Profiles:      profiles,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":          cfg.App.Env,
		"addr":         addr,
		"cart_backend": cfg.Cart.Backend,
	})
	logg.Info(ctx, "starting edge server")

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "edge server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var closeErr error
		closeErr = multierr.Append(closeErr, server.Shutdown(shutdownCtx))
		for _, closeFn := range closers {
			closeErr = multierr.Append(closeErr, closeFn())
		}
		if closeErr != nil {
			logg.Error(ctx, "shutdown finished with errors", closeErr)
			os.Exit(1)
		}
		logg.Info(ctx, "shutdown complete")
	}
}

// buildCartPersister wires the adapter named by ZEEVO_CART_BACKEND. The
// returned closer is non-nil only when the adapter owns a connection that
// the caller must release.
func buildCartPersister(ctx context.Context, cfg *config.Config, redisClient *redis.Client, logg *logger.Logger) (cart.Persister, func() error, error) {
	switch cfg.Cart.Backend {
	case "redis":
		p, err := cart.NewRedisPersister(redisClient)
		return p, nil, err
	case "database":
		dbClient, err := db.New(ctx, cfg.DB, logg)
		if err != nil {
			return nil, nil, err
		}
		p, err := cart.NewDBPersister(ctx, dbClient)
		if err != nil {
			return nil, nil, multierr.Append(err, dbClient.Close())
		}
		return p, dbClient.Close, nil
	default:
		return cart.NewMemoryPersister(), nil, nil
	}
}
