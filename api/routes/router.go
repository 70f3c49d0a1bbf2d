package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zeevo-shop/zeevo-edge/api/controllers"
	"github.com/zeevo-shop/zeevo-edge/api/middleware"
	"github.com/zeevo-shop/zeevo-edge/internal/cart"
	"github.com/zeevo-shop/zeevo-edge/internal/notifications"
	"github.com/zeevo-shop/zeevo-edge/internal/resolver"
	"github.com/zeevo-shop/zeevo-edge/internal/session"
	"github.com/zeevo-shop/zeevo-edge/internal/sitemap"
	"github.com/zeevo-shop/zeevo-edge/internal/verify"
	"github.com/zeevo-shop/zeevo-edge/pkg/backend"
	"github.com/zeevo-shop/zeevo-edge/pkg/config"
	"github.com/zeevo-shop/zeevo-edge/pkg/logger"
	"github.com/zeevo-shop/zeevo-edge/pkg/metrics"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Config        *config.Config
	Logger        *logger.Logger
	Metrics       *metrics.HTTPMetrics
	Upstream      *backend.Client
	Resolver      *resolver.Service
	Cart          *cart.Service
	Verify        *verify.Service
	Notifications *notifications.Service
	Sitemap       *sitemap.Service
	Profiles      session.ProfileStore
}

// NewRouter builds the HTTP surface. The host rewriter wraps the whole
// router so tenant subdomains are rewritten before any route matching.
func NewRouter(d Deps) http.Handler {
	cfg := d.Config
	logg := d.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
		middleware.Metrics(d.Metrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, d.Upstream, d.Cart, logg))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Get("/sitemap.xml", controllers.Sitemap(d.Sitemap, logg))

	// Tenant page routes, reached directly or via the host rewrite.
	r.Route("/store/{identifier}", func(r chi.Router) {
		r.Get("/", controllers.GetStore(d.Resolver, cfg.Storefront, logg))
		r.Get("/product/{id}", controllers.GetProduct(d.Resolver, cfg.Storefront, logg))
		// Any other sub-path serves the store shell; the client routes it.
		r.Get("/*", controllers.GetStore(d.Resolver, cfg.Storefront, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/store/{identifier}", controllers.GetStore(d.Resolver, cfg.Storefront, logg))
		r.Get("/product/{id}", controllers.GetProduct(d.Resolver, cfg.Storefront, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Use(middleware.CartID(cfg.Cart))
			r.Get("/", controllers.GetCart(d.Cart, logg))
			r.Delete("/", controllers.ClearCart(d.Cart, logg))
			r.Post("/items", controllers.AddCartItem(d.Cart, logg))
			r.Delete("/items/{id}", controllers.RemoveCartItem(d.Cart, logg))
		})

		r.Route("/verify", func(r chi.Router) {
			r.Post("/magic-token", controllers.VerifyMagicToken(d.Verify, logg))
			r.Post("/payout-account", controllers.VerifyPayoutAccount(d.Verify, logg))
		})

		r.Route("/me", func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, logg))
			r.Get("/", controllers.GetProfile(d.Profiles, logg))
			r.Delete("/", controllers.Logout(d.Profiles, logg))
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, logg))
			r.Get("/", controllers.ListNotifications(d.Notifications, logg))
			r.Patch("/{id}/read", controllers.MarkNotificationRead(d.Notifications, logg))
			r.Post("/read-all", controllers.MarkAllNotificationsRead(d.Notifications, logg))
		})
	})

	rewriter := middleware.NewHostRewriter(cfg.Hosting)
	return rewriter.Middleware(logg, d.Metrics)(r)
}
