package controllers

import (
	"net/http"

	"github.com/zeevo-shop/zeevo-edge/internal/sitemap"
	"github.com/zeevo-shop/zeevo-edge/pkg/logger"
)

// Sitemap proxies the upstream sitemap. A successful proxy is cacheable;
// the single-URL fallback is served without cache headers so crawlers retry
// once the upstream recovers.
func Sitemap(svc *sitemap.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")

		if svc != nil {
			if body, err := svc.Fetch(r.Context()); err == nil {
				w.Header().Set("Cache-Control", "public, max-age=3600, stale-while-revalidate=600")
				w.WriteHeader(http.StatusOK)
				w.Write(body)
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		w.Write(sitemap.Fallback(r.Host))
	}
}
