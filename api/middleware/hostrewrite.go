package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/zeevo-shop/zeevo-edge/pkg/config"
	"github.com/zeevo-shop/zeevo-edge/pkg/logger"
	"github.com/zeevo-shop/zeevo-edge/pkg/metrics"
)

// HostRewriter maps tenant subdomains onto the canonical store-scoped path.
// A request for acme.zeevo.shop/red-shoes becomes /store/acme/red-shoes
// before routing; everything else passes through untouched. The decision is
// a pure function of (host, path, config) and runs before any other
// request handling.
type HostRewriter struct {
	mainHosts    map[string]struct{}
	skipPrefixes []string
}

// NewHostRewriter builds the rewriter from hosting configuration.
func NewHostRewriter(cfg config.HostingConfig) *HostRewriter {
	mains := make(map[string]struct{}, len(cfg.MainHosts))
	for _, host := range cfg.MainHosts {
		host = strings.ToLower(strings.TrimSpace(host))
		if host != "" {
			mains[host] = struct{}{}
		}
	}
	return &HostRewriter{
		mainHosts:    mains,
		skipPrefixes: cfg.SkipPrefixes,
	}
}

// Rewrite returns the store-scoped path for a tenant request, or ok=false
// when the request must pass through unchanged.
func (h *HostRewriter) Rewrite(host, path string) (string, bool) {
	hostname := stripPort(strings.ToLower(host))

	// The allow-list wins over every path heuristic.
	if _, ok := h.mainHosts[hostname]; ok {
		return "", false
	}

	for _, prefix := range h.skipPrefixes {
		if strings.HasPrefix(path, prefix) {
			return "", false
		}
	}

	if looksLikeAssetPath(path) {
		return "", false
	}

	subdomain, _, found := strings.Cut(hostname, ".")
	if !found || subdomain == "" {
		return "", false
	}

	return "/store/" + subdomain + path, true
}

// Middleware applies the rewrite decision to the request path.
func (h *HostRewriter) Middleware(logg *logger.Logger, m *metrics.HTTPMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rewritten, ok := h.Rewrite(r.Host, r.URL.Path)
			if !ok {
				m.IncRewrite("passthrough")
				next.ServeHTTP(w, r)
				return
			}

			m.IncRewrite("rewritten")
			ctx := r.Context()
			if logg != nil {
				ctx = logg.WithFields(ctx, map[string]any{
					"rewritten_from": r.URL.Path,
					"rewritten_to":   rewritten,
				})
			}

			r2 := r.Clone(ctx)
			r2.URL.Path = rewritten
			r2.URL.RawPath = ""
			next.ServeHTTP(w, r2)
		})
	}
}

// looksLikeAssetPath is the coarse static-asset heuristic: any path
// containing a dot is treated as a file request, so dotted product slugs
// are never rewritten.
func looksLikeAssetPath(path string) bool {
	return strings.Contains(path, ".")
}

func stripPort(host string) string {
	if !strings.Contains(host, ":") {
		return host
	}
	if hostname, _, err := net.SplitHostPort(host); err == nil {
		return hostname
	}
	return host
}
