package sitemap

import (
	"context"
	"fmt"

	"github.com/zeevo-shop/zeevo-edge/pkg/logger"
)

type upstreamClient interface {
	Sitemap(ctx context.Context) ([]byte, error)
}

// Service proxies the backend-generated sitemap and produces the minimal
// fallback document when the backend cannot supply one.
type Service struct {
	client upstreamClient
	logg   *logger.Logger
}

func NewService(client upstreamClient, logg *logger.Logger) (*Service, error) {
	if client == nil {
		return nil, fmt.Errorf("upstream client required")
	}
	return &Service{client: client, logg: logg}, nil
}

// Fetch returns the upstream sitemap XML.
func (s *Service) Fetch(ctx context.Context) ([]byte, error) {
	body, err := s.client.Sitemap(ctx)
	if err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "sitemap.fetch_failed", err)
		}
		return nil, err
	}
	return body, nil
}

// Fallback builds a single-URL sitemap for the requesting host so crawlers
// always receive a valid document.
func Fallback(host string) []byte {
	return []byte(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url>
    <loc>https://%s/</loc>
  </url>
</urlset>
`, host))
}
