package resolver

import (
	"context"
	"fmt"

	"github.com/zeevo-shop/zeevo-edge/pkg/backend"
	"github.com/zeevo-shop/zeevo-edge/pkg/config"
	"github.com/zeevo-shop/zeevo-edge/pkg/logger"
)

type upstreamClient interface {
	GetStoreBySlug(ctx context.Context, slug string) (*backend.Store, error)
	GetProductByID(ctx context.Context, id string) (*backend.Product, error)
	BaseURL() string
}

// Service is the fetch-and-normalize step between the backend and the
// renderer. Fetch and decode failures never escape it: a store lookup that
// fails resolves to nil and the caller renders fallback content instead.
type Service struct {
	client          upstreamClient
	logg            *logger.Logger
	rootDomain      string
	placeholderLogo string
}

// NewService builds a resolver over the backend client.
func NewService(client upstreamClient, hosting config.HostingConfig, storefront config.StorefrontConfig, logg *logger.Logger) (*Service, error) {
	if client == nil {
		return nil, fmt.Errorf("upstream client required")
	}
	return &Service{
		client:          client,
		logg:            logg,
		rootDomain:      hosting.RootDomain,
		placeholderLogo: storefront.PlaceholderLogo,
	}, nil
}

// ResolveStore fetches and normalizes a store by its tenant identifier.
// Returns nil when the store is missing or the upstream is unavailable.
func (s *Service) ResolveStore(ctx context.Context, identifier string) *Store {
	raw, err := s.client.GetStoreBySlug(ctx, identifier)
	if err != nil {
		if s.logg != nil {
			ctx = s.logg.WithStoreSlug(ctx, identifier)
			s.logg.Error(ctx, "resolver.store_fetch_failed", err)
		}
		return nil
	}

	// Store assets live on the backend unless the tenant brings a custom
	// domain, so the API base is the fallback here.
	base := raw.Domain
	if base == "" {
		base = s.client.BaseURL()
	}
	return normalizeStore(raw, base, s.placeholderLogo)
}

// ResolveProduct fetches and normalizes a product by id, absolutizing its
// images against the embedded store's host. Returns nil when the product is
// missing or the upstream is unavailable; that route renders "not found".
func (s *Service) ResolveProduct(ctx context.Context, id string) *Product {
	raw, err := s.client.GetProductByID(ctx, id)
	if err != nil {
		if s.logg != nil {
			ctx = s.logg.WithField(ctx, "product_id", id)
			s.logg.Error(ctx, "resolver.product_fetch_failed", err)
		}
		return nil
	}

	base := baseHostFor(raw.Store, s.rootDomain, s.client.BaseURL())
	product := normalizeProduct(raw, base)
	if raw.Store != nil {
		product.Store = normalizeStore(raw.Store, base, s.placeholderLogo)
	}
	return product
}
