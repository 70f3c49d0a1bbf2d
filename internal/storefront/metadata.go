package storefront

import (
	"strings"

	"github.com/zeevo-shop/zeevo-edge/internal/resolver"
	"github.com/zeevo-shop/zeevo-edge/pkg/config"
)

// Metadata is the page-head payload the rendering client consumes.
type Metadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}

// FallbackMetadata is served whenever a store cannot be resolved. Fixed
// generic copy, never an error page.
func FallbackMetadata(cfg config.StorefrontConfig) Metadata {
	return Metadata{
		Title:       cfg.FallbackTitle,
		Description: cfg.FallbackDescription,
	}
}

// MetadataForStore derives page metadata from a resolved store.
func MetadataForStore(store *resolver.Store, cfg config.StorefrontConfig) Metadata {
	if store == nil {
		return FallbackMetadata(cfg)
	}

	meta := Metadata{
		Title:       store.Name,
		Description: store.Description,
		Image:       store.Logo,
	}
	if meta.Description == "" {
		meta.Description = cfg.FallbackDescription
	}
	if store.HeroImage != "" {
		meta.Image = store.HeroImage
	}
	return meta
}

// MetadataForProduct derives page metadata from a resolved product.
func MetadataForProduct(product *resolver.Product, cfg config.StorefrontConfig) Metadata {
	if product == nil {
		return FallbackMetadata(cfg)
	}

	meta := Metadata{
		Title:       product.Name,
		Description: strings.TrimSpace(product.Description),
	}
	if product.Store != nil {
		meta.Title = product.Name + " | " + product.Store.Name
	}
	if meta.Description == "" {
		meta.Description = cfg.FallbackDescription
	}
	if len(product.Images) > 0 {
		meta.Image = product.Images[0]
	}
	return meta
}
