package resolver

import (
	"github.com/zeevo-shop/zeevo-edge/pkg/backend"
	"github.com/zeevo-shop/zeevo-edge/pkg/types"
	"github.com/zeevo-shop/zeevo-edge/pkg/urlx"
)

const defaultCurrency = "USD"

// baseHostFor picks the absolutization base for a product's embedded store:
// the custom domain when present, else the deterministic {slug}.{rootDomain}
// subdomain, else the supplied fallback.
func baseHostFor(store *backend.Store, rootDomain, fallback string) string {
	if store != nil && store.Domain != "" {
		return store.Domain
	}
	if store != nil && store.Slug != "" && rootDomain != "" {
		return store.Slug + "." + rootDomain
	}
	return fallback
}

// normalizeStore fills defaults and absolutizes image URLs. The returned
// value is safe to hand straight to a renderer.
func normalizeStore(raw *backend.Store, base, placeholderLogo string) *Store {
	if raw == nil {
		return nil
	}

	store := &Store{
		ID:           raw.ID,
		Name:         raw.Name,
		Slug:         raw.Slug,
		Domain:       raw.Domain,
		Description:  raw.Description,
		Logo:         raw.Logo,
		HeroImage:    raw.HeroImage,
		Branding:     raw.Branding,
		Currency:     raw.Currency,
		ContactEmail: raw.ContactEmail,
		ContactPhone: raw.ContactPhone,
		CreatedAt:    raw.CreatedAt,
	}

	if store.Logo == "" {
		store.Logo = placeholderLogo
	}
	store.Logo = urlx.Absolutize(store.Logo, base)
	store.HeroImage = urlx.Absolutize(store.HeroImage, base)

	if store.Currency == "" {
		store.Currency = defaultCurrency
	}
	if raw.IsPublished != nil {
		store.IsPublished = *raw.IsPublished
	}
	if raw.Social != nil {
		store.Social = *raw.Social
	} else {
		store.Social = types.Social{}
	}

	if raw.Shipping != nil {
		store.Shipping = *raw.Shipping
	}
	if store.Shipping.Locations == nil {
		store.Shipping.Locations = []backend.ShippingLocation{}
	}
	if raw.Pickup != nil {
		store.Pickup = *raw.Pickup
	}
	if raw.Policies != nil {
		store.Policies = *raw.Policies
	}

	store.Products = make([]Product, 0, len(raw.Products))
	for i := range raw.Products {
		store.Products = append(store.Products, *normalizeProduct(&raw.Products[i], base))
	}

	return store
}

func normalizeProduct(raw *backend.Product, base string) *Product {
	if raw == nil {
		return nil
	}

	product := &Product{
		ID:            raw.ID,
		Name:          raw.Name,
		Price:         raw.Price,
		DiscountPrice: raw.DiscountPrice,
		Description:   raw.Description,
		Stock:         raw.Stock,
		Tags:          raw.Tags,
		CreatedAt:     raw.CreatedAt,
	}

	if raw.IsAvailable != nil {
		product.IsAvailable = *raw.IsAvailable
	}
	if product.Tags == nil {
		product.Tags = []string{}
	}

	product.Images = make([]string, 0, len(raw.Images))
	for _, img := range raw.Images {
		product.Images = append(product.Images, urlx.Absolutize(img, base))
	}

	return product
}
