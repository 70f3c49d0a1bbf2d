package storefront

import "github.com/zeevo-shop/zeevo-edge/internal/resolver"

// StorePage is the render-ready payload for a tenant storefront page.
// Store is nil when resolution failed; Metadata then carries the fallback
// copy and the client renders the generic storefront shell.
type StorePage struct {
	Store    *resolver.Store `json:"store"`
	Metadata Metadata        `json:"metadata"`
}

// ProductPage is the render-ready payload for a product detail page.
type ProductPage struct {
	Product  *resolver.Product `json:"product"`
	Metadata Metadata          `json:"metadata"`
}

// NotFound marks a terminal not-found state for product routes.
type NotFound struct {
	Message string `json:"message"`
}
