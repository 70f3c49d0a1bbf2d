package resolver

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/zeevo-shop/zeevo-edge/pkg/backend"
	"github.com/zeevo-shop/zeevo-edge/pkg/types"
)

// Store is the render-ready tenant record: every optional field defaulted,
// every image URL absolute.
type Store struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Slug        string           `json:"slug"`
	Domain      string           `json:"domain,omitempty"`
	Description string           `json:"description"`
	Logo        string           `json:"logo"`
	HeroImage   string           `json:"heroImage,omitempty"`
	Branding    backend.Branding `json:"branding"`
	Currency    string           `json:"currency"`
	IsPublished bool             `json:"isPublished"`

	Social       types.Social `json:"social"`
	ContactEmail string       `json:"contactEmail,omitempty"`
	ContactPhone string       `json:"contactPhone,omitempty"`

	Shipping backend.ShippingConfig `json:"shipping"`
	Pickup   backend.PickupConfig   `json:"pickup"`
	Policies backend.Policies       `json:"policies"`

	CreatedAt time.Time `json:"createdAt"`
	Products  []Product `json:"products"`
}

// Product is the render-ready catalog item.
type Product struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Price         decimal.Decimal  `json:"price"`
	DiscountPrice *decimal.Decimal `json:"discountPrice,omitempty"`
	Description   string           `json:"description"`
	Images        []string         `json:"images"`
	IsAvailable   bool             `json:"isAvailable"`
	Stock         int              `json:"stock"`
	Tags          []string         `json:"tags"`
	CreatedAt     time.Time        `json:"createdAt"`

	Store *Store `json:"store,omitempty"`
}
