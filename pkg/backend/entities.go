package backend

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/zeevo-shop/zeevo-edge/pkg/types"
)

// Store is a tenant's public storefront record as returned by the backend.
// The resolver owns defaulting and URL normalization; this struct is the
// validated wire shape.
type Store struct {
	ID          string   `json:"id" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Slug        string   `json:"slug" validate:"required"`
	Domain      string   `json:"domain,omitempty"`
	Description string   `json:"description,omitempty"`
	Logo        string   `json:"logo,omitempty"`
	HeroImage   string   `json:"heroImage,omitempty"`
	Branding    Branding `json:"branding,omitempty"`
	Currency    string   `json:"currency,omitempty"`
	IsPublished *bool    `json:"isPublished,omitempty"`

	Social       *types.Social `json:"social,omitempty"`
	ContactEmail string        `json:"contactEmail,omitempty"`
	ContactPhone string        `json:"contactPhone,omitempty"`

	Shipping *ShippingConfig `json:"shipping,omitempty"`
	Pickup   *PickupConfig   `json:"pickup,omitempty"`
	Policies *Policies       `json:"policies,omitempty"`

	CreatedAt time.Time `json:"createdAt,omitzero"`
	Products  []Product `json:"products,omitempty"`
}

type Branding struct {
	PrimaryColor   string `json:"primaryColor,omitempty"`
	SecondaryColor string `json:"secondaryColor,omitempty"`
	Font           string `json:"font,omitempty"`
	Template       string `json:"template,omitempty"`
}

type ShippingConfig struct {
	Enabled   bool               `json:"enabled"`
	Locations []ShippingLocation `json:"locations"`
}

type ShippingLocation struct {
	Area string          `json:"area"`
	Fee  decimal.Decimal `json:"fee"`
	Note string          `json:"note,omitempty"`
}

type PickupConfig struct {
	Enabled bool   `json:"enabled"`
	Note    string `json:"note,omitempty"`
}

type Policies struct {
	Returns string `json:"returns,omitempty"`
	Terms   string `json:"terms,omitempty"`
}

// Product is a catalog item. Store is populated only on by-id fetches.
type Product struct {
	ID            string           `json:"id" validate:"required"`
	Name          string           `json:"name" validate:"required"`
	Price         decimal.Decimal  `json:"price"`
	DiscountPrice *decimal.Decimal `json:"discountPrice,omitempty"`
	Description   string           `json:"description,omitempty"`
	Images        []string         `json:"images,omitempty"`
	IsAvailable   *bool            `json:"isAvailable,omitempty"`
	Stock         int              `json:"stock,omitempty"`
	Tags          []string         `json:"tags,omitempty"`
	CreatedAt     time.Time        `json:"createdAt,omitzero"`

	Store *Store `json:"store,omitempty"`
}

// Notification is a user-facing notification record proxied from the backend.
type Notification struct {
	ID        string    `json:"id" validate:"required"`
	Type      string    `json:"type,omitempty"`
	Title     string    `json:"title,omitempty"`
	Message   string    `json:"message,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}
