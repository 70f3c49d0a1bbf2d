package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem persists one cart line for the database cart adapter. A line is
// unique per (cart_id, item_id, store_id); quantity merges happen in the
// cart aggregate before the row is written.
type CartItem struct {
	CartID    string          `gorm:"column:cart_id;primaryKey;size:64"`
	ItemID    string          `gorm:"column:item_id;primaryKey;size:64"`
	StoreID   string          `gorm:"column:store_id;primaryKey;size:64"`
	Title     string          `gorm:"column:title;not null"`
	Price     decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null"`
	Quantity  int             `gorm:"column:quantity;not null"`
	Position  int             `gorm:"column:position;not null;default:0"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName keeps the table name stable across drivers.
func (CartItem) TableName() string {
	return "cart_items"
}
