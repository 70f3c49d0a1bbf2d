package cart

import "github.com/shopspring/decimal"

// Item is one cart line, uniquely keyed by (ID, StoreID) within a cart.
type Item struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	StoreID  string          `json:"storeId"`
}

// Key identifies a cart line across adds.
func (i Item) Key() ItemKey {
	return ItemKey{ID: i.ID, StoreID: i.StoreID}
}

// ItemKey is the (id, storeId) pair insertion merges on.
type ItemKey struct {
	ID      string
	StoreID string
}
