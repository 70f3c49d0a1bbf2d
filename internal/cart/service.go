package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/zeevo-shop/zeevo-edge/pkg/config"
	pkgerrors "github.com/zeevo-shop/zeevo-edge/pkg/errors"
)

// Service is the cart aggregate. Each mutation loads the full collection,
// applies the change and writes the result back through the persister. The
// mutex serializes read-modify-write cycles so concurrent requests for the
// same session cannot interleave.
type Service struct {
	mu        sync.Mutex
	persister Persister
	scope     config.CartRemoveScope
}

// NewService builds a cart service over the configured persistence adapter.
func NewService(persister Persister, scope config.CartRemoveScope) (*Service, error) {
	if persister == nil {
		return nil, fmt.Errorf("cart persister required")
	}
	if scope == "" {
		scope = config.RemoveScopeID
	}
	return &Service{persister: persister, scope: scope}, nil
}

// AddItem merges item into the cart: an existing (id, storeId) line gains
// item's quantity, otherwise the line is appended. Returns the resulting
// collection.
func (s *Service) AddItem(ctx context.Context, cartID string, item Item) ([]Item, error) {
	if item.ID == "" || item.StoreID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart item requires id and storeId")
	}
	if item.Quantity <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart item quantity must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.persister.Load(ctx, cartID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart")
	}

	merged := false
	for i := range items {
		if items[i].Key() == item.Key() {
			items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, item)
	}

	if err := s.persister.Save(ctx, cartID, items); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save cart")
	}
	return items, nil
}

// RemoveItem removes lines matching itemID. Under the legacy id scope the
// storeID argument is ignored and every store's line with that id goes;
// under the id_store scope only the exact (id, storeId) line is removed.
func (s *Service) RemoveItem(ctx context.Context, cartID, itemID, storeID string) ([]Item, error) {
	if itemID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item id required")
	}
	if s.scope == config.RemoveScopeIDStore && storeID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "storeId required for store-scoped removal")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.persister.Load(ctx, cartID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart")
	}

	kept := items[:0]
	for _, existing := range items {
		if existing.ID == itemID {
			if s.scope == config.RemoveScopeID || existing.StoreID == storeID {
				continue
			}
		}
		kept = append(kept, existing)
	}

	if err := s.persister.Save(ctx, cartID, kept); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save cart")
	}
	return kept, nil
}

// Clear empties the cart and persists the empty state.
func (s *Service) Clear(ctx context.Context, cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persister.Delete(ctx, cartID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "clear cart")
	}
	return nil
}

// Items returns the cart's current collection.
func (s *Service) Items(ctx context.Context, cartID string) ([]Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.persister.Load(ctx, cartID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart")
	}
	return items, nil
}

// Ping reports persistence availability for readiness probes.
func (s *Service) Ping(ctx context.Context) error {
	return s.persister.Ping(ctx)
}

// TotalItems sums quantities across all lines.
func TotalItems(items []Item) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

// TotalPrice sums price x quantity across all lines.
func TotalPrice(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
