package cart

import (
	"context"
	"sync"
)

// Persister durably stores a cart's full item collection. Every mutation in
// the service writes the whole collection back, mirroring the original
// write-on-mutate contract.
type Persister interface {
	Load(ctx context.Context, cartID string) ([]Item, error)
	Save(ctx context.Context, cartID string, items []Item) error
	Delete(ctx context.Context, cartID string) error
	Ping(ctx context.Context) error
}

// MemoryPersister keeps carts in process memory. Used in tests and as the
// dev-mode backend.
type MemoryPersister struct {
	mu    sync.RWMutex
	carts map[string][]Item
}

func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{carts: make(map[string][]Item)}
}

func (m *MemoryPersister) Load(ctx context.Context, cartID string) ([]Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	stored := m.carts[cartID]
	items := make([]Item, len(stored))
	copy(items, stored)
	return items, nil
}

func (m *MemoryPersister) Save(ctx context.Context, cartID string, items []Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]Item, len(items))
	copy(stored, items)
	m.carts[cartID] = stored
	return nil
}

func (m *MemoryPersister) Delete(ctx context.Context, cartID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, cartID)
	return nil
}

func (m *MemoryPersister) Ping(ctx context.Context) error {
	return nil
}
