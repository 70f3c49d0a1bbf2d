package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/zeevo-shop/zeevo-edge/pkg/redis"
)

// RedisPersister stores each cart as one JSON blob under a namespaced key.
// Carts never expire on their own; only an explicit clear removes them.
type RedisPersister struct {
	client *redis.Client
}

func NewRedisPersister(client *redis.Client) (*RedisPersister, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client required")
	}
	return &RedisPersister{client: client}, nil
}

func (p *RedisPersister) Load(ctx context.Context, cartID string) ([]Item, error) {
	raw, err := p.client.Get(ctx, p.client.CartKey(cartID))
	if redis.IsNil(err) {
		return []Item{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading cart %s: %w", cartID, err)
	}

	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decoding cart %s: %w", cartID, err)
	}
	return items, nil
}

func (p *RedisPersister) Save(ctx context.Context, cartID string, items []Item) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding cart %s: %w", cartID, err)
	}
	if err := p.client.Set(ctx, p.client.CartKey(cartID), string(raw), 0); err != nil {
		return fmt.Errorf("saving cart %s: %w", cartID, err)
	}
	return nil
}

func (p *RedisPersister) Delete(ctx context.Context, cartID string) error {
	return p.client.Del(ctx, p.client.CartKey(cartID))
}

func (p *RedisPersister) Ping(ctx context.Context) error {
	return p.client.Ping(ctx)
}
