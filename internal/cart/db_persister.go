package cart

import (
	"context"
	"fmt"

	"github.com/zeevo-shop/zeevo-edge/pkg/db"
	"github.com/zeevo-shop/zeevo-edge/pkg/db/models"
	"gorm.io/gorm"
)

// DBPersister stores cart lines in the cart_items table. Save replaces the
// cart's rows wholesale inside one transaction so readers never observe a
// partially written collection.
type DBPersister struct {
	client *db.Client
}

func NewDBPersister(ctx context.Context, client *db.Client) (*DBPersister, error) {
	if client == nil {
		return nil, fmt.Errorf("db client required")
	}
	if err := client.DB().WithContext(ctx).AutoMigrate(&models.CartItem{}); err != nil {
		return nil, fmt.Errorf("migrating cart_items: %w", err)
	}
	return &DBPersister{client: client}, nil
}

func (p *DBPersister) Load(ctx context.Context, cartID string) ([]Item, error) {
	var rows []models.CartItem
	err := p.client.DB().WithContext(ctx).
		Where("cart_id = ?", cartID).
		Order("position asc").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("loading cart %s: %w", cartID, err)
	}

	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, Item{
			ID:       row.ItemID,
			Title:    row.Title,
			Price:    row.Price,
			Quantity: row.Quantity,
			StoreID:  row.StoreID,
		})
	}
	return items, nil
}

func (p *DBPersister) Save(ctx context.Context, cartID string, items []Item) error {
	return p.client.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error; err != nil {
			return fmt.Errorf("clearing cart %s: %w", cartID, err)
		}
		if len(items) == 0 {
			return nil
		}

		rows := make([]models.CartItem, 0, len(items))
		for i, item := range items {
			rows = append(rows, models.CartItem{
				CartID:   cartID,
				ItemID:   item.ID,
				StoreID:  item.StoreID,
				Title:    item.Title,
				Price:    item.Price,
				Quantity: item.Quantity,
				Position: i,
			})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("writing cart %s: %w", cartID, err)
		}
		return nil
	})
}

func (p *DBPersister) Delete(ctx context.Context, cartID string) error {
	err := p.client.DB().WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&models.CartItem{}).Error
	if err != nil {
		return fmt.Errorf("deleting cart %s: %w", cartID, err)
	}
	return nil
}

func (p *DBPersister) Ping(ctx context.Context) error {
	return p.client.Ping(ctx)
}
