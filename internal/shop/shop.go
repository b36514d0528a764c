package shop

import (
	"context"

	"github.com/hridaya423/shiba-sub001/internal/airtable"
	"github.com/hridaya423/shiba-sub001/internal/models"
)

// ListItems scans the whole shop table and returns normalized items in
// table order.
func ListItems(ctx context.Context, store airtable.Store, table string) ([]models.ShopItem, error) {
	records, err := store.List(ctx, table, airtable.ListOptions{PageSize: airtable.DefaultPageSize})
	if err != nil {
		return nil, err
	}
	items := make([]models.ShopItem, 0, len(records))
	for _, r := range records {
		items = append(items, models.ShopItemFromRecord(r))
	}
	return items, nil
}

// GetItem fetches a single shop item by record id.
func GetItem(ctx context.Context, store airtable.Store, table, id string) (*models.ShopItem, error) {
	rec, err := store.Get(ctx, table, id)
	if err != nil {
		return nil, err
	}
	item := models.ShopItemFromRecord(*rec)
	return &item, nil
}
