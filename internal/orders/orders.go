package orders

import (
	"context"
	"errors"
	"log"
	"sort"
	"sync"

	"github.com/hridaya423/shiba-sub001/internal/airtable"
	"github.com/hridaya423/shiba-sub001/internal/models"
	"github.com/hridaya423/shiba-sub001/internal/shop"
)

// ForUser resolves the user's orders and returns them newest first.
func ForUser(ctx context.Context, resolver *Resolver, userID string) ([]models.Order, error) {
	res, err := resolver.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]models.Order, 0, len(res.Records))
	for _, r := range res.Records {
		out = append(out, models.OrderFromRecord(r))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedTime > out[j].CreatedTime
	})
	return out, nil
}

// Enrich attaches shop item details to each order. Lookups run
// concurrently, one per distinct item. A failed lookup leaves ShopItem nil.
func Enrich(ctx context.Context, store airtable.Store, shopTable string, list []models.Order) {
	ids := make(map[string]struct{})
	for _, o := range list {
		if o.ShopItemID != "" {
			ids[o.ShopItemID] = struct{}{}
		}
	}
	if len(ids) == 0 {
		return
	}

	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		items = make(map[string]*models.ShopItem, len(ids))
	)
	for id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			item, err := shop.GetItem(ctx, store, shopTable, id)
			if err != nil {
				if !errors.Is(err, airtable.ErrNotFound) {
					log.Printf("[ORDERS] failed to load shop item %s: %v", id, err)
				}
				return
			}
			mu.Lock()
			items[id] = item
			mu.Unlock()
		}(id)
	}
	wg.Wait()

	for i := range list {
		list[i].ShopItem = items[list[i].ShopItemID]
	}
}
