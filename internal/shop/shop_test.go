package shop

import (
	"context"
	"testing"

	"github.com/hridaya423/shiba-sub001/internal/airtable"
	"github.com/hridaya423/shiba-sub001/internal/airtable/airtabletest"
	"github.com/hridaya423/shiba-sub001/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListItems(t *testing.T) {
	store := airtabletest.New()
	store.Add("ShopItems",
		airtable.Record{ID: "rec1", Fields: map[string]interface{}{models.FieldShopName: "Hat", models.FieldShopCost: 25.0, models.FieldShopInStock: 3.0}},
		airtable.Record{ID: "rec2", Fields: map[string]interface{}{models.FieldShopName: "Free Sticker"}},
	)

	items, err := ListItems(context.Background(), store, "ShopItems")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 25.0, items[0].Cost)
	assert.Equal(t, 3, items[0].InStock)
	assert.Zero(t, items[1].Cost)
}

func TestListItems_EmptyTable(t *testing.T) {
	items, err := ListItems(context.Background(), airtabletest.New(), "ShopItems")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestGetItem_NotFound(t *testing.T) {
	_, err := GetItem(context.Background(), airtabletest.New(), "ShopItems", "recX")
	assert.ErrorIs(t, err, airtable.ErrNotFound)
}
