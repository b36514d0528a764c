package orders

import (
	"context"
	"errors"
	"testing"

	"github.com/hridaya423/shiba-sub001/internal/airtable"
	"github.com/hridaya423/shiba-sub001/internal/airtable/airtabletest"
	"github.com/hridaya423/shiba-sub001/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingStrategy struct {
	calls   int
	records []airtable.Record
	err     error
}

func (c *countingStrategy) strategy(name string) Strategy {
	return Strategy{Name: name, Find: func(ctx context.Context, userID string) ([]airtable.Record, error) {
		c.calls++
		return c.records, c.err
	}}
}

func recs(ids ...string) []airtable.Record {
	out := make([]airtable.Record, len(ids))
	for i, id := range ids {
		out[i] = airtable.Record{ID: id, Fields: map[string]interface{}{}}
	}
	return out
}

func TestResolve_FirstStrategyShortCircuits(t *testing.T) {
	s1 := &countingStrategy{records: recs("o1")}
	s2 := &countingStrategy{records: recs("o2")}
	s3 := &countingStrategy{records: recs("o3")}
	r := &Resolver{Strategies: []Strategy{s1.strategy("one"), s2.strategy("two"), s3.strategy("three")}}

	res, err := r.Resolve(context.Background(), "recU")
	require.NoError(t, err)
	assert.Equal(t, "one", res.Strategy)
	assert.Equal(t, 1, s1.calls)
	assert.Zero(t, s2.calls)
	assert.Zero(t, s3.calls)
}

func TestResolve_SecondStrategySkipsThird(t *testing.T) {
	s1 := &countingStrategy{}
	s2 := &countingStrategy{records: recs("o2", "o3")}
	s3 := &countingStrategy{records: recs("o4")}
	r := &Resolver{Strategies: []Strategy{s1.strategy("one"), s2.strategy("two"), s3.strategy("three")}}

	res, err := r.Resolve(context.Background(), "recU")
	require.NoError(t, err)
	assert.Equal(t, "two", res.Strategy)
	assert.Len(t, res.Records, 2)
	assert.Equal(t, 1, s1.calls)
	assert.Equal(t, 1, s2.calls)
	assert.Zero(t, s3.calls)
}

func TestResolve_AllEmptyIsNotAnError(t *testing.T) {
	s1, s2, s3 := &countingStrategy{}, &countingStrategy{}, &countingStrategy{}
	r := &Resolver{Strategies: []Strategy{s1.strategy("one"), s2.strategy("two"), s3.strategy("three")}}

	res, err := r.Resolve(context.Background(), "recU")
	require.NoError(t, err)
	assert.Empty(t, res.Records)
	assert.NotNil(t, res.Records)
	assert.Equal(t, "", res.Strategy)
	assert.Equal(t, 1, s3.calls)
}

func TestResolve_ErrorStopsChain(t *testing.T) {
	s1 := &countingStrategy{err: errors.New("upstream down")}
	s2 := &countingStrategy{records: recs("o2")}
	r := &Resolver{Strategies: []Strategy{s1.strategy("one"), s2.strategy("two")}}

	_, err := r.Resolve(context.Background(), "recU")
	require.Error(t, err)
	assert.Zero(t, s2.calls)
}

func TestNewResolver_ScalarLinkMatchesByEquality(t *testing.T) {
	store := airtabletest.New()
	store.Add("Orders", airtable.Record{ID: "o1", Fields: map[string]interface{}{models.FieldOrderSpentBy: "recU"}})

	res, err := NewResolver(store, "Orders", models.FieldOrderSpentBy, 100).Resolve(context.Background(), "recU")
	require.NoError(t, err)
	assert.Equal(t, "equality", res.Strategy)
	assert.Equal(t, 1, store.CallCount("List", "Orders"))
}

func TestNewResolver_ArrayLinkMatchesByContains(t *testing.T) {
	store := airtabletest.New()
	store.Add("Orders",
		airtable.Record{ID: "o1", Fields: map[string]interface{}{models.FieldOrderSpentBy: []interface{}{"recU"}}},
		airtable.Record{ID: "o2", Fields: map[string]interface{}{models.FieldOrderSpentBy: []interface{}{"recOther"}}},
	)

	res, err := NewResolver(store, "Orders", models.FieldOrderSpentBy, 100).Resolve(context.Background(), "recU")
	require.NoError(t, err)
	assert.Equal(t, "contains", res.Strategy)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "o1", res.Records[0].ID)
	assert.Equal(t, 2, store.CallCount("List", "Orders"))
}

func TestByScan_FiltersInProcess(t *testing.T) {
	store := airtabletest.New()
	store.Add("Orders",
		airtable.Record{ID: "o1", Fields: map[string]interface{}{models.FieldOrderSpentBy: []interface{}{"recA", "recU"}}},
		airtable.Record{ID: "o2", Fields: map[string]interface{}{models.FieldOrderSpentBy: []interface{}{"recUX"}}},
		airtable.Record{ID: "o3", Fields: map[string]interface{}{}},
	)

	found, err := ByScan(store, "Orders", models.FieldOrderSpentBy, 0).Find(context.Background(), "recU")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "o1", found[0].ID)
}

func TestByScan_RespectsMaxRecords(t *testing.T) {
	store := airtabletest.New()
	store.Add("Orders",
		airtable.Record{ID: "o1", Fields: map[string]interface{}{models.FieldOrderSpentBy: []interface{}{"recOther"}}},
		airtable.Record{ID: "o2", Fields: map[string]interface{}{models.FieldOrderSpentBy: []interface{}{"recU"}}},
	)

	found, err := ByScan(store, "Orders", models.FieldOrderSpentBy, 1).Find(context.Background(), "recU")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestForUser_NewestFirst(t *testing.T) {
	store := airtabletest.New()
	store.Add("Orders",
		airtable.Record{ID: "o1", CreatedTime: "2025-09-01T00:00:00.000Z", Fields: map[string]interface{}{models.FieldOrderSpentBy: "recU"}},
		airtable.Record{ID: "o2", CreatedTime: "2025-09-03T00:00:00.000Z", Fields: map[string]interface{}{models.FieldOrderSpentBy: "recU"}},
	)

	list, err := ForUser(context.Background(), NewResolver(store, "Orders", models.FieldOrderSpentBy, 0), "recU")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "o2", list[0].ID)
}

func TestEnrich(t *testing.T) {
	store := airtabletest.New()
	store.Add("ShopItems", airtable.Record{ID: "recItem", Fields: map[string]interface{}{models.FieldShopName: "Hat", models.FieldShopCost: 5.0}})

	list := []models.Order{
		{ID: "o1", ShopItemID: "recItem"},
		{ID: "o2", ShopItemID: "recItem"},
		{ID: "o3", ShopItemID: "recGone"},
		{ID: "o4"},
	}
	Enrich(context.Background(), store, "ShopItems", list)

	require.NotNil(t, list[0].ShopItem)
	assert.Equal(t, "Hat", list[0].ShopItem.Name)
	require.NotNil(t, list[1].ShopItem)
	assert.Nil(t, list[2].ShopItem)
	assert.Nil(t, list[3].ShopItem)
	// one lookup per distinct item
	assert.Equal(t, 2, store.CallCount("Get", "ShopItems"))
}
