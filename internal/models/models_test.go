package models

import (
	"testing"

	"github.com/hridaya423/shiba-sub001/internal/airtable"
	"github.com/stretchr/testify/assert"
)

func TestShopItemFromRecord_Defaults(t *testing.T) {
	item := ShopItemFromRecord(airtable.Record{ID: "rec1", Fields: map[string]interface{}{
		FieldShopName: "Sticker Pack",
	}})

	assert.Equal(t, "rec1", item.ID)
	assert.Equal(t, "Sticker Pack", item.Name)
	assert.Zero(t, item.Cost)
	assert.NotNil(t, item.Images)
	assert.Empty(t, item.Images)
}

func TestPlaytestTicketFromRecord_ScoresNilWhenEmpty(t *testing.T) {
	ticket := PlaytestTicketFromRecord(airtable.Record{ID: "recT", Fields: map[string]interface{}{
		FieldPlaytestID: "PT-1",
		FieldFunScore:   4.0,
	}})

	if assert.NotNil(t, ticket.FunScore) {
		assert.Equal(t, 4.0, *ticket.FunScore)
	}
	assert.Nil(t, ticket.ArtScore)
	assert.Nil(t, ticket.MoodScore)
}

func TestOrderFromRecord_FallsBackToCreatedTime(t *testing.T) {
	order := OrderFromRecord(airtable.Record{
		ID:          "recO",
		CreatedTime: "2025-09-01T10:00:00.000Z",
		Fields: map[string]interface{}{
			FieldOrderItem:   []interface{}{"recItem"},
			FieldOrderAmount: 30.0,
		},
	})

	assert.Equal(t, "recItem", order.ShopItemID)
	assert.Equal(t, 30.0, order.AmountSpent)
	assert.Equal(t, "2025-09-01T10:00:00.000Z", order.CreatedTime)
}

func TestGameFromRecord_ProjectsFromTextOrArray(t *testing.T) {
	g := GameFromRecord(airtable.Record{ID: "G1", Fields: map[string]interface{}{FieldGameProjects: "Foo, Baz"}})
	assert.Equal(t, []string{"Foo", "Baz"}, g.HackatimeProjects)

	g = GameFromRecord(airtable.Record{ID: "G2", Fields: map[string]interface{}{FieldGameProjects: []interface{}{"Qux"}}})
	assert.Equal(t, []string{"Qux"}, g.HackatimeProjects)
}
