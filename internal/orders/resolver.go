package orders

import (
	"context"
	"fmt"
	"log"

	"github.com/hridaya423/shiba-sub001/internal/airtable"
)

// FindFunc returns the order records linked to userID.
type FindFunc func(ctx context.Context, userID string) ([]airtable.Record, error)

// Strategy is one way of asking Airtable for a user's orders.
type Strategy struct {
	Name string
	Find FindFunc
}

// ByEquality filters with {field} = 'userID', which matches when the link
// field is rendered as a single scalar value.
func ByEquality(store airtable.Store, table, field string) Strategy {
	return Strategy{
		Name: "equality",
		Find: func(ctx context.Context, userID string) ([]airtable.Record, error) {
			return store.List(ctx, table, airtable.ListOptions{Filter: airtable.Eq(field, userID)})
		},
	}
}

// ByContains searches for userID inside the comma-joined link field.
func ByContains(store airtable.Store, table, field string) Strategy {
	return Strategy{
		Name: "contains",
		Find: func(ctx context.Context, userID string) ([]airtable.Record, error) {
			return store.List(ctx, table, airtable.ListOptions{Filter: airtable.Contains(field, userID)})
		},
	}
}

// ByScan reads up to maxRecords rows of the table and keeps those whose
// link field lists userID. maxRecords <= 0 scans the whole table.
func ByScan(store airtable.Store, table, field string, maxRecords int) Strategy {
	return Strategy{
		Name: "scan",
		Find: func(ctx context.Context, userID string) ([]airtable.Record, error) {
			records, err := store.List(ctx, table, airtable.ListOptions{MaxRecords: maxRecords})
			if err != nil {
				return nil, err
			}
			var matched []airtable.Record
			for _, r := range records {
				for _, id := range r.Strings(field) {
					if id == userID {
						matched = append(matched, r)
						break
					}
				}
			}
			return matched, nil
		},
	}
}

// Resolver tries each strategy in order and keeps the first non-empty
// result. Later strategies are never called once one has matched.
type Resolver struct {
	Strategies []Strategy
}

// NewResolver builds the equality -> contains -> scan chain for the
// Orders "Spent By" link.
func NewResolver(store airtable.Store, table, field string, maxScanRecords int) *Resolver {
	return &Resolver{Strategies: []Strategy{
		ByEquality(store, table, field),
		ByContains(store, table, field),
		ByScan(store, table, field, maxScanRecords),
	}}
}

// Result is the outcome of Resolve. Strategy is empty when nothing matched.
type Result struct {
	Records  []airtable.Record
	Strategy string
}

// Resolve returns the records found by the first strategy that yields any.
// Zero matches from every strategy is an empty result, not an error; an
// error from any strategy stops the chain.
func (r *Resolver) Resolve(ctx context.Context, userID string) (*Result, error) {
	for _, s := range r.Strategies {
		records, err := s.Find(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("orders %s lookup: %w", s.Name, err)
		}
		if len(records) > 0 {
			log.Printf("[ORDERS] user=%s matched %d order(s) via %s", userID, len(records), s.Name)
			return &Result{Records: records, Strategy: s.Name}, nil
		}
	}
	return &Result{Records: []airtable.Record{}}, nil
}
