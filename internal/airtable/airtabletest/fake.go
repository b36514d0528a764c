// Package airtabletest provides an in-memory airtable.Store for tests.
package airtabletest

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"github.com/hridaya423/shiba-sub001/internal/airtable"
)

var (
	eqPattern       = regexp.MustCompile(`^\{([^}]*)\} = '((?:[^'\\]|\\.)*)'$`)
	containsPattern = regexp.MustCompile(`^FIND\('((?:[^'\\]|\\.)*)', ARRAYJOIN\(\{([^}]*)\}, ','\)\) > 0$`)
)

// Call records one Store invocation.
type Call struct {
	Method  string
	Table   string
	Formula string
	ID      string
}

// Store keeps tables in memory. It understands the formulas produced by
// airtable.Eq and airtable.Contains: Eq matches scalar string fields only
// and Contains matches the comma-joined value of a field.
type Store struct {
	mu      sync.Mutex
	tables  map[string][]airtable.Record
	calls   []Call
	updates []Call

	// Err, when set, is returned from every call.
	Err error
	// UpdateHook observes the fields of every Update.
	UpdateHook func(table, id string, fields map[string]interface{})
}

func New() *Store {
	return &Store{tables: make(map[string][]airtable.Record)}
}

// Add appends records to a table.
func (s *Store) Add(table string, records ...airtable.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[table] = append(s.tables[table], records...)
}

// Calls returns a copy of every recorded call.
func (s *Store) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// CallCount counts calls of method against table.
func (s *Store) CallCount(method, table string) int {
	n := 0
	for _, c := range s.Calls() {
		if c.Method == method && c.Table == table {
			n++
		}
	}
	return n
}

func (s *Store) record(c Call) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, c)
	return s.Err
}

func (s *Store) List(ctx context.Context, table string, opts airtable.ListOptions) ([]airtable.Record, error) {
	if err := s.record(Call{Method: "List", Table: table, Formula: opts.Filter}); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]airtable.Record, 0)
	for _, r := range s.tables[table] {
		if Match(opts.Filter, r) {
			out = append(out, r)
			if opts.MaxRecords > 0 && len(out) >= opts.MaxRecords {
				break
			}
		}
	}
	return out, nil
}

func (s *Store) ListPage(ctx context.Context, table string, opts airtable.ListOptions, offset string) (*airtable.Page, error) {
	records, err := s.List(ctx, table, opts)
	if err != nil {
		return nil, err
	}
	return &airtable.Page{Records: records}, nil
}

func (s *Store) FindFirst(ctx context.Context, table, formula string) (*airtable.Record, error) {
	if err := s.record(Call{Method: "FindFirst", Table: table, Formula: formula}); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.tables[table] {
		if Match(formula, r) {
			rec := r
			return &rec, nil
		}
	}
	return nil, airtable.ErrNotFound
}

func (s *Store) Get(ctx context.Context, table, id string) (*airtable.Record, error) {
	if err := s.record(Call{Method: "Get", Table: table, ID: id}); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.tables[table] {
		if r.ID == id {
			rec := r
			return &rec, nil
		}
	}
	return nil, airtable.ErrNotFound
}

func (s *Store) Update(ctx context.Context, table, id string, fields map[string]interface{}) (*airtable.Record, error) {
	if err := s.record(Call{Method: "Update", Table: table, ID: id}); err != nil {
		return nil, err
	}
	if s.UpdateHook != nil {
		s.UpdateHook(table, id, fields)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := s.tables[table]
	for i := range rows {
		if rows[i].ID != id {
			continue
		}
		merged := make(map[string]interface{}, len(rows[i].Fields)+len(fields))
		for k, v := range rows[i].Fields {
			merged[k] = v
		}
		for k, v := range fields {
			merged[k] = v
		}
		rows[i].Fields = merged
		rec := rows[i]
		return &rec, nil
	}
	return nil, airtable.ErrNotFound
}

// Match evaluates the supported formula shapes against a record. An empty
// formula matches everything; anything unrecognised matches nothing.
func Match(formula string, r airtable.Record) bool {
	if formula == "" {
		return true
	}
	if m := eqPattern.FindStringSubmatch(formula); m != nil {
		s, ok := r.Fields[m[1]].(string)
		return ok && s == airtable.UnescapeString(m[2])
	}
	if m := containsPattern.FindStringSubmatch(formula); m != nil {
		joined := strings.Join(r.Strings(m[2]), ",")
		return strings.Contains(joined, airtable.UnescapeString(m[1]))
	}
	return false
}
