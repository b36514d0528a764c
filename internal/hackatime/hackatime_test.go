package hackatime

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"unicode/utf8"

	"github.com/hridaya423/shiba-sub001/internal/airtable"
	"github.com/hridaya423/shiba-sub001/internal/airtable/airtabletest"
	"github.com/hridaya423/shiba-sub001/internal/config"
	"github.com/hridaya423/shiba-sub001/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinutes(t *testing.T) {
	assert.Equal(t, 0, Minutes(0))
	assert.Equal(t, 0, Minutes(-10))
	assert.Equal(t, 1, Minutes(59))
	assert.Equal(t, 2, Minutes(120))
	assert.Equal(t, 2, Minutes(149))
}

func TestOwnerIndex_FirstClaimWins(t *testing.T) {
	owners := OwnerIndex([]models.Game{
		{ID: "G1", HackatimeProjects: []string{"Foo", " Shared "}},
		{ID: "G2", HackatimeProjects: []string{"Shared", ""}},
	})
	assert.Equal(t, map[string]string{"Foo": "G1", "Shared": "G1"}, owners)
}

func TestReconcile(t *testing.T) {
	projects := []Project{
		{Name: "Foo", TotalSeconds: 600},
		{Name: "Bar", TotalSeconds: 3600},
		{Name: "Baz", TotalSeconds: 90},
	}
	owners := map[string]string{"Foo": "G1", "Baz": "G2"}

	assert.Equal(t, []ProjectTime{{Name: "Bar", Time: 60}}, Reconcile(projects, owners, ""))
	assert.Equal(t, []ProjectTime{{Name: "Foo", Time: 10}, {Name: "Bar", Time: 60}}, Reconcile(projects, owners, "G1"))
	assert.Equal(t, []ProjectTime{{Name: "Bar", Time: 60}}, Reconcile(projects, owners, "G9"))
}

func TestClient_Projects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/users/U123/stats", r.URL.Path)
		assert.Equal(t, "projects", r.URL.Query().Get("features"))
		assert.Equal(t, "2025-08-18", r.URL.Query().Get("start_date"))
		w.Write([]byte(`{"data":{"projects":[{"name":"Foo","total_seconds":600},{"name":"Bar","total_seconds":30}]}}`))
	}))
	defer srv.Close()

	c := NewClient(&config.Config{HackatimeAPIURL: srv.URL + "/api/v1", HackatimeStartDate: "2025-08-18"})
	projects, err := c.Projects(context.Background(), "U123")
	require.NoError(t, err)
	assert.Equal(t, []Project{{Name: "Foo", TotalSeconds: 600}, {Name: "Bar", TotalSeconds: 30}}, projects)
}

func TestClient_ProjectsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(&config.Config{HackatimeAPIURL: srv.URL})
	_, err := c.Projects(context.Background(), "U123")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
}

type staticSource []Project

func (s staticSource) Projects(ctx context.Context, slackID string) ([]Project, error) {
	return s, nil
}

func TestService_Available(t *testing.T) {
	store := airtabletest.New()
	store.Add("Games",
		airtable.Record{ID: "G1", Fields: map[string]interface{}{models.FieldGameProjects: []interface{}{"Foo"}}},
		airtable.Record{ID: "G2", Fields: map[string]interface{}{}},
	)
	svc := &Service{
		Source:     staticSource{{Name: "Foo", TotalSeconds: 120}, {Name: "Bar", TotalSeconds: 240}},
		Store:      store,
		GamesTable: "Games",
	}

	got, err := svc.Available(context.Background(), "U123", "")
	require.NoError(t, err)
	assert.Equal(t, []ProjectTime{{Name: "Bar", Time: 4}}, got)

	got, err = svc.Available(context.Background(), "U123", "G1")
	require.NoError(t, err)
	assert.Equal(t, []ProjectTime{{Name: "Foo", Time: 2}, {Name: "Bar", Time: 4}}, got)
}

func TestTruncate_KeepsRunesWhole(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 200))
	assert.Equal(t, "abc", truncate("abcdef", 3))

	// "é" is two bytes; cutting at 2 would split it
	s := "aé" + "xyz"
	assert.Equal(t, "a", truncate(s, 2))
	assert.True(t, utf8.ValidString(truncate(s, 2)))
	assert.Equal(t, "aé", truncate(s, 3))
}
