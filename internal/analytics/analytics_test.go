package analytics

import (
	"context"
	"testing"

	"github.com/hridaya423/shiba-sub001/internal/airtable"
	"github.com/hridaya423/shiba-sub001/internal/airtable/airtabletest"
	"github.com/hridaya423/shiba-sub001/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeUsers(t *testing.T) {
	sum := SummarizeUsers([]models.User{
		{HoursSpent: 10, HasOnboarded: true, Referral: "slack", CreatedTime: "2025-08-20T10:00:00.000Z"},
		{HoursSpent: 5, Referral: "slack", CreatedTime: "2025-08-20T23:00:00.000Z"},
		{HoursSpent: 0.5, CreatedTime: "2025-08-19T01:00:00.000Z"},
	})

	assert.Equal(t, 3, sum.TotalUsers)
	assert.Equal(t, 1, sum.OnboardedUsers)
	assert.Equal(t, 15.5, sum.TotalHours)
	assert.Equal(t, 5.17, sum.AverageHours)
	assert.Equal(t, map[string]int{"slack": 2, "unknown": 1}, sum.Referrals)
	assert.Equal(t, []DayCount{{Day: "2025-08-19", Count: 1}, {Day: "2025-08-20", Count: 2}}, sum.SignupsByDay)
}

func TestSummarizeUsers_Empty(t *testing.T) {
	sum := SummarizeUsers(nil)
	assert.Zero(t, sum.TotalUsers)
	assert.Zero(t, sum.AverageHours)
	assert.NotNil(t, sum.SignupsByDay)
}

func TestSummarizePosts(t *testing.T) {
	sum := SummarizePosts([]models.Post{
		{SlackID: "U1", HoursSpent: 1, CreatedTime: "2025-09-01"},
		{SlackID: "U2", HoursSpent: 2, CreatedTime: "2025-09-01T12:00:00Z"},
		{SlackID: "U1", HoursSpent: 3, CreatedTime: "2025-09-02T12:00:00Z"},
		{HoursSpent: 1},
	})

	assert.Equal(t, 4, sum.TotalPosts)
	assert.Equal(t, 2, sum.DistinctPosters)
	assert.Equal(t, 7.0, sum.TotalHours)
	assert.Equal(t, []DayCount{{Day: "2025-09-01", Count: 2}, {Day: "2025-09-02", Count: 1}}, sum.PostsByDay)
	assert.Equal(t, []PosterCount{{SlackID: "U1", Posts: 2}, {SlackID: "U2", Posts: 1}}, sum.TopPosters)
}

func TestLoadUsers(t *testing.T) {
	store := airtabletest.New()
	store.Add("Users", airtable.Record{ID: "recU", Fields: map[string]interface{}{models.FieldUserHours: 2.0}})

	users, err := LoadUsers(context.Background(), store, "Users")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, 2.0, users[0].HoursSpent)
}
