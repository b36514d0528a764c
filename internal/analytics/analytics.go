package analytics

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/hridaya423/shiba-sub001/internal/airtable"
	"github.com/hridaya423/shiba-sub001/internal/models"
)

// topPosterLimit bounds the leaderboard in PostSummary.
const topPosterLimit = 10

type UserSummary struct {
	TotalUsers     int            `json:"totalUsers"`
	OnboardedUsers int            `json:"onboardedUsers"`
	TotalHours     float64        `json:"totalHours"`
	AverageHours   float64        `json:"averageHours"`
	Referrals      map[string]int `json:"referrals"`
	SignupsByDay   []DayCount     `json:"signupsByDay"`
}

type PostSummary struct {
	TotalPosts      int           `json:"totalPosts"`
	DistinctPosters int           `json:"distinctPosters"`
	TotalHours      float64       `json:"totalHours"`
	PostsByDay      []DayCount    `json:"postsByDay"`
	TopPosters      []PosterCount `json:"topPosters"`
}

type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

type PosterCount struct {
	SlackID string `json:"slackId"`
	Posts   int    `json:"posts"`
}

// SummarizeUsers aggregates the Users table.
func SummarizeUsers(users []models.User) UserSummary {
	sum := UserSummary{Referrals: map[string]int{}, SignupsByDay: []DayCount{}}
	days := map[string]int{}
	for _, u := range users {
		sum.TotalUsers++
		sum.TotalHours += u.HoursSpent
		if u.HasOnboarded {
			sum.OnboardedUsers++
		}
		ref := strings.TrimSpace(u.Referral)
		if ref == "" {
			ref = "unknown"
		}
		sum.Referrals[ref]++
		if day := dayOf(u.CreatedTime); day != "" {
			days[day]++
		}
	}
	if sum.TotalUsers > 0 {
		sum.AverageHours = round2(sum.TotalHours / float64(sum.TotalUsers))
	}
	sum.TotalHours = round2(sum.TotalHours)
	sum.SignupsByDay = sortedDays(days)
	return sum
}

// SummarizePosts aggregates the Posts table.
func SummarizePosts(posts []models.Post) PostSummary {
	sum := PostSummary{PostsByDay: []DayCount{}, TopPosters: []PosterCount{}}
	days := map[string]int{}
	posters := map[string]int{}
	for _, p := range posts {
		sum.TotalPosts++
		sum.TotalHours += p.HoursSpent
		if day := dayOf(p.CreatedTime); day != "" {
			days[day]++
		}
		if p.SlackID != "" {
			posters[p.SlackID]++
		}
	}
	sum.TotalHours = round2(sum.TotalHours)
	sum.DistinctPosters = len(posters)
	sum.PostsByDay = sortedDays(days)

	for id, n := range posters {
		sum.TopPosters = append(sum.TopPosters, PosterCount{SlackID: id, Posts: n})
	}
	sort.Slice(sum.TopPosters, func(i, j int) bool {
		if sum.TopPosters[i].Posts != sum.TopPosters[j].Posts {
			return sum.TopPosters[i].Posts > sum.TopPosters[j].Posts
		}
		return sum.TopPosters[i].SlackID < sum.TopPosters[j].SlackID
	})
	if len(sum.TopPosters) > topPosterLimit {
		sum.TopPosters = sum.TopPosters[:topPosterLimit]
	}
	return sum
}

// LoadUsers scans the Users table.
func LoadUsers(ctx context.Context, store airtable.Store, table string) ([]models.User, error) {
	records, err := store.List(ctx, table, airtable.ListOptions{})
	if err != nil {
		return nil, err
	}
	users := make([]models.User, 0, len(records))
	for _, r := range records {
		users = append(users, models.UserFromRecord(r))
	}
	return users, nil
}

// LoadPosts scans the Posts table.
func LoadPosts(ctx context.Context, store airtable.Store, table string) ([]models.Post, error) {
	records, err := store.List(ctx, table, airtable.ListOptions{})
	if err != nil {
		return nil, err
	}
	posts := make([]models.Post, 0, len(records))
	for _, r := range records {
		posts = append(posts, models.PostFromRecord(r))
	}
	return posts, nil
}

func dayOf(ts string) string {
	if ts == "" {
		return ""
	}
	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		return t.UTC().Format("2006-01-02")
	}
	if len(ts) >= 10 {
		if _, err := time.Parse("2006-01-02", ts[:10]); err == nil {
			return ts[:10]
		}
	}
	return ""
}

func sortedDays(days map[string]int) []DayCount {
	out := make([]DayCount, 0, len(days))
	for d, n := range days {
		out = append(out, DayCount{Day: d, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

func round2(f float64) float64 {
	return float64(int64(f*100+0.5)) / 100
}
