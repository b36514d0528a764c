package hackatime

import (
	"math"
	"strings"

	"github.com/hridaya423/shiba-sub001/internal/models"
)

// ProjectTime is a project offered for attribution, with time in minutes.
type ProjectTime struct {
	Name string `json:"name"`
	Time int    `json:"time"`
}

// OwnerIndex maps each assigned project name to the game that claimed it.
// If two games list the same project the first one wins.
func OwnerIndex(games []models.Game) map[string]string {
	owners := make(map[string]string)
	for _, g := range games {
		for _, name := range g.HackatimeProjects {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if _, taken := owners[name]; !taken {
				owners[name] = g.ID
			}
		}
	}
	return owners
}

// Reconcile keeps projects nobody has claimed, plus projects claimed by
// gameID when one is given. Input order is preserved.
func Reconcile(projects []Project, owners map[string]string, gameID string) []ProjectTime {
	out := make([]ProjectTime, 0, len(projects))
	for _, p := range projects {
		owner, claimed := owners[strings.TrimSpace(p.Name)]
		if claimed && (gameID == "" || owner != gameID) {
			continue
		}
		out = append(out, ProjectTime{Name: p.Name, Time: Minutes(p.TotalSeconds)})
	}
	return out
}

// Minutes converts seconds to whole minutes, rounding to nearest.
func Minutes(seconds float64) int {
	if seconds <= 0 {
		return 0
	}
	return int(math.Round(seconds / 60))
}
