package hackatime

import (
	"context"
	"fmt"

	"github.com/hridaya423/shiba-sub001/internal/airtable"
	"github.com/hridaya423/shiba-sub001/internal/models"
)

// ProjectSource is implemented by Client.
type ProjectSource interface {
	Projects(ctx context.Context, slackID string) ([]Project, error)
}

// Service joins Hackatime projects against the Games table.
type Service struct {
	Source     ProjectSource
	Store      airtable.Store
	GamesTable string
}

// Available returns the projects a game's time selector may offer: all
// unclaimed projects, plus those already claimed by gameID.
func (s *Service) Available(ctx context.Context, slackID, gameID string) ([]ProjectTime, error) {
	projects, err := s.Source.Projects(ctx, slackID)
	if err != nil {
		return nil, err
	}

	records, err := s.Store.List(ctx, s.GamesTable, airtable.ListOptions{
		Fields: []string{models.FieldGameName, models.FieldGameProjects},
	})
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	games := make([]models.Game, 0, len(records))
	for _, r := range records {
		games = append(games, models.GameFromRecord(r))
	}

	return Reconcile(projects, OwnerIndex(games), gameID), nil
}
