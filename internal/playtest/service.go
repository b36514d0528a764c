package playtest

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/hridaya423/shiba-sub001/internal/accounts"
	"github.com/hridaya423/shiba-sub001/internal/airtable"
	"github.com/hridaya423/shiba-sub001/internal/models"
)

var (
	ErrTicketNotFound  = errors.New("playtest not found")
	ErrNotOwner        = errors.New("playtest belongs to another user")
	ErrNothingToUpdate = errors.New("all fields already submitted")
	ErrThrottled       = errors.New("playtest submitted too recently")
)

// Limiter gates writes per subject. ratelimit.Limiter implements it.
type Limiter interface {
	Allow(ctx context.Context, scope, subject string) bool
}

// InvalidFieldError reports a rejected submission value.
type InvalidFieldError struct {
	Field string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid value for %s", e.Field)
}

// Service submits playtest results.
type Service struct {
	Store          airtable.Store
	UsersTable     string
	PlaytestsTable string

	// Limiter is optional. It is consulted only once a submission would
	// actually be written, keyed on user and ticket.
	Limiter Limiter
}

// Result describes a completed submission.
type Result struct {
	UserID  string
	Ticket  models.PlaytestTicket
	Updated []string
}

// Submit authenticates token, loads the ticket and performs one partial
// update. Scores, feedback and playtime are only written where the ticket
// has no value yet; status is always set to Complete. There is no retry.
func (s *Service) Submit(ctx context.Context, token, playtestID string, sub Submission) (*Result, error) {
	if err := sub.Validate(); err != nil {
		return nil, err
	}

	user, err := accounts.FindByToken(ctx, s.Store, s.UsersTable, token)
	if err != nil {
		return nil, err
	}

	ticket, err := s.Store.FindFirst(ctx, s.PlaytestsTable, airtable.Eq(models.FieldPlaytestID, playtestID))
	if err != nil {
		if errors.Is(err, airtable.ErrNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, fmt.Errorf("lookup playtest: %w", err)
	}

	if players := ticket.Strings(models.FieldPlaytestPlayer); len(players) > 0 && !contains(players, user.ID) {
		log.Printf("[PLAYTEST] user=%s attempted to submit playtest %s owned by %v", user.ID, playtestID, players)
		return &Result{UserID: user.ID}, ErrNotOwner
	}

	fields, filled := ComputeUpdate(*ticket, sub)
	if len(filled) == 0 && ticket.String(models.FieldPlaytestStatus) == models.PlaytestStatusComplete {
		return &Result{UserID: user.ID}, ErrNothingToUpdate
	}

	if s.Limiter != nil && !s.Limiter.Allow(ctx, "playtest", user.ID+":"+ticket.ID) {
		return &Result{UserID: user.ID}, ErrThrottled
	}

	updated, err := s.Store.Update(ctx, s.PlaytestsTable, ticket.ID, fields)
	if err != nil {
		return &Result{UserID: user.ID}, fmt.Errorf("update playtest: %w", err)
	}

	log.Printf("[PLAYTEST] user=%s completed playtest %s (filled=%v)", user.ID, playtestID, filled)
	return &Result{
		UserID:  user.ID,
		Ticket:  models.PlaytestTicketFromRecord(*updated),
		Updated: filled,
	}, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
