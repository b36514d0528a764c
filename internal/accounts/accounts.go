package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hridaya423/shiba-sub001/internal/airtable"
	"github.com/hridaya423/shiba-sub001/internal/models"
)

// ErrInvalidToken is returned when no user holds the given token.
var ErrInvalidToken = errors.New("invalid token")

// FindRecordByToken returns the raw Users record whose token field equals
// token. A blank token or no match yields ErrInvalidToken; transport and
// upstream failures are returned wrapped.
func FindRecordByToken(ctx context.Context, store airtable.Store, table, token string) (*airtable.Record, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrInvalidToken
	}

	rec, err := store.FindFirst(ctx, table, airtable.Eq(models.FieldUserToken, token))
	if err != nil {
		if errors.Is(err, airtable.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("lookup user by token: %w", err)
	}
	return rec, nil
}

// FindByToken is FindRecordByToken converted to a User.
func FindByToken(ctx context.Context, store airtable.Store, table, token string) (*models.User, error) {
	rec, err := FindRecordByToken(ctx, store, table, token)
	if err != nil {
		return nil, err
	}
	user := models.UserFromRecord(*rec)
	return &user, nil
}
