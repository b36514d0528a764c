package accounts

import (
	"context"
	"errors"
	"testing"

	"github.com/hridaya423/shiba-sub001/internal/airtable"
	"github.com/hridaya423/shiba-sub001/internal/airtable/airtabletest"
	"github.com/hridaya423/shiba-sub001/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore() *airtabletest.Store {
	store := airtabletest.New()
	store.Add("Users",
		airtable.Record{ID: "recU1", Fields: map[string]interface{}{
			models.FieldUserToken:   "tok-1",
			models.FieldUserSlackID: "U123",
			models.FieldUserHours:   10.5,
		}},
		airtable.Record{ID: "recU2", Fields: map[string]interface{}{
			models.FieldUserToken: `we'ird\tok`,
		}},
	)
	return store
}

func TestFindByToken(t *testing.T) {
	user, err := FindByToken(context.Background(), newStore(), "Users", "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "recU1", user.ID)
	assert.Equal(t, "U123", user.SlackID)
	assert.Equal(t, 10.5, user.HoursSpent)
}

func TestFindByToken_EscapedToken(t *testing.T) {
	user, err := FindByToken(context.Background(), newStore(), "Users", `we'ird\tok`)
	require.NoError(t, err)
	assert.Equal(t, "recU2", user.ID)
}

func TestFindByToken_UnknownTokenIsNotAnError(t *testing.T) {
	for _, tok := range []string{"nope", "", "   ", `' OR TRUE() OR '`} {
		_, err := FindByToken(context.Background(), newStore(), "Users", tok)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tok)
	}
}

func TestFindByToken_TransportErrorIsWrapped(t *testing.T) {
	store := newStore()
	store.Err = &airtable.APIError{StatusCode: 503}

	_, err := FindByToken(context.Background(), store, "Users", "tok-1")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidToken))
	var apiErr *airtable.APIError
	assert.True(t, errors.As(err, &apiErr))
}
