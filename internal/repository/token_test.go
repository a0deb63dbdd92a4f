package repository

import (
	"testing"
	"time"

	"github.com/medtrack/medtrack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsumeTokenIsSingleUse(t *testing.T) {
	database := newTestDB(t)
	users := NewUserRepository(database)
	tokens := NewTokenRepository(database)

	user := seedUser(t, users, model.RolePatient, "jane@example.com")

	require.NoError(t, tokens.Create(&model.Token{
		UserID:    user.ID,
		Type:      model.TokenTypePasswordReset,
		Token:     "reset-abc",
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	consumed, err := tokens.ConsumeToken("reset-abc")
	require.NoError(t, err)
	assert.Equal(t, user.ID, consumed.UserID)
	assert.NotNil(t, consumed.UsedAt)

	// Second consumption must fail
	_, err = tokens.ConsumeToken("reset-abc")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestConsumeExpiredToken(t *testing.T) {
	database := newTestDB(t)
	users := NewUserRepository(database)
	tokens := NewTokenRepository(database)

	user := seedUser(t, users, model.RolePatient, "jane@example.com")

	require.NoError(t, tokens.Create(&model.Token{
		UserID:    user.ID,
		Type:      model.TokenTypePasswordReset,
		Token:     "expired-token",
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	_, err := tokens.ConsumeToken("expired-token")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestDeleteByUserAndType(t *testing.T) {
	database := newTestDB(t)
	users := NewUserRepository(database)
	tokens := NewTokenRepository(database)

	user := seedUser(t, users, model.RolePatient, "jane@example.com")

	require.NoError(t, tokens.Create(&model.Token{
		UserID:    user.ID,
		Type:      model.TokenTypePasswordReset,
		Token:     "old-link",
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	require.NoError(t, tokens.DeleteByUserAndType(user.ID, model.TokenTypePasswordReset))

	_, err := tokens.ConsumeToken("old-link")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}
