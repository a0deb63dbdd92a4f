package repository

import (
	"testing"

	"github.com/medtrack/medtrack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreateAndLookup(t *testing.T) {
	database := newTestDB(t)
	users := NewUserRepository(database)

	created := seedUser(t, users, model.RolePatient, "jane@example.com")

	byID, err := users.ByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", byID.Email)
	assert.Equal(t, model.RolePatient, byID.Role)

	byEmail, err := users.ByEmail("jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
}

func TestUserDuplicateEmail(t *testing.T) {
	database := newTestDB(t)
	users := NewUserRepository(database)

	seedUser(t, users, model.RolePatient, "jane@example.com")

	hash := "$2a$10$x"
	err := users.Create(&model.User{
		ID:           "other-id",
		Role:         model.RoleDoctor,
		Email:        "jane@example.com",
		PasswordHash: &hash,
	})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestUserNotFound(t *testing.T) {
	database := newTestDB(t)
	users := NewUserRepository(database)

	_, err := users.ByID("missing")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = users.ByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserByRole(t *testing.T) {
	database := newTestDB(t)
	users := NewUserRepository(database)

	seedUser(t, users, model.RolePatient, "p1@example.com")
	seedUser(t, users, model.RoleDoctor, "d1@example.com")
	seedUser(t, users, model.RoleDoctor, "d2@example.com")

	doctors, err := users.ByRole(model.RoleDoctor)
	require.NoError(t, err)
	assert.Len(t, doctors, 2)
	for _, d := range doctors {
		assert.Equal(t, model.RoleDoctor, d.Role)
	}
}

func TestUserDelete(t *testing.T) {
	database := newTestDB(t)
	users := NewUserRepository(database)

	user := seedUser(t, users, model.RolePatient, "jane@example.com")

	require.NoError(t, users.Delete(user.ID))

	_, err := users.ByID(user.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	assert.ErrorIs(t, users.Delete(user.ID), ErrUserNotFound)
}
