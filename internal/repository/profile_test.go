package repository

import (
	"testing"

	"github.com/medtrack/medtrack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileCreateAndUpdate(t *testing.T) {
	database := newTestDB(t)
	users := NewUserRepository(database)
	profiles := NewProfileRepository(database)

	user := seedUser(t, users, model.RolePatient, "jane@example.com")

	profile := &model.Profile{
		UserID:  user.ID,
		Name:    "Jane Doe",
		Age:     34,
		Address: "12 Elm St",
		Mobile:  "555-0100",
	}
	require.NoError(t, profiles.Create(profile))
	assert.NotEmpty(t, profile.ID, "Create assigns an ID")

	loaded, err := profiles.ByUserID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", loaded.Name)
	assert.Equal(t, 34, loaded.Age)

	loaded.Address = "34 Oak Ave"
	require.NoError(t, profiles.Update(loaded))

	reloaded, err := profiles.ByUserID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "34 Oak Ave", reloaded.Address)
}

func TestProfileByUserIDs(t *testing.T) {
	database := newTestDB(t)
	users := NewUserRepository(database)
	profiles := NewProfileRepository(database)

	a := seedUser(t, users, model.RolePatient, "a@example.com")
	b := seedUser(t, users, model.RoleDoctor, "b@example.com")

	require.NoError(t, profiles.Create(&model.Profile{UserID: a.ID, Name: "Alice"}))
	require.NoError(t, profiles.Create(&model.Profile{UserID: b.ID, Name: "Bob"}))

	byID, err := profiles.ByUserIDs([]string{a.ID, b.ID, "missing"})
	require.NoError(t, err)
	assert.Len(t, byID, 2)
	assert.Equal(t, "Alice", byID[a.ID].Name)
	assert.Equal(t, "Bob", byID[b.ID].Name)

	empty, err := profiles.ByUserIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestProfileNotFound(t *testing.T) {
	database := newTestDB(t)
	profiles := NewProfileRepository(database)

	_, err := profiles.ByUserID("missing")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
