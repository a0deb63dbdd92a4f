package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/medtrack/medtrack/internal/db"
	"github.com/medtrack/medtrack/internal/model"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// newTestDB opens an in-memory SQLite database with all migrations applied.
// One connection only, each connection would otherwise get its own database.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := sqlx.Connect("sqlite", ":memory:")
	require.NoError(t, err)
	database.SetMaxOpenConns(1)
	t.Cleanup(func() { database.Close() })

	require.NoError(t, db.RunMigrations(database.DB, "sqlite"))
	return database
}

func seedUser(t *testing.T, users UserRepository, role, email string) *model.User {
	t.Helper()

	hash := "$2a$10$testhashtesthashtesthashtesthashtesthashtesthashtesth"
	user := &model.User{
		ID:           uuid.New().String(),
		Role:         role,
		Email:        email,
		PasswordHash: &hash,
		CreatedAt:    time.Now(),
	}
	require.NoError(t, users.Create(user))
	return user
}
