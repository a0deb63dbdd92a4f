package service

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/medtrack/medtrack/internal/config"
	"github.com/medtrack/medtrack/internal/db"
	"github.com/medtrack/medtrack/internal/model"
	"github.com/medtrack/medtrack/internal/repository"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

type testEnv struct {
	cfg          *config.Config
	db           *sqlx.DB
	users        repository.UserRepository
	profiles     repository.ProfileRepository
	tokens       repository.TokenRepository
	auth         *AuthService
	appointments *AppointmentService
	profileSvc   *ProfileService
}

// newTestEnv wires the services over an in-memory database. Email runs in
// dev mode (logged, not sent) because no API key is configured.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	database, err := sqlx.Connect("sqlite", ":memory:")
	require.NoError(t, err)
	database.SetMaxOpenConns(1)
	t.Cleanup(func() { database.Close() })
	require.NoError(t, db.RunMigrations(database.DB, "sqlite"))

	cfg := &config.Config{
		AppName:                  "MedTrack",
		AppEnv:                   "development",
		AppURL:                   "http://localhost:8090",
		JWTSecret:                "test-secret-do-not-use-in-prod",
		JWTExpiry:                time.Hour,
		TokenPasswordResetExpiry: time.Hour,
		EmailFrom:                "noreply@medtrack.example",
	}

	users := repository.NewUserRepository(database)
	profiles := repository.NewProfileRepository(database)
	tokens := repository.NewTokenRepository(database)
	appointments := repository.NewAppointmentRepository(database)

	emails := NewEmailService(cfg)

	return &testEnv{
		cfg:          cfg,
		db:           database,
		users:        users,
		profiles:     profiles,
		tokens:       tokens,
		auth:         NewAuthService(cfg, users, profiles, tokens, emails),
		appointments: NewAppointmentService(appointments, users, profiles, emails),
		profileSvc:   NewProfileService(profiles),
	}
}

const testPassword = "correct horse battery staple"

func (e *testEnv) signupPatient(t *testing.T, email string) *model.User {
	t.Helper()

	user, err := e.auth.Signup(SignupInput{
		Role:     model.RolePatient,
		Name:     "Jane Doe",
		Email:    email,
		Password: testPassword,
		Age:      "34",
		Mobile:   "555-0100-12",
		Address:  "12 Elm St",
	})
	require.NoError(t, err)
	return user
}

func (e *testEnv) signupDoctor(t *testing.T, email string) *model.User {
	t.Helper()

	user, err := e.auth.Signup(SignupInput{
		Role:           model.RoleDoctor,
		Name:           "Gregory House",
		Email:          email,
		Password:       testPassword,
		Age:            "52",
		Mobile:         "555-0199-88",
		Specialization: "Diagnostics",
	})
	require.NoError(t, err)
	return user
}
