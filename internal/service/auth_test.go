package service

import (
	"testing"
	"time"

	"github.com/medtrack/medtrack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupCreatesUserAndProfile(t *testing.T) {
	env := newTestEnv(t)

	user := env.signupPatient(t, "jane@example.com")
	assert.Equal(t, model.RolePatient, user.Role)
	assert.True(t, user.HasPassword())

	profile, err := env.profiles.ByUserID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", profile.Name)
	assert.Equal(t, 34, profile.Age)
	assert.Equal(t, "12 Elm St", profile.Address)
	assert.Empty(t, profile.Specialization, "patients have no specialization")
}

func TestSignupDoctorKeepsSpecialization(t *testing.T) {
	env := newTestEnv(t)

	doctor := env.signupDoctor(t, "house@example.com")

	profile, err := env.profiles.ByUserID(doctor.ID)
	require.NoError(t, err)
	assert.Equal(t, "Diagnostics", profile.Specialization)
	assert.Empty(t, profile.Address, "doctors have no address")
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.signupPatient(t, "jane@example.com")

	_, err := env.auth.Signup(SignupInput{
		Role:     model.RoleDoctor,
		Name:     "Other",
		Email:    "jane@example.com",
		Password: testPassword,
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignupRejectsInvalidInput(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Signup(SignupInput{Role: "admin", Name: "X", Email: "x@example.com", Password: testPassword})
	assert.Error(t, err, "unknown role")

	_, err = env.auth.Signup(SignupInput{Role: model.RolePatient, Name: "", Email: "x@example.com", Password: testPassword})
	assert.Error(t, err, "missing name")

	_, err = env.auth.Signup(SignupInput{Role: model.RolePatient, Name: "X", Email: "not-an-email", Password: testPassword})
	assert.Error(t, err, "bad email")

	_, err = env.auth.Signup(SignupInput{Role: model.RolePatient, Name: "X", Email: "x@example.com", Password: "short"})
	assert.Error(t, err, "weak password")
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	created := env.signupPatient(t, "jane@example.com")

	user, err := env.auth.Login("jane@example.com", testPassword, model.RolePatient)
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	// Email lookup is case and whitespace tolerant
	_, err = env.auth.Login("  Jane@Example.com ", testPassword, model.RolePatient)
	assert.NoError(t, err)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.signupPatient(t, "jane@example.com")

	_, err := env.auth.Login("jane@example.com", "wrong password!", model.RolePatient)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = env.auth.Login("nobody@example.com", testPassword, model.RolePatient)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Correct password, wrong role selected
	_, err = env.auth.Login("jane@example.com", testPassword, model.RoleDoctor)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestJWTRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	user := env.signupPatient(t, "jane@example.com")

	token, err := env.auth.GenerateJWT(user.ID)
	require.NoError(t, err)

	userID, err := env.auth.VerifyJWT(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)

	loaded, profile, err := env.auth.UserFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, loaded.ID)
	require.NotNil(t, profile)
	assert.Equal(t, "Jane Doe", profile.Name)
}

func TestVerifyJWTRejectsTampering(t *testing.T) {
	env := newTestEnv(t)
	user := env.signupPatient(t, "jane@example.com")

	token, err := env.auth.GenerateJWT(user.ID)
	require.NoError(t, err)

	_, err = env.auth.VerifyJWT(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = env.auth.VerifyJWT("not a token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResetPasswordFlow(t *testing.T) {
	env := newTestEnv(t)
	user := env.signupPatient(t, "jane@example.com")

	require.NoError(t, env.tokens.Create(&model.Token{
		UserID:    user.ID,
		Type:      model.TokenTypePasswordReset,
		Token:     "reset-xyz",
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	newPassword := "an entirely new passphrase"
	require.NoError(t, env.auth.ResetPassword("reset-xyz", newPassword))

	// Old password no longer works, new one does
	_, err := env.auth.Login("jane@example.com", testPassword, model.RolePatient)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = env.auth.Login("jane@example.com", newPassword, model.RolePatient)
	assert.NoError(t, err)

	// Token was consumed
	assert.ErrorIs(t, env.auth.ResetPassword("reset-xyz", "yet another passphrase"), ErrInvalidToken)
}

func TestRequestPasswordResetUnknownEmailIsSilent(t *testing.T) {
	env := newTestEnv(t)

	assert.NoError(t, env.auth.RequestPasswordReset("nobody@example.com"))
}

func TestUpdatePassword(t *testing.T) {
	env := newTestEnv(t)
	user := env.signupPatient(t, "jane@example.com")

	newPassword := "a fresh longer passphrase"
	require.NoError(t, env.auth.UpdatePassword(user.ID, testPassword, newPassword))

	_, err := env.auth.Login("jane@example.com", newPassword, model.RolePatient)
	assert.NoError(t, err)

	// Wrong current password is rejected
	err = env.auth.UpdatePassword(user.ID, "guess", "whatever long password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
