package service

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/medtrack/medtrack/internal/config"
	"github.com/medtrack/medtrack/internal/model"
	"github.com/medtrack/medtrack/internal/repository"
	"github.com/medtrack/medtrack/internal/urls"
	"github.com/medtrack/medtrack/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

const authCookieName = "auth_token"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// SignupInput carries the registration form fields. Address is used for
// patients, Specialization for doctors; the other is ignored.
type SignupInput struct {
	Role           string
	Name           string
	Email          string
	Password       string
	Age            string
	Mobile         string
	Address        string
	Specialization string
}

type AuthService struct {
	cfg      *config.Config
	users    repository.UserRepository
	profiles repository.ProfileRepository
	tokens   repository.TokenRepository
	emails   *EmailService
}

func NewAuthService(
	cfg *config.Config,
	users repository.UserRepository,
	profiles repository.ProfileRepository,
	tokens repository.TokenRepository,
	emails *EmailService,
) *AuthService {
	return &AuthService{
		cfg:      cfg,
		users:    users,
		profiles: profiles,
		tokens:   tokens,
		emails:   emails,
	}
}

// Signup registers a new patient or doctor account with its profile.
func (s *AuthService) Signup(input SignupInput) (*model.User, error) {
	if input.Role != model.RolePatient && input.Role != model.RoleDoctor {
		return nil, fmt.Errorf("invalid role: %s", input.Role)
	}

	err := validation.ValidateName(input.Name)
	if err != nil {
		return nil, err
	}

	err = validation.ValidateEmail(input.Email)
	if err != nil {
		return nil, err
	}

	err = validation.ValidatePassword(input.Password)
	if err != nil {
		return nil, err
	}

	age := 0
	if input.Age != "" {
		age, err = validation.ParseAge(input.Age)
		if err != nil {
			return nil, err
		}
	}

	if input.Mobile != "" {
		err = validation.ValidateMobile(input.Mobile)
		if err != nil {
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	hashStr := string(hash)

	user := &model.User{
		ID:           uuid.New().String(),
		Role:         input.Role,
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: &hashStr,
		CreatedAt:    time.Now(),
	}

	err = s.users.Create(user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	profile := &model.Profile{
		UserID: user.ID,
		Name:   strings.TrimSpace(input.Name),
		Age:    age,
		Mobile: strings.TrimSpace(input.Mobile),
	}
	if user.IsPatient() {
		profile.Address = strings.TrimSpace(input.Address)
	} else {
		profile.Specialization = strings.TrimSpace(input.Specialization)
	}

	err = s.profiles.Create(profile)
	if err != nil {
		// Roll back the orphaned user so the email can be reused
		_ = s.users.Delete(user.ID)
		return nil, fmt.Errorf("create profile: %w", err)
	}

	// Welcome email is best effort, signup already succeeded
	err = s.emails.SendWelcome(user.Email, profile.Name, user.Role)
	if err != nil {
		slog.Error("failed to send welcome email", "error", err, "user_id", user.ID)
	}

	return user, nil
}

// Login verifies credentials and the selected role. Role mismatches report
// the same error as bad credentials to avoid leaking account existence.
func (s *AuthService) Login(email, password, role string) (*model.User, error) {
	user, err := s.users.ByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Equalize timing with a throwaway hash comparison
			_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$invalidinvalidinvalidinvalidinvalidinvalid"), []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.HasPassword() {
		return nil, ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if role != "" && user.Role != role {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// jwtClaims is the auth cookie payload.
type jwtClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// GenerateJWT creates a signed session token for the user.
func (s *AuthService) GenerateJWT(userID string) (string, error) {
	claims := jwtClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.cfg.JWTExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    s.cfg.AppName,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// VerifyJWT validates a session token and returns the user ID.
func (s *AuthService) VerifyJWT(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwtClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwtClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}

	return claims.UserID, nil
}

// UserFromToken resolves a session token to its user and profile.
// The profile may be nil when none exists yet.
func (s *AuthService) UserFromToken(tokenString string) (*model.User, *model.Profile, error) {
	userID, err := s.VerifyJWT(tokenString)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.users.ByID(userID)
	if err != nil {
		return nil, nil, err
	}

	profile, err := s.profiles.ByUserID(userID)
	if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, nil, err
	}

	return user, profile, nil
}

// SetJWTCookie writes the session cookie.
func (s *AuthService) SetJWTCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.cfg.JWTExpiry.Seconds()),
	})
}

// ClearJWTCookie removes the session cookie (logout).
func (s *AuthService) ClearJWTCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   s.cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// JWTCookie reads the session cookie from the request, empty when absent.
func (s *AuthService) JWTCookie(r *http.Request) string {
	cookie, err := r.Cookie(authCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// RequestPasswordReset creates a one-time reset token and emails the link.
// Unknown emails succeed silently so the form cannot enumerate accounts.
func (s *AuthService) RequestPasswordReset(email string) error {
	user, err := s.users.ByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			slog.Info("password reset requested for unknown email", "email", email)
			return nil
		}
		return err
	}

	// Invalidate earlier unused tokens, only the newest link works
	err = s.tokens.DeleteByUserAndType(user.ID, model.TokenTypePasswordReset)
	if err != nil {
		return err
	}

	raw := make([]byte, 32)
	_, err = rand.Read(raw)
	if err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}
	tokenValue := base64.RawURLEncoding.EncodeToString(raw)

	err = s.tokens.Create(&model.Token{
		UserID:    user.ID,
		Type:      model.TokenTypePasswordReset,
		Token:     tokenValue,
		ExpiresAt: time.Now().Add(s.cfg.TokenPasswordResetExpiry),
	})
	if err != nil {
		return err
	}

	resetURL := s.cfg.AppURL + urls.ResetPassword(tokenValue)
	return s.emails.SendPasswordReset(user.Email, resetURL)
}

// ResetPassword consumes a reset token and sets the new password.
func (s *AuthService) ResetPassword(tokenValue, newPassword string) error {
	err := validation.ValidatePassword(newPassword)
	if err != nil {
		return err
	}

	token, err := s.tokens.ConsumeToken(tokenValue)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return ErrInvalidToken
		}
		return err
	}

	if token.Type != model.TokenTypePasswordReset {
		return ErrInvalidToken
	}

	user, err := s.users.ByID(token.UserID)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	hashStr := string(hash)

	user.PasswordHash = &hashStr
	return s.users.Update(user)
}

// UpdatePassword changes the password after verifying the current one.
func (s *AuthService) UpdatePassword(userID, currentPassword, newPassword string) error {
	user, err := s.users.ByID(userID)
	if err != nil {
		return err
	}

	if !user.HasPassword() {
		return ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(currentPassword))
	if err != nil {
		return ErrInvalidCredentials
	}

	err = validation.ValidatePassword(newPassword)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	hashStr := string(hash)

	user.PasswordHash = &hashStr
	return s.users.Update(user)
}
