package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/medtrack/medtrack/internal/flash"
	"github.com/medtrack/medtrack/internal/service"
	"github.com/medtrack/medtrack/internal/ui"
	"github.com/medtrack/medtrack/internal/urls"
)

type authHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *authHandler {
	return &authHandler{authService: authService}
}

func (h *authHandler) SignupPage(w http.ResponseWriter, r *http.Request) {
	pc := ui.NewPageContext(w, r, "Sign up")
	ui.Render(w, r, ui.SignupPage(pc))
}

func (h *authHandler) Signup(w http.ResponseWriter, r *http.Request) {
	input := service.SignupInput{
		Role:           r.FormValue("role"),
		Name:           r.FormValue("name"),
		Email:          r.FormValue("email"),
		Password:       r.FormValue("password"),
		Age:            strings.TrimSpace(r.FormValue("age")),
		Mobile:         r.FormValue("mobile"),
		Address:        r.FormValue("address"),
		Specialization: r.FormValue("specialization"),
	}

	if input.Password != r.FormValue("confirm_password") {
		flash.Danger(w, "Passwords do not match.")
		http.Redirect(w, r, urls.Signup, http.StatusSeeOther)
		return
	}

	_, err := h.authService.Signup(input)
	if err != nil {
		flash.Danger(w, userMessage(err, "Could not create your account. Please try again."))
		http.Redirect(w, r, urls.Signup, http.StatusSeeOther)
		return
	}

	flash.Success(w, "Signup successful. Please log in.")
	http.Redirect(w, r, urls.Login, http.StatusSeeOther)
}

func (h *authHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	pc := ui.NewPageContext(w, r, "Login")
	ui.Render(w, r, ui.LoginPage(pc))
}

func (h *authHandler) Login(w http.ResponseWriter, r *http.Request) {
	role := r.FormValue("role")

	user, err := h.authService.Login(r.FormValue("email"), r.FormValue("password"), role)
	if err != nil {
		flash.Danger(w, "Invalid credentials or role mismatch.")
		http.Redirect(w, r, urls.Login, http.StatusSeeOther)
		return
	}

	token, err := h.authService.GenerateJWT(user.ID)
	if err != nil {
		slog.Error("failed to generate session token", "error", err, "user_id", user.ID)
		flash.Danger(w, "Something went wrong. Please try again.")
		http.Redirect(w, r, urls.Login, http.StatusSeeOther)
		return
	}

	h.authService.SetJWTCookie(w, token)
	flash.Success(w, "Login successful!")
	http.Redirect(w, r, urls.DashboardFor(user.Role), http.StatusSeeOther)
}

func (h *authHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.ClearJWTCookie(w)
	flash.Success(w, "Logged out successfully.")
	http.Redirect(w, r, urls.Login, http.StatusSeeOther)
}

func (h *authHandler) ForgotPasswordPage(w http.ResponseWriter, r *http.Request) {
	pc := ui.NewPageContext(w, r, "Forgot password")
	ui.Render(w, r, ui.ForgotPasswordPage(pc))
}

func (h *authHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	err := h.authService.RequestPasswordReset(r.FormValue("email"))
	if err != nil {
		slog.Error("failed to request password reset", "error", err)
	}

	// Always the same message, the form must not leak which emails exist
	flash.Success(w, "If that email is registered, a reset link is on its way.")
	http.Redirect(w, r, urls.Login, http.StatusSeeOther)
}

func (h *authHandler) ResetPasswordPage(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	if token == "" {
		http.Redirect(w, r, urls.ForgotPassword, http.StatusSeeOther)
		return
	}

	pc := ui.NewPageContext(w, r, "Reset password")
	ui.Render(w, r, ui.ResetPasswordPage(pc, token))
}

func (h *authHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	password := r.FormValue("password")

	if password != r.FormValue("confirm_password") {
		flash.Danger(w, "Passwords do not match.")
		http.Redirect(w, r, urls.ResetPassword(token), http.StatusSeeOther)
		return
	}

	err := h.authService.ResetPassword(token, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			flash.Danger(w, "This reset link is invalid or has expired. Please request a new one.")
			http.Redirect(w, r, urls.ForgotPassword, http.StatusSeeOther)
			return
		}
		flash.Danger(w, userMessage(err, "Could not reset your password. Please try again."))
		http.Redirect(w, r, urls.ResetPassword(token), http.StatusSeeOther)
		return
	}

	flash.Success(w, "Password updated. Please log in.")
	http.Redirect(w, r, urls.Login, http.StatusSeeOther)
}
