package middleware

import (
	"net/http"

	"github.com/medtrack/medtrack/internal/ctxkeys"
	"github.com/medtrack/medtrack/internal/flash"
	"github.com/medtrack/medtrack/internal/model"
	"github.com/medtrack/medtrack/internal/service"
	"github.com/medtrack/medtrack/internal/urls"
)

// Auth resolves the session cookie to a user and profile and stores both in
// the request context. Requests without a valid session pass through
// unauthenticated; route-level guards decide what needs a login.
func Auth(auth *service.AuthService, files *service.FileService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := auth.JWTCookie(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, profile, err := auth.UserFromToken(token)
			if err != nil {
				// Stale or tampered cookie, drop it
				auth.ClearJWTCookie(w)
				next.ServeHTTP(w, r)
				return
			}

			files.PopulateAvatar(user)

			ctx := ctxkeys.WithUser(r.Context(), user)
			if profile != nil {
				ctx = ctxkeys.WithProfile(ctx, profile)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth redirects unauthenticated requests to the login page.
func RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := ctxkeys.User(r.Context())
		if user == nil {
			flash.Danger(w, "Please log in to continue.")
			http.Redirect(w, r, urls.Login, http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}

// RequirePatient guards patient-only routes. Logged-in doctors are sent to
// their own dashboard instead of an error page.
func RequirePatient(next http.HandlerFunc) http.HandlerFunc {
	return requireRole(model.RolePatient, next)
}

// RequireDoctor guards doctor-only routes.
func RequireDoctor(next http.HandlerFunc) http.HandlerFunc {
	return requireRole(model.RoleDoctor, next)
}

func requireRole(role string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := ctxkeys.User(r.Context())
		if user == nil {
			flash.Danger(w, "Please log in to continue.")
			http.Redirect(w, r, urls.Login, http.StatusSeeOther)
			return
		}

		if user.Role != role {
			flash.Danger(w, "You do not have access to that page.")
			http.Redirect(w, r, urls.DashboardFor(user.Role), http.StatusSeeOther)
			return
		}

		next(w, r)
	}
}

// RequireGuest sends already logged-in users to their dashboard. Used on
// the login and signup pages.
func RequireGuest(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := ctxkeys.User(r.Context())
		if user != nil {
			http.Redirect(w, r, urls.DashboardFor(user.Role), http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}
