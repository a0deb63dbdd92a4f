package routes

import (
	"io/fs"
	"net/http"

	"github.com/medtrack/medtrack/assets"
	"github.com/medtrack/medtrack/internal/app"
	"github.com/medtrack/medtrack/internal/handler"
	"github.com/medtrack/medtrack/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	home := handler.NewHomeHandler()
	auth := handler.NewAuthHandler(app.AuthService)
	dashboard := handler.NewDashboardHandler(app.AppointmentService)
	appointment := handler.NewAppointmentHandler(app.AppointmentService, app.ProfileService)
	profile := handler.NewProfileHandler()
	account := handler.NewAccountHandler(app.AuthService, app.ProfileService, app.FileService)
	legal := handler.NewLegalHandler(app.LegalService)
	newsletter := handler.NewNewsletterHandler(app.EmailService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	// Static files
	sub, _ := fs.Sub(assets.AssetsFS, ".")
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServer(http.FS(sub))))

	// Home
	mux.HandleFunc("GET /{$}", home.HomePage)

	// Content
	mux.HandleFunc("GET /legal/{page}", legal.ShowPage)

	// Newsletter
	mux.HandleFunc("POST /newsletter/subscribe", newsletter.Subscribe)

	// Auth (rate limited)
	rateLimiter := middleware.RateLimitAuth()

	mux.HandleFunc("GET /signup", middleware.RequireGuest(auth.SignupPage))
	mux.HandleFunc("POST /signup", rateLimiter(middleware.RequireGuest(auth.Signup)))
	mux.HandleFunc("GET /login", middleware.RequireGuest(auth.LoginPage))
	mux.HandleFunc("POST /login", rateLimiter(middleware.RequireGuest(auth.Login)))
	mux.HandleFunc("GET /logout", auth.Logout)

	// Password reset
	mux.HandleFunc("GET /forgot-password", middleware.RequireGuest(auth.ForgotPasswordPage))
	mux.HandleFunc("POST /forgot-password", rateLimiter(middleware.RequireGuest(auth.ForgotPassword)))
	mux.HandleFunc("GET /forgot-password/{token}", middleware.RequireGuest(auth.ResetPasswordPage))
	mux.HandleFunc("POST /forgot-password/{token}", rateLimiter(middleware.RequireGuest(auth.ResetPassword)))

	// ============================================================================
	// PATIENT ROUTES
	// ============================================================================

	mux.HandleFunc("GET /patient/dashboard", middleware.RequirePatient(dashboard.PatientDashboard))
	mux.HandleFunc("GET /patient/profile", middleware.RequirePatient(profile.PatientProfilePage))
	mux.HandleFunc("GET /book-appointment", middleware.RequirePatient(appointment.BookAppointmentPage))
	mux.HandleFunc("POST /book-appointment", middleware.RequirePatient(appointment.BookAppointment))
	mux.HandleFunc("GET /view-appointment/{id}", middleware.RequirePatient(appointment.PatientAppointment))

	// ============================================================================
	// DOCTOR ROUTES
	// ============================================================================

	mux.HandleFunc("GET /doctor/dashboard", middleware.RequireDoctor(dashboard.DoctorDashboard))
	mux.HandleFunc("GET /doctor/profile", middleware.RequireDoctor(profile.DoctorProfilePage))
	mux.HandleFunc("GET /doctor/view-appointment/{id}", middleware.RequireDoctor(appointment.DoctorAppointment))
	mux.HandleFunc("POST /doctor/submit-diagnosis/{id}", middleware.RequireDoctor(appointment.SubmitDiagnosis))

	// ============================================================================
	// ACCOUNT ROUTES (any logged-in role)
	// ============================================================================

	mux.HandleFunc("GET /account", middleware.RequireAuth(account.AccountPage))
	mux.HandleFunc("POST /account/profile", middleware.RequireAuth(account.UpdateProfile))
	mux.HandleFunc("POST /account/password", middleware.RequireAuth(account.ChangePassword))
	mux.HandleFunc("POST /account/avatar", middleware.RequireAuth(account.UploadAvatar))
	mux.HandleFunc("DELETE /account/avatar", middleware.RequireAuth(account.DeleteAvatar))

	// ============================================================================
	// FALLBACK
	// ============================================================================

	// 404
	mux.HandleFunc("/{path...}", home.NotFoundPage)

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.Config(app.Cfg), // Config must be first (needed by SecurityHeaders for S3 endpoint)
		middleware.NonceMiddleware, // Generate CSP nonce for each request (must be before SecurityHeaders)
		middleware.SecurityHeaders, // Security headers for all responses (XSS, clickjacking, etc.)
		middleware.RequestLogging,
		middleware.CSRFProtection, // CSRF protection for all state-changing requests
		middleware.Auth(app.AuthService, app.FileService),
		middleware.WithURLPath,
	)

	return handler
}
