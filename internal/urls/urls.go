// Package urls centralizes route paths so views and handlers stay in sync
// with the router. Parameterized routes get builder functions.
package urls

import "github.com/medtrack/medtrack/internal/model"

const (
	Home   = "/"
	Signup = "/signup"
	Login  = "/login"
	Logout = "/logout"

	PatientDashboard = "/patient/dashboard"
	DoctorDashboard  = "/doctor/dashboard"
	PatientProfile   = "/patient/profile"
	DoctorProfile    = "/doctor/profile"

	BookAppointment = "/book-appointment"

	ForgotPassword = "/forgot-password"

	Account             = "/account"
	AccountPassword     = "/account/password"
	AccountAvatar       = "/account/avatar"
	AccountProfile      = "/account/profile"
	NewsletterSubscribe = "/newsletter/subscribe"
	LegalPrivacy        = "/legal/privacy"
	LegalTermsOfService = "/legal/terms"
)

// ViewAppointment is the patient's appointment detail page.
func ViewAppointment(id string) string {
	return "/view-appointment/" + id
}

// DoctorViewAppointment is the doctor's appointment detail page.
func DoctorViewAppointment(id string) string {
	return "/doctor/view-appointment/" + id
}

// SubmitDiagnosis is the form target for completing an appointment.
func SubmitDiagnosis(id string) string {
	return "/doctor/submit-diagnosis/" + id
}

// ResetPassword is the emailed password reset link path.
func ResetPassword(token string) string {
	return ForgotPassword + "/" + token
}

// DashboardFor returns the role-appropriate dashboard path.
func DashboardFor(role string) string {
	if role == model.RoleDoctor {
		return DoctorDashboard
	}
	return PatientDashboard
}

// ProfileFor returns the role-appropriate profile page path.
func ProfileFor(role string) string {
	if role == model.RoleDoctor {
		return DoctorProfile
	}
	return PatientProfile
}
