package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/medtrack/medtrack/internal/ctxkeys"
	"github.com/medtrack/medtrack/internal/model"
	"github.com/medtrack/medtrack/internal/urls"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okPage(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func requestAs(user *model.User, target string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if user != nil {
		req = req.WithContext(ctxkeys.WithUser(req.Context(), user))
	}
	return req
}

func hasFlashCookie(rec *httptest.ResponseRecorder) bool {
	for _, c := range rec.Result().Cookies() {
		if c.Name == "medtrack_flash" && c.MaxAge >= 0 {
			return true
		}
	}
	return false
}

func TestRequireAuthRedirectsGuestsToLogin(t *testing.T) {
	rec := httptest.NewRecorder()
	RequireAuth(okPage)(rec, requestAs(nil, "/account"))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, urls.Login, rec.Header().Get("Location"))
	assert.True(t, hasFlashCookie(rec), "the redirect carries a flash message")
}

func TestRequireAuthPassesLoggedInUsers(t *testing.T) {
	patient := &model.User{ID: "u1", Role: model.RolePatient}

	rec := httptest.NewRecorder()
	RequireAuth(okPage)(rec, requestAs(patient, "/account"))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequirePatientRedirectsGuestsToLogin(t *testing.T) {
	rec := httptest.NewRecorder()
	RequirePatient(okPage)(rec, requestAs(nil, "/patient/dashboard"))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, urls.Login, rec.Header().Get("Location"))
	assert.True(t, hasFlashCookie(rec))
}

func TestRequirePatientSendsDoctorsToTheirDashboard(t *testing.T) {
	doctor := &model.User{ID: "d1", Role: model.RoleDoctor}

	rec := httptest.NewRecorder()
	RequirePatient(okPage)(rec, requestAs(doctor, "/patient/dashboard"))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, urls.DoctorDashboard, rec.Header().Get("Location"))
	assert.True(t, hasFlashCookie(rec))
}

func TestRequireDoctorSendsPatientsToTheirDashboard(t *testing.T) {
	patient := &model.User{ID: "u1", Role: model.RolePatient}

	rec := httptest.NewRecorder()
	RequireDoctor(okPage)(rec, requestAs(patient, "/doctor/dashboard"))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, urls.PatientDashboard, rec.Header().Get("Location"))
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	patient := &model.User{ID: "u1", Role: model.RolePatient}
	doctor := &model.User{ID: "d1", Role: model.RoleDoctor}

	rec := httptest.NewRecorder()
	RequirePatient(okPage)(rec, requestAs(patient, "/patient/dashboard"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	RequireDoctor(okPage)(rec, requestAs(doctor, "/doctor/dashboard"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireGuestRedirectsLoggedInUsers(t *testing.T) {
	patient := &model.User{ID: "u1", Role: model.RolePatient}

	rec := httptest.NewRecorder()
	RequireGuest(okPage)(rec, requestAs(patient, "/login"))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, urls.PatientDashboard, rec.Header().Get("Location"))
}

func TestRequireGuestPassesAnonymousVisitors(t *testing.T) {
	rec := httptest.NewRecorder()
	RequireGuest(okPage)(rec, requestAs(nil, "/login"))

	assert.Equal(t, http.StatusOK, rec.Code)
}
