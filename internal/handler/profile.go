package handler

import (
	"net/http"

	"github.com/medtrack/medtrack/internal/ctxkeys"
	"github.com/medtrack/medtrack/internal/model"
	"github.com/medtrack/medtrack/internal/ui"
)

type profileHandler struct{}

func NewProfileHandler() *profileHandler {
	return &profileHandler{}
}

func (h *profileHandler) PatientProfilePage(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	profile := profileOrEmpty(r, user.ID)

	pc := ui.NewPageContext(w, r, "Patient Profile")
	ui.Render(w, r, ui.PatientProfilePage(pc, user, profile))
}

func (h *profileHandler) DoctorProfilePage(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	profile := profileOrEmpty(r, user.ID)

	pc := ui.NewPageContext(w, r, "Doctor Profile")
	ui.Render(w, r, ui.DoctorProfilePage(pc, user, profile))
}

// profileOrEmpty never returns nil, accounts without a profile row still
// render the page with empty field slots.
func profileOrEmpty(r *http.Request, userID string) *model.Profile {
	if profile := ctxkeys.Profile(r.Context()); profile != nil {
		return profile
	}
	return &model.Profile{UserID: userID}
}
