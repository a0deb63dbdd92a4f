package ui

import (
	"strconv"

	"github.com/medtrack/medtrack/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// PatientProfilePage shows the patient's own profile fields. Empty fields
// render as empty value slots rather than being omitted.
func PatientProfilePage(pc PageContext, user *model.User, profile *model.Profile) g.Node {
	return Layout(pc,
		h.Div(
			h.Class("max-w-lg mx-auto"),
			pageHeading("Patient Profile"),
			card(
				profileHeader(user, profile),
				detailList(
					detailRow("Name", profile.Name),
					detailRow("Email", user.Email),
					detailRow("Age", formatAge(profile.Age)),
					detailRow("Address", profile.Address),
					detailRow("Mobile", profile.Mobile),
				),
			),
		),
	)
}

// DoctorProfilePage shows the doctor's own profile fields.
func DoctorProfilePage(pc PageContext, user *model.User, profile *model.Profile) g.Node {
	return Layout(pc,
		h.Div(
			h.Class("max-w-lg mx-auto"),
			pageHeading("Doctor Profile"),
			card(
				profileHeader(user, profile),
				detailList(
					detailRow("Name", profile.Name),
					detailRow("Email", user.Email),
					detailRow("Age", formatAge(profile.Age)),
					detailRow("Specialization", profile.Specialization),
					detailRow("Mobile", profile.Mobile),
				),
			),
		),
	)
}

func profileHeader(user *model.User, profile *model.Profile) g.Node {
	initial := "?"
	if profile.Name != "" {
		initial = string([]rune(profile.Name)[0:1])
	}

	return h.Div(
		h.Class("flex items-center gap-4 pb-4 mb-2 border-b border-slate-100"),
		g.If(user.AvatarURL != "",
			h.Img(
				h.Src(user.AvatarURL),
				h.Alt("Avatar"),
				h.Class("h-16 w-16 rounded-full object-cover"),
			),
		),
		g.If(user.AvatarURL == "",
			h.Div(
				h.Class("flex h-16 w-16 items-center justify-center rounded-full bg-blue-100 text-xl font-semibold text-blue-700"),
				g.Text(initial),
			),
		),
		h.Div(
			h.P(h.Class("font-semibold"), g.Text(roleTitle(user))),
			h.P(h.Class("text-sm text-slate-500"), g.Textf("Member since %s", user.CreatedAt.Format("January 2006"))),
		),
	)
}

// formatAge renders a zero age as an empty slot, the record has no value yet.
func formatAge(age int) string {
	if age <= 0 {
		return ""
	}
	return strconv.Itoa(age)
}

var titleCaser = cases.Title(language.English)

func roleTitle(user *model.User) string {
	return titleCaser.String(user.Role)
}
