package ui

import (
	"fmt"

	"github.com/medtrack/medtrack/internal/urls"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// AccountPage renders account settings: profile fields, avatar, password.
func AccountPage(pc PageContext) g.Node {
	return Layout(pc,
		h.Div(
			h.Class("max-w-lg mx-auto space-y-8"),
			pageHeading("Account settings"),
			profileSection(pc),
			avatarSection(pc),
			passwordSection(pc),
		),
	)
}

func profileSection(pc PageContext) g.Node {
	name, age, mobile, address, specialization := "", "", "", "", ""
	if pc.Profile != nil {
		name = pc.Profile.Name
		age = formatAge(pc.Profile.Age)
		mobile = pc.Profile.Mobile
		address = pc.Profile.Address
		specialization = pc.Profile.Specialization
	}

	fields := []g.Node{
		csrfField(pc),
		formField("name", "Full name", fieldOpts{Required: true, Value: name}),
		formField("age", "Age", fieldOpts{Type: "number", Value: age}),
		formField("mobile", "Mobile number", fieldOpts{Type: "tel", Value: mobile}),
	}
	if pc.User != nil && pc.User.IsDoctor() {
		fields = append(fields, formField("specialization", "Specialization", fieldOpts{Value: specialization}))
	} else {
		fields = append(fields, formField("address", "Address", fieldOpts{Value: address}))
	}
	fields = append(fields, submitButton("Save profile"))

	return h.Section(
		h.H2(h.Class("text-lg font-semibold mb-4"), g.Text("Profile")),
		card(
			h.FormEl(
				h.Method("post"),
				h.Action(urls.AccountProfile),
				g.Group(fields),
			),
		),
	)
}

// AvatarWidget is the avatar upload fragment, also swapped in by htmx after
// an upload or delete.
func AvatarWidget(pc PageContext) g.Node {
	avatarURL := ""
	if pc.User != nil {
		avatarURL = pc.User.AvatarURL
	}

	return h.Div(
		h.ID("avatar-widget"),
		h.Class("flex items-center gap-6"),
		g.If(avatarURL != "",
			h.Img(
				h.Src(avatarURL),
				h.Alt("Avatar"),
				h.Class("h-20 w-20 rounded-full object-cover"),
			),
		),
		g.If(avatarURL == "",
			h.Div(
				h.Class("flex h-20 w-20 items-center justify-center rounded-full bg-slate-200 text-sm text-slate-500"),
				g.Text("None"),
			),
		),
		h.Div(
			h.Class("space-y-2"),
			h.FormEl(
				hx.Post(urls.AccountAvatar),
				hx.Target("#avatar-widget"),
				hx.Swap("outerHTML"),
				hx.Encoding("multipart/form-data"),
				csrfField(pc),
				h.Input(
					h.Type("file"),
					h.Name("avatar"),
					h.Accept("image/jpeg,image/png,image/webp"),
					h.Class("block text-sm mb-2"),
					h.Required(),
				),
				submitButton("Upload"),
			),
			g.If(avatarURL != "",
				// DELETE sends form values as query params, so the CSRF
				// token goes in a header instead
				h.Button(
					hx.Delete(urls.AccountAvatar),
					hx.Target("#avatar-widget"),
					hx.Swap("outerHTML"),
					hx.Headers(fmt.Sprintf(`{"X-CSRF-Token": %q}`, pc.CSRFToken)),
					h.Type("button"),
					h.Class("text-sm text-red-600 hover:underline"),
					g.Text("Remove avatar"),
				),
			),
		),
	)
}

func avatarSection(pc PageContext) g.Node {
	return h.Section(
		h.H2(h.Class("text-lg font-semibold mb-4"), g.Text("Avatar")),
		card(AvatarWidget(pc)),
	)
}

func passwordSection(pc PageContext) g.Node {
	return h.Section(
		h.H2(h.Class("text-lg font-semibold mb-4"), g.Text("Change password")),
		card(
			h.FormEl(
				h.Method("post"),
				h.Action(urls.AccountPassword),
				csrfField(pc),
				formField("current_password", "Current password", fieldOpts{Type: "password", Required: true}),
				formField("new_password", "New password", fieldOpts{Type: "password", Required: true}),
				formField("confirm_password", "Confirm new password", fieldOpts{Type: "password", Required: true}),
				submitButton("Update password"),
			),
		),
	)
}
