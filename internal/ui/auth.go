package ui

import (
	"github.com/medtrack/medtrack/internal/model"
	"github.com/medtrack/medtrack/internal/urls"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// SignupPage renders the registration form for both roles. Address applies
// to patients, specialization to doctors; the server keeps the relevant one.
func SignupPage(pc PageContext) g.Node {
	return Layout(pc,
		h.Div(
			h.Class("max-w-md mx-auto"),
			pageHeading("Create your account"),
			card(
				h.FormEl(
					h.Method("post"),
					h.Action(urls.Signup),
					csrfField(pc),
					roleSelect(),
					formField("name", "Full name", fieldOpts{Required: true, Placeholder: "Jane Doe"}),
					formField("email", "Email", fieldOpts{Type: "email", Required: true, Placeholder: "you@example.com"}),
					formField("age", "Age", fieldOpts{Type: "number"}),
					formField("mobile", "Mobile number", fieldOpts{Type: "tel", Placeholder: "555-0100"}),
					formField("address", "Address (patients)", fieldOpts{}),
					formField("specialization", "Specialization (doctors)", fieldOpts{Placeholder: "Cardiology"}),
					formField("password", "Password", fieldOpts{Type: "password", Required: true}),
					formField("confirm_password", "Confirm password", fieldOpts{Type: "password", Required: true}),
					submitButton("Sign up"),
				),
			),
			h.P(
				h.Class("mt-4 text-center text-sm text-slate-600"),
				g.Text("Already have an account? "),
				h.A(h.Href(urls.Login), h.Class("text-blue-700 hover:underline"), g.Text("Login")),
			),
		),
	)
}

func roleSelect() g.Node {
	return h.Div(
		h.Class("mb-4"),
		h.Label(
			h.For("role"),
			h.Class("block text-sm font-medium text-slate-700 mb-1"),
			g.Text("I am a"),
		),
		h.Select(
			h.Name("role"),
			h.ID("role"),
			h.Class("w-full rounded-md border border-slate-300 px-3 py-2 text-sm"),
			h.Option(h.Value(model.RolePatient), g.Text("Patient")),
			h.Option(h.Value(model.RoleDoctor), g.Text("Doctor")),
		),
	)
}

// LoginPage renders the role-aware login form.
func LoginPage(pc PageContext) g.Node {
	return Layout(pc,
		h.Div(
			h.Class("max-w-md mx-auto"),
			pageHeading("Login"),
			card(
				h.FormEl(
					h.Method("post"),
					h.Action(urls.Login),
					csrfField(pc),
					roleSelect(),
					formField("email", "Email", fieldOpts{Type: "email", Required: true}),
					formField("password", "Password", fieldOpts{Type: "password", Required: true}),
					submitButton("Login"),
				),
			),
			h.Div(
				h.Class("mt-4 text-center text-sm text-slate-600 space-y-1"),
				h.P(
					h.A(h.Href(urls.ForgotPassword), h.Class("text-blue-700 hover:underline"), g.Text("Forgot your password?")),
				),
				h.P(
					g.Text("New here? "),
					h.A(h.Href(urls.Signup), h.Class("text-blue-700 hover:underline"), g.Text("Create an account")),
				),
			),
		),
	)
}

// ForgotPasswordPage asks for the account email to send a reset link.
func ForgotPasswordPage(pc PageContext) g.Node {
	return Layout(pc,
		h.Div(
			h.Class("max-w-md mx-auto"),
			pageHeading("Forgot password"),
			card(
				h.P(
					h.Class("text-sm text-slate-600 mb-4"),
					g.Text("Enter your email and we will send you a link to reset your password."),
				),
				h.FormEl(
					h.Method("post"),
					h.Action(urls.ForgotPassword),
					csrfField(pc),
					formField("email", "Email", fieldOpts{Type: "email", Required: true}),
					submitButton("Send reset link"),
				),
			),
		),
	)
}

// ResetPasswordPage lets the user choose a new password via an emailed token.
func ResetPasswordPage(pc PageContext, token string) g.Node {
	return Layout(pc,
		h.Div(
			h.Class("max-w-md mx-auto"),
			pageHeading("Choose a new password"),
			card(
				h.FormEl(
					h.Method("post"),
					h.Action(urls.ResetPassword(token)),
					csrfField(pc),
					formField("password", "New password", fieldOpts{Type: "password", Required: true}),
					formField("confirm_password", "Confirm new password", fieldOpts{Type: "password", Required: true}),
					submitButton("Reset password"),
				),
			),
		),
	)
}
