package ui

import (
	"github.com/medtrack/medtrack/internal/urls"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// HomePage is the public landing page.
func HomePage(pc PageContext) g.Node {
	return Layout(pc,
		h.Section(
			h.Class("py-16 text-center"),
			h.H1(
				h.Class("text-4xl font-bold tracking-tight"),
				g.Text("Healthcare appointments, simplified"),
			),
			h.P(
				h.Class("mt-4 text-lg text-slate-600 max-w-2xl mx-auto"),
				g.Textf("%s connects patients and doctors. Book appointments, describe your symptoms, and receive your diagnosis and treatment plan online.", pc.AppName),
			),
			h.Div(
				h.Class("mt-8 flex justify-center gap-4"),
				h.A(
					h.Href(urls.Signup),
					h.Class("rounded-md bg-blue-600 px-6 py-3 text-white font-medium hover:bg-blue-700"),
					g.Text("Get started"),
				),
				h.A(
					h.Href(urls.Login),
					h.Class("rounded-md border border-slate-300 px-6 py-3 font-medium hover:bg-slate-100"),
					g.Text("Login"),
				),
			),
		),
		h.Section(
			h.Class("grid gap-6 md:grid-cols-3 py-8"),
			featureCard("For patients", "Book appointments with the right specialist and track their status from your dashboard."),
			featureCard("For doctors", "Review incoming requests, record diagnoses, and share treatment plans with your patients."),
			featureCard("Stay notified", "Email notifications keep both sides up to date, from booking to completed diagnosis."),
		),
		newsletterSection(pc),
	)
}

func newsletterSection(pc PageContext) g.Node {
	return h.Section(
		h.Class("py-12"),
		card(
			h.Div(
				h.Class("md:flex md:items-center md:justify-between gap-8"),
				h.Div(
					h.H2(h.Class("font-semibold"), g.Text("Health tips in your inbox")),
					h.P(h.Class("text-sm text-slate-600 mt-1"), g.Text("Occasional updates and practical health advice. No spam.")),
				),
				h.FormEl(
					h.Method("post"),
					h.Action(urls.NewsletterSubscribe),
					h.Class("mt-4 md:mt-0 flex gap-2"),
					csrfField(pc),
					h.Input(
						h.Type("email"),
						h.Name("email"),
						h.Placeholder("you@example.com"),
						h.Required(),
						h.Class("rounded-md border border-slate-300 px-3 py-2 text-sm"),
					),
					submitButton("Subscribe"),
				),
			),
		),
	)
}

func featureCard(title, body string) g.Node {
	return card(
		h.H2(h.Class("font-semibold mb-2"), g.Text(title)),
		h.P(h.Class("text-sm text-slate-600"), g.Text(body)),
	)
}
