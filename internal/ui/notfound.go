package ui

import (
	"github.com/medtrack/medtrack/internal/urls"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// NotFoundPage is the 404 page.
func NotFoundPage(pc PageContext) g.Node {
	return Layout(pc,
		h.Div(
			h.Class("py-16 text-center"),
			h.H1(h.Class("text-5xl font-bold text-slate-300"), g.Text("404")),
			h.P(h.Class("mt-4 text-lg text-slate-600"), g.Text("The page you are looking for does not exist.")),
			h.A(
				h.Href(urls.Home),
				h.Class("mt-6 inline-block rounded-md bg-blue-600 px-6 py-3 text-white font-medium hover:bg-blue-700"),
				g.Text("Back home"),
			),
		),
	)
}
