package ui

import (
	"github.com/medtrack/medtrack/internal/markdown"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// LegalPage renders a markdown-backed content page (privacy, terms).
func LegalPage(pc PageContext, doc *markdown.Document) g.Node {
	return Layout(pc,
		h.Article(
			h.Class("prose prose-slate max-w-3xl mx-auto"),
			h.H1(g.Text(doc.Meta.Title)),
			g.If(doc.Meta.Updated != "",
				h.P(h.Class("text-sm text-slate-500"), g.Textf("Last updated %s", doc.Meta.Updated)),
			),
			g.Raw(string(doc.Content)),
		),
	)
}
