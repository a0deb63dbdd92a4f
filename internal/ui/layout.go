package ui

import (
	"fmt"
	"net/http"
	"time"

	"github.com/medtrack/medtrack/internal/ctxkeys"
	"github.com/medtrack/medtrack/internal/flash"
	"github.com/medtrack/medtrack/internal/model"
	"github.com/medtrack/medtrack/internal/urls"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// htmx is loaded from the CDN; the CSP in middleware allows this origin.
const htmxCDN = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// PageContext carries the per-request values every page needs: the logged-in
// user, pending flash messages, and security tokens for forms and scripts.
type PageContext struct {
	Title     string
	AppName   string
	Path      string
	User      *model.User
	Profile   *model.Profile
	Flashes   []flash.Message
	CSRFToken string
	Nonce     string
}

// NewPageContext builds the page context from the request, consuming any
// queued flash messages in the process.
func NewPageContext(w http.ResponseWriter, r *http.Request, title string) PageContext {
	appName := "MedTrack"
	if cfg := ctxkeys.Config(r.Context()); cfg != nil {
		appName = cfg.AppName
	}

	return PageContext{
		Title:     title,
		AppName:   appName,
		Path:      ctxkeys.URLPath(r.Context()),
		User:      ctxkeys.User(r.Context()),
		Profile:   ctxkeys.Profile(r.Context()),
		Flashes:   flash.Pop(w, r),
		CSRFToken: ctxkeys.CSRFToken(r.Context()),
		Nonce:     ctxkeys.Nonce(r.Context()),
	}
}

// Layout is the shared page shell: head, navigation, flash banner, footer.
func Layout(pc PageContext, children ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(pageTitle(pc))),
				h.Link(h.Rel("stylesheet"), h.Href("/assets/css/main.css")),
				h.Script(h.Src(htmxCDN), h.Defer(), g.If(pc.Nonce != "", g.Attr("nonce", pc.Nonce))),
			),
			h.Body(
				h.Class("min-h-screen bg-slate-50 text-slate-900 flex flex-col"),
				navbar(pc),
				flashBanner(pc.Flashes),
				h.Main(
					h.Class("flex-1 container mx-auto max-w-5xl px-4 py-8"),
					g.Group(children),
				),
				footer(pc),
			),
		),
	)
}

func pageTitle(pc PageContext) string {
	if pc.Title == "" {
		return pc.AppName
	}
	return fmt.Sprintf("%s | %s", pc.Title, pc.AppName)
}

func navbar(pc PageContext) g.Node {
	return h.Nav(
		h.Class("bg-white border-b border-slate-200"),
		h.Div(
			h.Class("container mx-auto max-w-5xl px-4 h-14 flex items-center justify-between"),
			h.A(
				h.Href(urls.Home),
				h.Class("font-semibold text-lg text-blue-700"),
				g.Text(pc.AppName),
			),
			h.Div(
				h.Class("flex items-center gap-4 text-sm"),
				g.If(pc.User == nil, g.Group([]g.Node{
					navLink(pc, urls.Login, "Login"),
					h.A(
						h.Href(urls.Signup),
						h.Class("rounded-md bg-blue-600 px-3 py-1.5 text-white hover:bg-blue-700"),
						g.Text("Sign up"),
					),
				})),
				g.If(pc.User != nil, userNav(pc)),
			),
		),
	)
}

// userNav renders role-aware navigation for logged-in users.
func userNav(pc PageContext) g.Node {
	if pc.User == nil {
		return nil
	}

	links := []g.Node{
		navLink(pc, urls.DashboardFor(pc.User.Role), "Dashboard"),
	}

	if pc.User.IsPatient() {
		links = append(links, navLink(pc, urls.BookAppointment, "Book Appointment"))
	}

	links = append(links,
		navLink(pc, urls.ProfileFor(pc.User.Role), "Profile"),
		navLink(pc, urls.Account, "Account"),
		h.A(
			h.Href(urls.Logout),
			h.Class("rounded-md border border-slate-300 px-3 py-1.5 hover:bg-slate-100"),
			g.Text("Logout"),
		),
	)

	return g.Group(links)
}

func navLink(pc PageContext, href, label string) g.Node {
	class := "text-slate-600 hover:text-slate-900"
	if pc.Path == href {
		class = "text-blue-700 font-medium"
	}
	return h.A(h.Href(href), h.Class(class), g.Text(label))
}

func flashBanner(messages []flash.Message) g.Node {
	if len(messages) == 0 {
		return nil
	}

	return h.Div(
		h.Class("container mx-auto max-w-5xl px-4 pt-4 space-y-2"),
		g.Map(messages, func(m flash.Message) g.Node {
			class := "rounded-md border px-4 py-3 text-sm "
			switch m.Variant {
			case flash.VariantSuccess:
				class += "border-green-200 bg-green-50 text-green-800"
			case flash.VariantDanger:
				class += "border-red-200 bg-red-50 text-red-800"
			default:
				class += "border-blue-200 bg-blue-50 text-blue-800"
			}
			return h.Div(h.Class(class), h.Role("alert"), g.Text(m.Text))
		}),
	)
}

func footer(pc PageContext) g.Node {
	return h.Footer(
		h.Class("border-t border-slate-200 bg-white"),
		h.Div(
			h.Class("container mx-auto max-w-5xl px-4 py-6 flex items-center justify-between text-sm text-slate-500"),
			g.Textf("© %d %s", time.Now().Year(), pc.AppName),
			h.Div(
				h.Class("flex gap-4"),
				h.A(h.Href(urls.LegalPrivacy), h.Class("hover:text-slate-700"), g.Text("Privacy")),
				h.A(h.Href(urls.LegalTermsOfService), h.Class("hover:text-slate-700"), g.Text("Terms")),
			),
		),
	)
}
