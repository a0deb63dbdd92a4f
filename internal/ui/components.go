package ui

import (
	"github.com/medtrack/medtrack/internal/model"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// card is the standard white panel used across pages.
func card(children ...g.Node) g.Node {
	return h.Div(
		h.Class("rounded-lg border border-slate-200 bg-white p-6 shadow-sm"),
		g.Group(children),
	)
}

func pageHeading(text string) g.Node {
	return h.H1(h.Class("text-2xl font-semibold mb-6"), g.Text(text))
}

// csrfField embeds the double-submit token in a form.
func csrfField(pc PageContext) g.Node {
	return h.Input(h.Type("hidden"), h.Name("csrf_token"), h.Value(pc.CSRFToken))
}

type fieldOpts struct {
	Type        string
	Placeholder string
	Value       string
	Required    bool
}

// formField renders a labeled input with consistent styling.
func formField(name, label string, opts fieldOpts) g.Node {
	inputType := opts.Type
	if inputType == "" {
		inputType = "text"
	}

	return h.Div(
		h.Class("mb-4"),
		h.Label(
			h.For(name),
			h.Class("block text-sm font-medium text-slate-700 mb-1"),
			g.Text(label),
		),
		h.Input(
			h.Type(inputType),
			h.Name(name),
			h.ID(name),
			h.Class("w-full rounded-md border border-slate-300 px-3 py-2 text-sm focus:border-blue-500 focus:outline-none"),
			g.If(opts.Placeholder != "", h.Placeholder(opts.Placeholder)),
			g.If(opts.Value != "", h.Value(opts.Value)),
			g.If(opts.Required, h.Required()),
		),
	)
}

func textareaField(name, label, placeholder string, required bool) g.Node {
	return h.Div(
		h.Class("mb-4"),
		h.Label(
			h.For(name),
			h.Class("block text-sm font-medium text-slate-700 mb-1"),
			g.Text(label),
		),
		h.Textarea(
			h.Name(name),
			h.ID(name),
			h.Rows("4"),
			h.Class("w-full rounded-md border border-slate-300 px-3 py-2 text-sm focus:border-blue-500 focus:outline-none"),
			g.If(placeholder != "", h.Placeholder(placeholder)),
			g.If(required, h.Required()),
		),
	)
}

func submitButton(label string) g.Node {
	return h.Button(
		h.Type("submit"),
		h.Class("rounded-md bg-blue-600 px-4 py-2 text-sm font-medium text-white hover:bg-blue-700"),
		g.Text(label),
	)
}

// statCard is one dashboard counter tile.
func statCard(label string, value int, accent string) g.Node {
	return h.Div(
		h.Class(Classes("rounded-lg border border-slate-200 bg-white p-6 shadow-sm", accent)),
		h.P(h.Class("text-sm text-slate-500"), g.Text(label)),
		h.P(h.Class("text-3xl font-semibold mt-1"), g.Textf("%d", value)),
	)
}

// statusBadge colors an appointment status pill.
func statusBadge(status string) g.Node {
	class := "inline-block rounded-full px-2.5 py-0.5 text-xs font-medium "
	if status == model.AppointmentStatusCompleted {
		class += "bg-green-100 text-green-800"
	} else {
		class += "bg-amber-100 text-amber-800"
	}
	return h.Span(h.Class(class), g.Text(status))
}
