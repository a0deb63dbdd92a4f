package ui

import (
	"github.com/medtrack/medtrack/internal/model"
	"github.com/medtrack/medtrack/internal/service"
	"github.com/medtrack/medtrack/internal/urls"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// PatientDashboardPage shows the patient's appointment stats and history.
func PatientDashboardPage(pc PageContext, stats *model.AppointmentStats, rows []service.AppointmentRow) g.Node {
	return Layout(pc,
		dashboardHeading(pc, "Patient Dashboard"),
		statsGrid(stats),
		h.Div(
			h.Class("mt-8 flex items-center justify-between mb-4"),
			h.H2(h.Class("text-lg font-semibold"), g.Text("Your appointments")),
			h.A(
				h.Href(urls.BookAppointment),
				h.Class("rounded-md bg-blue-600 px-4 py-2 text-sm font-medium text-white hover:bg-blue-700"),
				g.Text("Book appointment"),
			),
		),
		appointmentsTable(rows, "Doctor", urls.ViewAppointment),
	)
}

// DoctorDashboardPage shows the doctor's appointment stats and queue.
func DoctorDashboardPage(pc PageContext, stats *model.AppointmentStats, rows []service.AppointmentRow) g.Node {
	return Layout(pc,
		dashboardHeading(pc, "Doctor Dashboard"),
		statsGrid(stats),
		h.H2(h.Class("mt-8 mb-4 text-lg font-semibold"), g.Text("Your appointments")),
		appointmentsTable(rows, "Patient", urls.DoctorViewAppointment),
	)
}

func dashboardHeading(pc PageContext, title string) g.Node {
	heading := []g.Node{pageHeading(title)}
	if pc.Profile != nil && pc.Profile.Name != "" {
		heading = append(heading,
			h.P(h.Class("-mt-4 mb-6 text-slate-600"), g.Textf("Welcome back, %s", pc.Profile.Name)),
		)
	}
	return g.Group(heading)
}

func statsGrid(stats *model.AppointmentStats) g.Node {
	if stats == nil {
		stats = &model.AppointmentStats{}
	}
	return h.Div(
		h.Class("grid gap-4 md:grid-cols-3"),
		statCard("Pending", stats.Pending, "border-l-4 border-l-amber-400"),
		statCard("Completed", stats.Completed, "border-l-4 border-l-green-500"),
		statCard("Total", stats.Total, "border-l-4 border-l-blue-500"),
	)
}

// appointmentsTable lists appointments with the counterpart's name and a
// detail link built by detailURL.
func appointmentsTable(rows []service.AppointmentRow, counterpartLabel string, detailURL func(string) string) g.Node {
	if len(rows) == 0 {
		return card(
			h.P(h.Class("text-sm text-slate-600"), g.Text("No appointments yet.")),
		)
	}

	return h.Div(
		h.Class("overflow-x-auto rounded-lg border border-slate-200 bg-white shadow-sm"),
		h.Table(
			h.Class("w-full text-sm"),
			h.THead(
				h.Tr(
					h.Class("border-b border-slate-200 text-left text-slate-500"),
					h.Th(h.Class("px-4 py-3 font-medium"), g.Text(counterpartLabel)),
					h.Th(h.Class("px-4 py-3 font-medium"), g.Text("Date")),
					h.Th(h.Class("px-4 py-3 font-medium"), g.Text("Time")),
					h.Th(h.Class("px-4 py-3 font-medium"), g.Text("Status")),
					h.Th(h.Class("px-4 py-3 font-medium"), g.Text("")),
				),
			),
			h.TBody(
				g.Map(rows, func(row service.AppointmentRow) g.Node {
					return h.Tr(
						h.Class("border-b border-slate-100 last:border-0"),
						h.Td(h.Class("px-4 py-3"), g.Text(row.CounterpartName)),
						h.Td(h.Class("px-4 py-3"), g.Text(row.ScheduledDate)),
						h.Td(h.Class("px-4 py-3"), g.Text(row.ScheduledTime)),
						h.Td(h.Class("px-4 py-3"), statusBadge(row.Status)),
						h.Td(
							h.Class("px-4 py-3 text-right"),
							h.A(
								h.Href(detailURL(row.ID)),
								h.Class("text-blue-700 hover:underline"),
								g.Text("View"),
							),
						),
					)
				}),
			),
		),
	)
}
