package ui

import (
	"github.com/medtrack/medtrack/internal/model"
	"github.com/medtrack/medtrack/internal/service"
	"github.com/medtrack/medtrack/internal/urls"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// BookAppointmentPage renders the booking form with a doctor dropdown.
func BookAppointmentPage(pc PageContext, doctors []service.DoctorOption) g.Node {
	return Layout(pc,
		h.Div(
			h.Class("max-w-lg mx-auto"),
			pageHeading("Book an appointment"),
			card(
				g.If(len(doctors) == 0,
					h.P(h.Class("text-sm text-slate-600"), g.Text("No doctors are registered yet. Please check back later.")),
				),
				g.If(len(doctors) > 0,
					h.FormEl(
						h.Method("post"),
						h.Action(urls.BookAppointment),
						csrfField(pc),
						doctorSelect(doctors),
						formField("appointment_date", "Date", fieldOpts{Type: "date", Required: true}),
						formField("appointment_time", "Time", fieldOpts{Type: "time", Required: true}),
						textareaField("symptoms", "Symptoms", "Describe what brings you in", true),
						submitButton("Book appointment"),
					),
				),
			),
		),
	)
}

func doctorSelect(doctors []service.DoctorOption) g.Node {
	return h.Div(
		h.Class("mb-4"),
		h.Label(
			h.For("doctor_id"),
			h.Class("block text-sm font-medium text-slate-700 mb-1"),
			g.Text("Doctor"),
		),
		h.Select(
			h.Name("doctor_id"),
			h.ID("doctor_id"),
			h.Required(),
			h.Class("w-full rounded-md border border-slate-300 px-3 py-2 text-sm"),
			g.Map(doctors, func(d service.DoctorOption) g.Node {
				label := "Dr. " + d.Name
				if d.Specialization != "" {
					label += " (" + d.Specialization + ")"
				}
				return h.Option(h.Value(d.UserID), g.Text(label))
			}),
		),
	)
}

// PatientAppointmentPage shows an appointment to its patient, including the
// diagnosis once the doctor has completed it.
func PatientAppointmentPage(pc PageContext, appt *model.Appointment, doctorName string) g.Node {
	return Layout(pc,
		h.Div(
			h.Class("max-w-lg mx-auto"),
			pageHeading("Appointment details"),
			card(
				detailList(
					detailRow("Doctor", "Dr. "+doctorName),
					detailRow("Date", appt.ScheduledDate),
					detailRow("Time", appt.ScheduledTime),
					detailRowNode("Status", statusBadge(appt.Status)),
					detailRow("Symptoms", appt.Symptoms),
				),
			),
			g.If(appt.IsCompleted(), diagnosisCard(appt)),
			g.If(appt.IsPending(),
				h.P(
					h.Class("mt-4 text-sm text-slate-600"),
					g.Text("Your doctor has not submitted a diagnosis yet."),
				),
			),
		),
	)
}

// DoctorAppointmentPage shows an appointment to its doctor with the
// diagnosis form while it is still pending.
func DoctorAppointmentPage(pc PageContext, appt *model.Appointment, patientName string) g.Node {
	return Layout(pc,
		h.Div(
			h.Class("max-w-lg mx-auto"),
			pageHeading("Appointment details"),
			card(
				detailList(
					detailRow("Patient", patientName),
					detailRow("Date", appt.ScheduledDate),
					detailRow("Time", appt.ScheduledTime),
					detailRowNode("Status", statusBadge(appt.Status)),
					detailRow("Symptoms", appt.Symptoms),
				),
			),
			g.If(appt.IsCompleted(), diagnosisCard(appt)),
			g.If(appt.IsPending(), diagnosisForm(pc, appt)),
		),
	)
}

func diagnosisCard(appt *model.Appointment) g.Node {
	return h.Div(
		h.Class("mt-6"),
		h.H2(h.Class("text-lg font-semibold mb-4"), g.Text("Diagnosis")),
		card(
			detailList(
				detailRow("Diagnosis", appt.Diagnosis),
				detailRow("Treatment plan", appt.TreatmentPlan),
				detailRow("Prescription", appt.Prescription),
			),
		),
	)
}

func diagnosisForm(pc PageContext, appt *model.Appointment) g.Node {
	return h.Div(
		h.Class("mt-6"),
		h.H2(h.Class("text-lg font-semibold mb-4"), g.Text("Submit diagnosis")),
		card(
			h.FormEl(
				h.Method("post"),
				h.Action(urls.SubmitDiagnosis(appt.ID)),
				csrfField(pc),
				textareaField("diagnosis", "Diagnosis", "", true),
				textareaField("treatment_plan", "Treatment plan", "", false),
				textareaField("prescription", "Prescription", "", false),
				submitButton("Submit diagnosis"),
			),
		),
	)
}

func detailList(rows ...g.Node) g.Node {
	return h.Dl(h.Class("divide-y divide-slate-100"), g.Group(rows))
}

func detailRow(label, value string) g.Node {
	return detailRowNode(label, h.Span(g.Text(value)))
}

func detailRowNode(label string, value g.Node) g.Node {
	return h.Div(
		h.Class("flex justify-between gap-4 py-3"),
		h.Dt(h.Class("text-sm font-medium text-slate-500"), g.Text(label)),
		h.Dd(h.Class("text-sm text-right"), value),
	)
}
