package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/medtrack/medtrack/internal/ctxkeys"
	"github.com/medtrack/medtrack/internal/flash"
	"github.com/medtrack/medtrack/internal/repository"
	"github.com/medtrack/medtrack/internal/service"
	"github.com/medtrack/medtrack/internal/ui"
	"github.com/medtrack/medtrack/internal/urls"
)

type appointmentHandler struct {
	appointmentService *service.AppointmentService
	profileService     *service.ProfileService
}

func NewAppointmentHandler(appointmentService *service.AppointmentService, profileService *service.ProfileService) *appointmentHandler {
	return &appointmentHandler{
		appointmentService: appointmentService,
		profileService:     profileService,
	}
}

func (h *appointmentHandler) BookAppointmentPage(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.appointmentService.Doctors()
	if err != nil {
		slog.Error("failed to load doctors", "error", err)
	}

	pc := ui.NewPageContext(w, r, "Book Appointment")
	ui.Render(w, r, ui.BookAppointmentPage(pc, doctors))
}

func (h *appointmentHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	_, err := h.appointmentService.Book(service.BookingInput{
		PatientID: user.ID,
		DoctorID:  r.FormValue("doctor_id"),
		Date:      r.FormValue("appointment_date"),
		Time:      r.FormValue("appointment_time"),
		Symptoms:  r.FormValue("symptoms"),
	})
	if err != nil {
		flash.Danger(w, userMessage(err, "Could not book your appointment. Please try again."))
		http.Redirect(w, r, urls.BookAppointment, http.StatusSeeOther)
		return
	}

	flash.Success(w, "Appointment booked successfully! Notification sent to doctor.")
	http.Redirect(w, r, urls.PatientDashboard, http.StatusSeeOther)
}

// PatientAppointment shows an appointment to the patient who booked it.
func (h *appointmentHandler) PatientAppointment(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	appointment, err := h.appointmentService.Get(r.PathValue("id"), user)
	if err != nil {
		h.redirectDenied(w, r, err, urls.PatientDashboard)
		return
	}

	doctorName := h.counterpartName(appointment.DoctorID)

	pc := ui.NewPageContext(w, r, "Appointment")
	ui.Render(w, r, ui.PatientAppointmentPage(pc, appointment, doctorName))
}

// DoctorAppointment shows an appointment to its assigned doctor.
func (h *appointmentHandler) DoctorAppointment(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	appointment, err := h.appointmentService.Get(r.PathValue("id"), user)
	if err != nil {
		h.redirectDenied(w, r, err, urls.DoctorDashboard)
		return
	}

	patientName := h.counterpartName(appointment.PatientID)

	pc := ui.NewPageContext(w, r, "Appointment")
	ui.Render(w, r, ui.DoctorAppointmentPage(pc, appointment, patientName))
}

func (h *appointmentHandler) SubmitDiagnosis(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	id := r.PathValue("id")

	_, err := h.appointmentService.SubmitDiagnosis(id, user, service.DiagnosisInput{
		Diagnosis:     r.FormValue("diagnosis"),
		TreatmentPlan: r.FormValue("treatment_plan"),
		Prescription:  r.FormValue("prescription"),
	})
	if err != nil {
		if errors.Is(err, service.ErrAppointmentAccess) || errors.Is(err, repository.ErrAppointmentNotFound) {
			h.redirectDenied(w, r, err, urls.DoctorDashboard)
			return
		}
		flash.Danger(w, userMessage(err, "Could not submit the diagnosis. Please try again."))
		http.Redirect(w, r, urls.DoctorViewAppointment(id), http.StatusSeeOther)
		return
	}

	flash.Success(w, "Diagnosis submitted successfully.")
	http.Redirect(w, r, urls.DoctorDashboard, http.StatusSeeOther)
}

func (h *appointmentHandler) redirectDenied(w http.ResponseWriter, r *http.Request, err error, target string) {
	if errors.Is(err, repository.ErrAppointmentNotFound) {
		flash.Danger(w, "Appointment not found.")
	} else {
		flash.Danger(w, "Access denied.")
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *appointmentHandler) counterpartName(userID string) string {
	profile, err := h.profileService.Get(userID)
	if err != nil {
		return ""
	}
	return profile.Name
}
