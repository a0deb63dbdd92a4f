package service

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/medtrack/medtrack/internal/model"
	"github.com/medtrack/medtrack/internal/repository"
	"github.com/medtrack/medtrack/internal/urls"
)

var (
	ErrAppointmentAccess = errors.New("appointment does not belong to this user")
	ErrDoctorNotFound    = errors.New("selected doctor not found")
)

// BookingInput carries the booking form fields.
type BookingInput struct {
	PatientID string
	DoctorID  string
	Date      string // YYYY-MM-DD
	Time      string // HH:MM
	Symptoms  string
}

// DoctorOption is a row in the booking form's doctor dropdown.
type DoctorOption struct {
	UserID         string
	Name           string
	Specialization string
}

// AppointmentRow is a dashboard list entry with the counterpart's name
// resolved (doctor name for patients, patient name for doctors).
type AppointmentRow struct {
	*model.Appointment
	CounterpartName string
}

type AppointmentService struct {
	appointments repository.AppointmentRepository
	users        repository.UserRepository
	profiles     repository.ProfileRepository
	emails       *EmailService
}

func NewAppointmentService(
	appointments repository.AppointmentRepository,
	users repository.UserRepository,
	profiles repository.ProfileRepository,
	emails *EmailService,
) *AppointmentService {
	return &AppointmentService{
		appointments: appointments,
		users:        users,
		profiles:     profiles,
		emails:       emails,
	}
}

// Doctors lists all registered doctors for the booking form.
func (s *AppointmentService) Doctors() ([]DoctorOption, error) {
	doctors, err := s.users.ByRole(model.RoleDoctor)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(doctors))
	for _, d := range doctors {
		ids = append(ids, d.ID)
	}

	profiles, err := s.profiles.ByUserIDs(ids)
	if err != nil {
		return nil, err
	}

	options := make([]DoctorOption, 0, len(doctors))
	for _, d := range doctors {
		option := DoctorOption{UserID: d.ID}
		if p := profiles[d.ID]; p != nil {
			option.Name = p.Name
			option.Specialization = p.Specialization
		}
		options = append(options, option)
	}

	return options, nil
}

// Book creates a pending appointment and notifies the doctor by email.
func (s *AppointmentService) Book(input BookingInput) (*model.Appointment, error) {
	err := validateBooking(&input)
	if err != nil {
		return nil, err
	}

	doctor, err := s.users.ByID(input.DoctorID)
	if err != nil || !doctor.IsDoctor() {
		return nil, ErrDoctorNotFound
	}

	appointment := &model.Appointment{
		ID:            uuid.New().String(),
		PatientID:     input.PatientID,
		DoctorID:      input.DoctorID,
		ScheduledDate: input.Date,
		ScheduledTime: input.Time,
		Status:        model.AppointmentStatusPending,
		Symptoms:      input.Symptoms,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	err = s.appointments.Create(appointment)
	if err != nil {
		return nil, err
	}

	// Notification is best effort, the booking already exists
	s.notifyDoctor(appointment, doctor)

	return appointment, nil
}

func validateBooking(input *BookingInput) error {
	input.Symptoms = strings.TrimSpace(input.Symptoms)
	if input.Symptoms == "" {
		return errors.New("please describe your symptoms")
	}
	if len(input.Symptoms) > 2000 {
		return errors.New("symptom description is too long")
	}

	_, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return errors.New("please choose a valid date")
	}

	// ISO dates compare lexically; this keeps "today" in the server's
	// local day rather than the UTC one
	if input.Date < time.Now().Format("2006-01-02") {
		return errors.New("appointment date cannot be in the past")
	}

	_, err = time.Parse("15:04", input.Time)
	if err != nil {
		return errors.New("please choose a valid time")
	}

	return nil
}

func (s *AppointmentService) notifyDoctor(appointment *model.Appointment, doctor *model.User) {
	names, err := s.profiles.ByUserIDs([]string{appointment.PatientID, doctor.ID})
	if err != nil {
		slog.Error("failed to load profiles for booking notification", "error", err)
		return
	}

	notification := AppointmentNotification{
		Date:      appointment.ScheduledDate,
		Time:      appointment.ScheduledTime,
		Symptoms:  appointment.Symptoms,
		DetailURL: urls.DoctorViewAppointment(appointment.ID),
	}
	if p := names[appointment.PatientID]; p != nil {
		notification.PatientName = p.Name
	}
	if p := names[doctor.ID]; p != nil {
		notification.DoctorName = p.Name
	}

	err = s.emails.SendAppointmentRequest(doctor.Email, notification)
	if err != nil {
		slog.Error("failed to send booking notification",
			"error", err,
			"appointment_id", appointment.ID,
		)
	}
}

// Get loads an appointment and verifies the requester is a participant.
// Patients may only see their own appointments, doctors only theirs.
func (s *AppointmentService) Get(id string, requester *model.User) (*model.Appointment, error) {
	appointment, err := s.appointments.ByID(id)
	if err != nil {
		return nil, err
	}

	switch {
	case requester.IsPatient() && appointment.PatientID == requester.ID:
		return appointment, nil
	case requester.IsDoctor() && appointment.DoctorID == requester.ID:
		return appointment, nil
	default:
		return nil, ErrAppointmentAccess
	}
}

// ListForUser returns the user's appointments with counterpart names resolved.
func (s *AppointmentService) ListForUser(user *model.User) ([]AppointmentRow, error) {
	var appointments []*model.Appointment
	var err error

	if user.IsDoctor() {
		appointments, err = s.appointments.ByDoctor(user.ID)
	} else {
		appointments, err = s.appointments.ByPatient(user.ID)
	}
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(appointments))
	for _, a := range appointments {
		if user.IsDoctor() {
			ids = append(ids, a.PatientID)
		} else {
			ids = append(ids, a.DoctorID)
		}
	}

	profiles, err := s.profiles.ByUserIDs(ids)
	if err != nil {
		return nil, err
	}

	rows := make([]AppointmentRow, 0, len(appointments))
	for _, a := range appointments {
		row := AppointmentRow{Appointment: a}
		counterpartID := a.DoctorID
		if user.IsDoctor() {
			counterpartID = a.PatientID
		}
		if p := profiles[counterpartID]; p != nil {
			row.CounterpartName = p.Name
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// StatsForUser returns the dashboard counters for the user's role.
func (s *AppointmentService) StatsForUser(user *model.User) (*model.AppointmentStats, error) {
	if user.IsDoctor() {
		return s.appointments.StatsForDoctor(user.ID)
	}
	return s.appointments.StatsForPatient(user.ID)
}

// DiagnosisInput carries the doctor's diagnosis form fields.
type DiagnosisInput struct {
	Diagnosis     string
	TreatmentPlan string
	Prescription  string
}

// SubmitDiagnosis records the doctor's findings and marks the appointment
// completed. Only the assigned doctor may submit.
func (s *AppointmentService) SubmitDiagnosis(id string, doctor *model.User, input DiagnosisInput) (*model.Appointment, error) {
	appointment, err := s.Get(id, doctor)
	if err != nil {
		return nil, err
	}

	input.Diagnosis = strings.TrimSpace(input.Diagnosis)
	if input.Diagnosis == "" {
		return nil, errors.New("diagnosis is required")
	}

	appointment.Diagnosis = input.Diagnosis
	appointment.TreatmentPlan = strings.TrimSpace(input.TreatmentPlan)
	appointment.Prescription = strings.TrimSpace(input.Prescription)
	appointment.Status = model.AppointmentStatusCompleted

	err = s.appointments.Update(appointment)
	if err != nil {
		return nil, err
	}

	s.notifyPatient(appointment)

	return appointment, nil
}

func (s *AppointmentService) notifyPatient(appointment *model.Appointment) {
	patient, err := s.users.ByID(appointment.PatientID)
	if err != nil {
		slog.Error("failed to load patient for diagnosis notification", "error", err)
		return
	}

	names, err := s.profiles.ByUserIDs([]string{appointment.PatientID, appointment.DoctorID})
	if err != nil {
		slog.Error("failed to load profiles for diagnosis notification", "error", err)
		return
	}

	notification := AppointmentNotification{
		Date:      appointment.ScheduledDate,
		Time:      appointment.ScheduledTime,
		DetailURL: urls.ViewAppointment(appointment.ID),
	}
	if p := names[appointment.PatientID]; p != nil {
		notification.PatientName = p.Name
	}
	if p := names[appointment.DoctorID]; p != nil {
		notification.DoctorName = p.Name
	}

	err = s.emails.SendDiagnosisReady(patient.Email, notification)
	if err != nil {
		slog.Error("failed to send diagnosis notification",
			"error", err,
			"appointment_id", appointment.ID,
		)
	}
}
