package model

import (
	"time"
)

const (
	AppointmentStatusPending   = "Pending"
	AppointmentStatusCompleted = "Completed"
)

type Appointment struct {
	ID            string    `db:"id"`
	PatientID     string    `db:"patient_id"`
	DoctorID      string    `db:"doctor_id"`
	ScheduledDate string    `db:"scheduled_date"`
	ScheduledTime string    `db:"scheduled_time"`
	Status        string    `db:"status"`
	Symptoms      string    `db:"symptoms"`
	Diagnosis     string    `db:"diagnosis"`
	TreatmentPlan string    `db:"treatment_plan"`
	Prescription  string    `db:"prescription"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}

// AppointmentStats holds the per-user dashboard counters.
type AppointmentStats struct {
	Pending   int
	Completed int
	Total     int
}
