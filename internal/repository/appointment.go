package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/medtrack/medtrack/internal/model"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
)

type AppointmentRepository interface {
	Create(appointment *model.Appointment) error
	ByID(id string) (*model.Appointment, error)
	ByPatient(patientID string) ([]*model.Appointment, error)
	ByDoctor(doctorID string) ([]*model.Appointment, error)
	StatsForPatient(patientID string) (*model.AppointmentStats, error)
	StatsForDoctor(doctorID string) (*model.AppointmentStats, error)
	Update(appointment *model.Appointment) error
}

type appointmentRepository struct {
	db *sqlx.DB
}

func NewAppointmentRepository(db *sqlx.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(appointment *model.Appointment) error {
	query := `INSERT INTO appointments (id, patient_id, doctor_id, scheduled_date, scheduled_time, status, symptoms, diagnosis, treatment_plan, prescription, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.Exec(query,
		appointment.ID,
		appointment.PatientID,
		appointment.DoctorID,
		appointment.ScheduledDate,
		appointment.ScheduledTime,
		appointment.Status,
		appointment.Symptoms,
		appointment.Diagnosis,
		appointment.TreatmentPlan,
		appointment.Prescription,
		appointment.CreatedAt,
		appointment.UpdatedAt,
	)

	return err
}

func (r *appointmentRepository) ByID(id string) (*model.Appointment, error) {
	appointment := &model.Appointment{}
	query := `SELECT * FROM appointments WHERE id = $1`

	err := r.db.Get(appointment, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}

	return appointment, err
}

func (r *appointmentRepository) ByPatient(patientID string) ([]*model.Appointment, error) {
	var appointments []*model.Appointment
	query := `SELECT * FROM appointments WHERE patient_id = $1 ORDER BY created_at DESC`

	err := r.db.Select(&appointments, query, patientID)
	if err != nil {
		return nil, err
	}

	return appointments, nil
}

func (r *appointmentRepository) ByDoctor(doctorID string) ([]*model.Appointment, error) {
	var appointments []*model.Appointment
	query := `SELECT * FROM appointments WHERE doctor_id = $1 ORDER BY created_at DESC`

	err := r.db.Select(&appointments, query, doctorID)
	if err != nil {
		return nil, err
	}

	return appointments, nil
}

func (r *appointmentRepository) StatsForPatient(patientID string) (*model.AppointmentStats, error) {
	return r.stats(`patient_id`, patientID)
}

func (r *appointmentRepository) StatsForDoctor(doctorID string) (*model.AppointmentStats, error) {
	return r.stats(`doctor_id`, doctorID)
}

// stats computes the dashboard counters in a single aggregate query.
// The column name is one of two fixed identifiers, never user input.
func (r *appointmentRepository) stats(column, userID string) (*model.AppointmentStats, error) {
	stats := &model.AppointmentStats{}
	query := `SELECT
	            COUNT(*) AS total,
	            COALESCE(SUM(CASE WHEN status = $1 THEN 1 ELSE 0 END), 0) AS pending,
	            COALESCE(SUM(CASE WHEN status = $2 THEN 1 ELSE 0 END), 0) AS completed
	          FROM appointments WHERE ` + column + ` = $3`

	row := r.db.QueryRow(query, model.AppointmentStatusPending, model.AppointmentStatusCompleted, userID)
	err := row.Scan(&stats.Total, &stats.Pending, &stats.Completed)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *appointmentRepository) Update(appointment *model.Appointment) error {
	query := `UPDATE appointments
	          SET scheduled_date = $1, scheduled_time = $2, status = $3, symptoms = $4, diagnosis = $5, treatment_plan = $6, prescription = $7, updated_at = $8
	          WHERE id = $9`

	result, err := r.db.Exec(query,
		appointment.ScheduledDate,
		appointment.ScheduledTime,
		appointment.Status,
		appointment.Symptoms,
		appointment.Diagnosis,
		appointment.TreatmentPlan,
		appointment.Prescription,
		time.Now(),
		appointment.ID,
	)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}
