package service

import (
	"testing"
	"time"

	"github.com/medtrack/medtrack/internal/model"
	"github.com/medtrack/medtrack/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func futureDate() string {
	return time.Now().AddDate(0, 0, 7).Format("2006-01-02")
}

func TestDoctorsListsOnlyDoctors(t *testing.T) {
	env := newTestEnv(t)
	env.signupPatient(t, "p@example.com")
	env.signupDoctor(t, "d@example.com")

	doctors, err := env.appointments.Doctors()
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, "Gregory House", doctors[0].Name)
	assert.Equal(t, "Diagnostics", doctors[0].Specialization)
}

func TestBookCreatesPendingAppointment(t *testing.T) {
	env := newTestEnv(t)
	patient := env.signupPatient(t, "p@example.com")
	doctor := env.signupDoctor(t, "d@example.com")

	appointment, err := env.appointments.Book(BookingInput{
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Date:      futureDate(),
		Time:      "10:30",
		Symptoms:  "persistent cough",
	})
	require.NoError(t, err)

	assert.Equal(t, model.AppointmentStatusPending, appointment.Status)
	assert.Equal(t, patient.ID, appointment.PatientID)
	assert.Equal(t, doctor.ID, appointment.DoctorID)
	assert.NotEmpty(t, appointment.ID)
}

func TestBookValidation(t *testing.T) {
	env := newTestEnv(t)
	patient := env.signupPatient(t, "p@example.com")
	doctor := env.signupDoctor(t, "d@example.com")

	base := BookingInput{
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Date:      futureDate(),
		Time:      "10:30",
		Symptoms:  "cough",
	}

	missing := base
	missing.Symptoms = "  "
	_, err := env.appointments.Book(missing)
	assert.Error(t, err, "symptoms required")

	past := base
	past.Date = "2020-01-01"
	_, err = env.appointments.Book(past)
	assert.Error(t, err, "past date rejected")

	badTime := base
	badTime.Time = "25:99"
	_, err = env.appointments.Book(badTime)
	assert.Error(t, err, "invalid time rejected")

	sameDay := base
	sameDay.Date = time.Now().Format("2006-01-02")
	_, err = env.appointments.Book(sameDay)
	assert.NoError(t, err, "booking for the current local day is allowed")

	badDoctor := base
	badDoctor.DoctorID = patient.ID
	_, err = env.appointments.Book(badDoctor)
	assert.ErrorIs(t, err, ErrDoctorNotFound, "patients cannot be booked as doctors")
}

func TestGetEnforcesParticipants(t *testing.T) {
	env := newTestEnv(t)
	patient := env.signupPatient(t, "p@example.com")
	doctor := env.signupDoctor(t, "d@example.com")
	stranger := env.signupPatient(t, "stranger@example.com")
	otherDoctor := env.signupDoctor(t, "other@example.com")

	appointment, err := env.appointments.Book(BookingInput{
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Date:      futureDate(),
		Time:      "09:00",
		Symptoms:  "headache",
	})
	require.NoError(t, err)

	_, err = env.appointments.Get(appointment.ID, patient)
	assert.NoError(t, err, "booking patient can view")

	_, err = env.appointments.Get(appointment.ID, doctor)
	assert.NoError(t, err, "assigned doctor can view")

	_, err = env.appointments.Get(appointment.ID, stranger)
	assert.ErrorIs(t, err, ErrAppointmentAccess)

	_, err = env.appointments.Get(appointment.ID, otherDoctor)
	assert.ErrorIs(t, err, ErrAppointmentAccess)

	_, err = env.appointments.Get("missing", patient)
	assert.ErrorIs(t, err, repository.ErrAppointmentNotFound)
}

func TestListForUserResolvesCounterpartNames(t *testing.T) {
	env := newTestEnv(t)
	patient := env.signupPatient(t, "p@example.com")
	doctor := env.signupDoctor(t, "d@example.com")

	_, err := env.appointments.Book(BookingInput{
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Date:      futureDate(),
		Time:      "11:00",
		Symptoms:  "back pain",
	})
	require.NoError(t, err)

	patientRows, err := env.appointments.ListForUser(patient)
	require.NoError(t, err)
	require.Len(t, patientRows, 1)
	assert.Equal(t, "Gregory House", patientRows[0].CounterpartName)

	doctorRows, err := env.appointments.ListForUser(doctor)
	require.NoError(t, err)
	require.Len(t, doctorRows, 1)
	assert.Equal(t, "Jane Doe", doctorRows[0].CounterpartName)
}

func TestSubmitDiagnosisCompletesAppointment(t *testing.T) {
	env := newTestEnv(t)
	patient := env.signupPatient(t, "p@example.com")
	doctor := env.signupDoctor(t, "d@example.com")

	appointment, err := env.appointments.Book(BookingInput{
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Date:      futureDate(),
		Time:      "14:00",
		Symptoms:  "fever",
	})
	require.NoError(t, err)

	updated, err := env.appointments.SubmitDiagnosis(appointment.ID, doctor, DiagnosisInput{
		Diagnosis:     "influenza",
		TreatmentPlan: "rest and fluids",
		Prescription:  "oseltamivir",
	})
	require.NoError(t, err)

	assert.True(t, updated.IsCompleted())
	assert.Equal(t, "influenza", updated.Diagnosis)
	assert.Equal(t, "rest and fluids", updated.TreatmentPlan)
	assert.Equal(t, "oseltamivir", updated.Prescription)
}

func TestSubmitDiagnosisGuards(t *testing.T) {
	env := newTestEnv(t)
	patient := env.signupPatient(t, "p@example.com")
	doctor := env.signupDoctor(t, "d@example.com")
	otherDoctor := env.signupDoctor(t, "other@example.com")

	appointment, err := env.appointments.Book(BookingInput{
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Date:      futureDate(),
		Time:      "14:00",
		Symptoms:  "fever",
	})
	require.NoError(t, err)

	_, err = env.appointments.SubmitDiagnosis(appointment.ID, otherDoctor, DiagnosisInput{Diagnosis: "x"})
	assert.ErrorIs(t, err, ErrAppointmentAccess, "only the assigned doctor may submit")

	_, err = env.appointments.SubmitDiagnosis(appointment.ID, doctor, DiagnosisInput{Diagnosis: "  "})
	assert.Error(t, err, "diagnosis text required")
}

func TestStatsForUser(t *testing.T) {
	env := newTestEnv(t)
	patient := env.signupPatient(t, "p@example.com")
	doctor := env.signupDoctor(t, "d@example.com")

	for i := 0; i < 2; i++ {
		_, err := env.appointments.Book(BookingInput{
			PatientID: patient.ID,
			DoctorID:  doctor.ID,
			Date:      futureDate(),
			Time:      "10:00",
			Symptoms:  "checkup",
		})
		require.NoError(t, err)
	}

	rows, err := env.appointments.ListForUser(doctor)
	require.NoError(t, err)
	_, err = env.appointments.SubmitDiagnosis(rows[0].ID, doctor, DiagnosisInput{Diagnosis: "all clear"})
	require.NoError(t, err)

	stats, err := env.appointments.StatsForUser(patient)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 2, stats.Total)
}
