package appointments

import (
	"context"
	"medicore-service/internal/app/contracts"
	"medicore-service/internal/app/services/core/doctors"
	"medicore-service/internal/app/services/core/patients"
	"medicore-service/internal/app/services/shared/kvstore"
	"medicore-service/internal/pkg/constvars"
	"medicore-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixture struct {
	uc          contracts.AppointmentUsecase
	patientRepo contracts.PatientRepository
	doctorRepo  contracts.DoctorRepository
}

func newFixture() *fixture {
	kv := kvstore.NewMemoryStore()
	patientRepo := patients.NewPatientKvRepository(kv)
	doctorRepo := doctors.NewDoctorKvRepository(kv)
	appointmentRepo := NewAppointmentKvRepository(kv)
	return &fixture{
		uc:          NewAppointmentUsecase(appointmentRepo, patientRepo, doctorRepo),
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
	}
}

func newAppointmentRequest(patientID, doctorID, status string) *requests.CreateAppointmentRequest {
	return &requests.CreateAppointmentRequest{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      "2025-01-10",
		Time:      "9:00 AM",
		Reason:    "Consultation",
		Status:    status,
	}
}

func TestCreateAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("Denormalizes names from referenced records", func(t *testing.T) {
		f := newFixture()

		created, err := f.uc.CreateAppointment(ctx, newAppointmentRequest("1", "2", constvars.AppointmentStatusScheduled))
		assert.NoError(t, err)
		assert.Equal(t, "John Smith", created.PatientName)
		assert.Equal(t, "Dr. Michael Chen", created.DoctorName)
		assert.NotEmpty(t, created.CreatedAt)
	})

	t.Run("Unknown patient rejects the write", func(t *testing.T) {
		f := newFixture()

		_, err := f.uc.CreateAppointment(ctx, newAppointmentRequest("missing", "1", constvars.AppointmentStatusScheduled))
		assert.Error(t, err)

		appointments, listErr := f.uc.ListAppointments(ctx, "")
		assert.NoError(t, listErr)
		assert.Len(t, appointments, 3, "rejected write must not touch the collection")
	})

	t.Run("Unknown doctor rejects the write", func(t *testing.T) {
		f := newFixture()

		_, err := f.uc.CreateAppointment(ctx, newAppointmentRequest("1", "missing", constvars.AppointmentStatusScheduled))
		assert.Error(t, err)
	})
}

func TestAppointmentNameSnapshots(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	created, err := f.uc.CreateAppointment(ctx, newAppointmentRequest("1", "1", constvars.AppointmentStatusScheduled))
	assert.NoError(t, err)

	// Rename the patient after booking.
	patient, err := f.patientRepo.FindByID(ctx, "1")
	assert.NoError(t, err)
	patient.Name = "John Smith Jr."
	assert.NoError(t, f.patientRepo.Update(ctx, *patient))

	appointments, err := f.uc.ListAppointments(ctx, "")
	assert.NoError(t, err)
	for _, appointment := range appointments {
		if appointment.ID == created.ID {
			assert.Equal(t, "John Smith", appointment.PatientName, "snapshot must not follow the rename")
		}
	}

	// Deleting the patient leaves the appointment stale but intact.
	assert.NoError(t, f.patientRepo.Delete(ctx, "1"))

	appointments, err = f.uc.ListAppointments(ctx, "")
	assert.NoError(t, err)
	assert.Len(t, appointments, 4)
}

func TestUpdateAppointment(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	t.Run("Re-resolves references and keeps creation stamp", func(t *testing.T) {
		updated, err := f.uc.UpdateAppointment(ctx, "1", newAppointmentRequest("2", "3", constvars.AppointmentStatusCompleted))
		assert.NoError(t, err)
		assert.Equal(t, "1", updated.ID)
		assert.Equal(t, "Emma Wilson", updated.PatientName)
		assert.Equal(t, "Dr. Emily Davis", updated.DoctorName)
		assert.Equal(t, "2024-12-20", updated.CreatedAt)
	})

	t.Run("Unknown appointment id fails", func(t *testing.T) {
		_, err := f.uc.UpdateAppointment(ctx, "missing", newAppointmentRequest("1", "1", constvars.AppointmentStatusScheduled))
		assert.Error(t, err)
	})

	t.Run("Unknown reference blocks the update", func(t *testing.T) {
		_, err := f.uc.UpdateAppointment(ctx, "2", newAppointmentRequest("missing", "1", constvars.AppointmentStatusScheduled))
		assert.Error(t, err)

		appointments, listErr := f.uc.ListAppointments(ctx, "")
		assert.NoError(t, listErr)
		assert.Equal(t, "Emma Wilson", appointments[1].PatientName, "stored row must be untouched")
	})
}

func TestListAppointmentsStatusFilter(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	t.Run("Empty status returns everything", func(t *testing.T) {
		appointments, err := f.uc.ListAppointments(ctx, "")
		assert.NoError(t, err)
		assert.Len(t, appointments, 3)
	})

	t.Run("All returns everything", func(t *testing.T) {
		appointments, err := f.uc.ListAppointments(ctx, constvars.AppointmentStatusAll)
		assert.NoError(t, err)
		assert.Len(t, appointments, 3)
	})

	t.Run("Exact status match", func(t *testing.T) {
		appointments, err := f.uc.ListAppointments(ctx, constvars.AppointmentStatusCancelled)
		assert.NoError(t, err)
		assert.Len(t, appointments, 1)
		assert.Equal(t, "3", appointments[0].ID)
	})
}

func TestDeleteAppointment(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	assert.NoError(t, f.uc.DeleteAppointment(ctx, "2"))
	assert.NoError(t, f.uc.DeleteAppointment(ctx, "2"))

	appointments, err := f.uc.ListAppointments(ctx, "")
	assert.NoError(t, err)
	assert.Len(t, appointments, 2)
}
