package dashboard

import (
	"context"
	"medicore-service/internal/app/services/core/appointments"
	"medicore-service/internal/app/services/core/doctors"
	"medicore-service/internal/app/services/core/medicalrecords"
	"medicore-service/internal/app/services/core/patients"
	"medicore-service/internal/app/services/shared/kvstore"
	"medicore-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSummary(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()

	patientRepo := patients.NewPatientKvRepository(kv)

	uc := NewDashboardUsecase(
		patientRepo,
		doctors.NewDoctorKvRepository(kv),
		appointments.NewAppointmentKvRepository(kv),
		medicalrecords.NewMedicalRecordKvRepository(kv),
	)

	summary, err := uc.GetSummary(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 3, summary.TotalPatients)
	assert.Equal(t, 3, summary.TotalDoctors)
	assert.Equal(t, 3, summary.TotalAppointments)
	assert.Equal(t, 3, summary.TotalMedicalRecords)
	assert.Equal(t, map[string]int{
		constvars.AppointmentStatusScheduled: 1,
		constvars.AppointmentStatusCompleted: 1,
		constvars.AppointmentStatusCancelled: 1,
	}, summary.AppointmentsByStatus)

	// Counts follow the collections.
	assert.NoError(t, patientRepo.Delete(ctx, "1"))

	summary, err = uc.GetSummary(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 2, summary.TotalPatients)
}
