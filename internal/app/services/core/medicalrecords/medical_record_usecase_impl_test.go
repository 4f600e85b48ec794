package medicalrecords

import (
	"context"
	"medicore-service/internal/app/contracts"
	"medicore-service/internal/app/services/core/doctors"
	"medicore-service/internal/app/services/core/patients"
	"medicore-service/internal/app/services/shared/kvstore"
	"medicore-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newUsecase() contracts.MedicalRecordUsecase {
	kv := kvstore.NewMemoryStore()
	return NewMedicalRecordUsecase(
		NewMedicalRecordKvRepository(kv),
		patients.NewPatientKvRepository(kv),
		doctors.NewDoctorKvRepository(kv),
	)
}

func newRecordRequest(patientID, doctorID string) *requests.CreateMedicalRecordRequest {
	return &requests.CreateMedicalRecordRequest{
		PatientID:    patientID,
		DoctorID:     doctorID,
		Diagnosis:    "Seasonal allergy",
		Symptoms:     "Sneezing, itchy eyes",
		Prescription: "Loratadine 10mg daily",
	}
}

func TestCreateMedicalRecord(t *testing.T) {
	ctx := context.Background()

	t.Run("Snapshots names and stamps the record date", func(t *testing.T) {
		uc := newUsecase()

		created, err := uc.CreateMedicalRecord(ctx, newRecordRequest("3", "1"))
		assert.NoError(t, err)
		assert.Equal(t, "Michael Brown", created.PatientName)
		assert.Equal(t, "Dr. Sarah Johnson", created.DoctorName)
		assert.NotEmpty(t, created.RecordDate)
		assert.Empty(t, created.TestResults, "optional fields stay empty when omitted")
	})

	t.Run("Unknown reference rejects the write", func(t *testing.T) {
		uc := newUsecase()

		_, err := uc.CreateMedicalRecord(ctx, newRecordRequest("missing", "1"))
		assert.Error(t, err)

		records, listErr := uc.ListMedicalRecords(ctx, "")
		assert.NoError(t, listErr)
		assert.Len(t, records, 3)
	})
}

func TestUpdateMedicalRecord(t *testing.T) {
	ctx := context.Background()
	uc := newUsecase()

	updated, err := uc.UpdateMedicalRecord(ctx, "2", newRecordRequest("1", "3"))
	assert.NoError(t, err)
	assert.Equal(t, "2", updated.ID)
	assert.Equal(t, "John Smith", updated.PatientName)
	assert.Equal(t, "2024-12-10", updated.RecordDate, "record date must come from the stored row")

	_, err = uc.UpdateMedicalRecord(ctx, "missing", newRecordRequest("1", "1"))
	assert.Error(t, err)
}

func TestListMedicalRecordsSearch(t *testing.T) {
	ctx := context.Background()
	uc := newUsecase()

	t.Run("Diagnosis match is case-insensitive", func(t *testing.T) {
		records, err := uc.ListMedicalRecords(ctx, "migraine")
		assert.NoError(t, err)
		assert.Len(t, records, 1)
		assert.Equal(t, "Emma Wilson", records[0].PatientName)
	})

	t.Run("Doctor name match", func(t *testing.T) {
		records, err := uc.ListMedicalRecords(ctx, "sarah")
		assert.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("Patient name match", func(t *testing.T) {
		records, err := uc.ListMedicalRecords(ctx, "michael brown")
		assert.NoError(t, err)
		assert.Len(t, records, 1)
		assert.Equal(t, "Type 2 Diabetes", records[0].Diagnosis)
	})
}

func TestDeleteMedicalRecord(t *testing.T) {
	ctx := context.Background()
	uc := newUsecase()

	assert.NoError(t, uc.DeleteMedicalRecord(ctx, "3"))
	assert.NoError(t, uc.DeleteMedicalRecord(ctx, "3"))

	records, err := uc.ListMedicalRecords(ctx, "")
	assert.NoError(t, err)
	assert.Len(t, records, 2)
}
