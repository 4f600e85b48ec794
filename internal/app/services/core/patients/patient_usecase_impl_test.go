package patients

import (
	"context"
	"medicore-service/internal/app/services/shared/kvstore"
	"medicore-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newPatientRequest(name, email, phone string) *requests.CreatePatientRequest {
	return &requests.CreatePatientRequest{
		Name:             name,
		Age:              40,
		Gender:           "Male",
		Phone:            phone,
		Email:            email,
		Address:          "12 Elm St",
		BloodGroup:       "O+",
		EmergencyContact: "+1 555-0000",
	}
}

func TestCreatePatient(t *testing.T) {
	ctx := context.Background()
	uc := NewPatientUsecase(NewPatientKvRepository(kvstore.NewMemoryStore()))

	created, err := uc.CreatePatient(ctx, newPatientRequest("Alice Green", "alice@email.com", "+1 555-0101"))
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.RegisteredDate)

	second, err := uc.CreatePatient(ctx, newPatientRequest("Alice Green", "alice@email.com", "+1 555-0101"))
	assert.NoError(t, err)
	assert.NotEqual(t, created.ID, second.ID, "identical payloads must still get distinct ids")

	patients, err := uc.ListPatients(ctx, "")
	assert.NoError(t, err)
	// 3 seed rows plus the two created, appended in order.
	assert.Len(t, patients, 5)
	assert.Equal(t, created.ID, patients[3].ID)
	assert.Equal(t, second.ID, patients[4].ID)
}

func TestUpdatePatient(t *testing.T) {
	ctx := context.Background()
	uc := NewPatientUsecase(NewPatientKvRepository(kvstore.NewMemoryStore()))

	t.Run("Preserves id, stamp and position", func(t *testing.T) {
		updated, err := uc.UpdatePatient(ctx, "2", newPatientRequest("Emma Watson", "emma.w@email.com", "+1 555-0202"))
		assert.NoError(t, err)
		assert.Equal(t, "2", updated.ID)
		assert.Equal(t, "2024-02-20", updated.RegisteredDate, "registration stamp must come from the stored row")

		patients, err := uc.ListPatients(ctx, "")
		assert.NoError(t, err)
		assert.Equal(t, "Emma Watson", patients[1].Name, "updated row keeps its slot")
	})

	t.Run("Unknown id fails", func(t *testing.T) {
		_, err := uc.UpdatePatient(ctx, "missing", newPatientRequest("Nobody", "no@email.com", "+1 555-0000"))
		assert.Error(t, err)
	})
}

func TestDeletePatient(t *testing.T) {
	ctx := context.Background()
	uc := NewPatientUsecase(NewPatientKvRepository(kvstore.NewMemoryStore()))

	assert.NoError(t, uc.DeletePatient(ctx, "1"))

	patients, err := uc.ListPatients(ctx, "")
	assert.NoError(t, err)
	assert.Len(t, patients, 2)

	// Deleting again, or deleting an id that never existed, is a no-op.
	assert.NoError(t, uc.DeletePatient(ctx, "1"))
	assert.NoError(t, uc.DeletePatient(ctx, "never-existed"))

	patients, err = uc.ListPatients(ctx, "")
	assert.NoError(t, err)
	assert.Len(t, patients, 2)
}

func TestListPatientsSearch(t *testing.T) {
	ctx := context.Background()
	uc := NewPatientUsecase(NewPatientKvRepository(kvstore.NewMemoryStore()))

	t.Run("Name match is case-insensitive", func(t *testing.T) {
		patients, err := uc.ListPatients(ctx, "JOHN")
		assert.NoError(t, err)
		assert.Len(t, patients, 1)
		assert.Equal(t, "John Smith", patients[0].Name)
	})

	t.Run("Email match", func(t *testing.T) {
		patients, err := uc.ListPatients(ctx, "emma.wilson")
		assert.NoError(t, err)
		assert.Len(t, patients, 1)
	})

	t.Run("Phone match", func(t *testing.T) {
		patients, err := uc.ListPatients(ctx, "234-567-8905")
		assert.NoError(t, err)
		assert.Len(t, patients, 1)
		assert.Equal(t, "Michael Brown", patients[0].Name)
	})

	t.Run("No match", func(t *testing.T) {
		patients, err := uc.ListPatients(ctx, "zzz")
		assert.NoError(t, err)
		assert.Empty(t, patients)
	})
}
