package doctors

import (
	"context"
	"medicore-service/internal/app/services/shared/kvstore"
	"medicore-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newDoctorRequest(name, specialization, email string) *requests.CreateDoctorRequest {
	return &requests.CreateDoctorRequest{
		Name:            name,
		Specialization:  specialization,
		Qualification:   "MD",
		Experience:      10,
		Phone:           "+1 555-0100",
		Email:           email,
		ConsultationFee: "100",
		Availability:    "Mon-Fri: 9AM-5PM",
	}
}

func TestCreateDoctor(t *testing.T) {
	ctx := context.Background()
	uc := NewDoctorUsecase(NewDoctorKvRepository(kvstore.NewMemoryStore()))

	created, err := uc.CreateDoctor(ctx, newDoctorRequest("Dr. Laura Hill", "Dermatology", "laura.hill@hospital.com"))
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.JoinedDate)

	doctors, err := uc.ListDoctors(ctx, "")
	assert.NoError(t, err)
	// 3 seed rows plus the created one, appended at the end.
	assert.Len(t, doctors, 4)
	assert.Equal(t, created.ID, doctors[3].ID)
}

func TestUpdateDoctor(t *testing.T) {
	ctx := context.Background()
	uc := NewDoctorUsecase(NewDoctorKvRepository(kvstore.NewMemoryStore()))

	t.Run("Preserves id, joined date and position", func(t *testing.T) {
		updated, err := uc.UpdateDoctor(ctx, "2", newDoctorRequest("Dr. Michael Chen", "Neurosurgery", "michael.chen@hospital.com"))
		assert.NoError(t, err)
		assert.Equal(t, "2", updated.ID)
		assert.Equal(t, "2021-06-20", updated.JoinedDate, "joined date must come from the stored row")

		doctors, err := uc.ListDoctors(ctx, "")
		assert.NoError(t, err)
		assert.Equal(t, "Neurosurgery", doctors[1].Specialization, "updated row keeps its slot")
	})

	t.Run("Unknown id fails", func(t *testing.T) {
		_, err := uc.UpdateDoctor(ctx, "missing", newDoctorRequest("Dr. Nobody", "Nothing", "no@hospital.com"))
		assert.Error(t, err)
	})
}

func TestDeleteDoctor(t *testing.T) {
	ctx := context.Background()
	uc := NewDoctorUsecase(NewDoctorKvRepository(kvstore.NewMemoryStore()))

	assert.NoError(t, uc.DeleteDoctor(ctx, "3"))
	assert.NoError(t, uc.DeleteDoctor(ctx, "3"))
	assert.NoError(t, uc.DeleteDoctor(ctx, "never-existed"))

	doctors, err := uc.ListDoctors(ctx, "")
	assert.NoError(t, err)
	assert.Len(t, doctors, 2)
}

func TestListDoctorsSearch(t *testing.T) {
	ctx := context.Background()
	uc := NewDoctorUsecase(NewDoctorKvRepository(kvstore.NewMemoryStore()))

	t.Run("Name match is case-insensitive", func(t *testing.T) {
		doctors, err := uc.ListDoctors(ctx, "CHEN")
		assert.NoError(t, err)
		assert.Len(t, doctors, 1)
		assert.Equal(t, "Dr. Michael Chen", doctors[0].Name)
	})

	t.Run("Specialization match", func(t *testing.T) {
		doctors, err := uc.ListDoctors(ctx, "pediatrics")
		assert.NoError(t, err)
		assert.Len(t, doctors, 1)
		assert.Equal(t, "Dr. Emily Davis", doctors[0].Name)
	})

	t.Run("Email match", func(t *testing.T) {
		doctors, err := uc.ListDoctors(ctx, "sarah.johnson@hospital.com")
		assert.NoError(t, err)
		assert.Len(t, doctors, 1)
		assert.Equal(t, "Dr. Sarah Johnson", doctors[0].Name)
	})

	t.Run("No match", func(t *testing.T) {
		doctors, err := uc.ListDoctors(ctx, "zzz")
		assert.NoError(t, err)
		assert.Empty(t, doctors)
	})
}
