package patients

import (
	"context"
	"medicore-service/internal/app/contracts"
	"medicore-service/internal/app/models"
	"medicore-service/internal/app/services/shared/collection"
	"medicore-service/internal/pkg/constvars"
	"medicore-service/internal/pkg/exceptions"
)

type patientKvRepository struct {
	store *collection.Store[models.Patient]
}

func NewPatientKvRepository(kv contracts.KeyValueStore) contracts.PatientRepository {
	return &patientKvRepository{
		store: collection.NewStore(kv, constvars.StorageKeyPatients, models.SeedPatients),
	}
}

func (r *patientKvRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	return r.store.LoadAll(ctx)
}

func (r *patientKvRepository) FindByID(ctx context.Context, id string) (*models.Patient, error) {
	patients, err := r.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range patients {
		if patients[i].ID == id {
			return &patients[i], nil
		}
	}
	return nil, nil
}

func (r *patientKvRepository) Insert(ctx context.Context, patient models.Patient) error {
	patients, err := r.store.LoadAll(ctx)
	if err != nil {
		return err
	}
	patients = append(patients, patient)
	return r.store.SaveAll(ctx, patients)
}

func (r *patientKvRepository) Update(ctx context.Context, patient models.Patient) error {
	patients, err := r.store.LoadAll(ctx)
	if err != nil {
		return err
	}
	for i := range patients {
		if patients[i].ID == patient.ID {
			patients[i] = patient
			return r.store.SaveAll(ctx, patients)
		}
	}
	return exceptions.ErrRecordNotFound(nil, constvars.ResourcePatient, patient.ID)
}

func (r *patientKvRepository) Delete(ctx context.Context, id string) error {
	patients, err := r.store.LoadAll(ctx)
	if err != nil {
		return err
	}
	remaining := make([]models.Patient, 0, len(patients))
	for _, patient := range patients {
		if patient.ID != id {
			remaining = append(remaining, patient)
		}
	}
	return r.store.SaveAll(ctx, remaining)
}
