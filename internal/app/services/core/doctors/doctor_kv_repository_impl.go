package doctors

import (
	"context"
	"medicore-service/internal/app/contracts"
	"medicore-service/internal/app/models"
	"medicore-service/internal/app/services/shared/collection"
	"medicore-service/internal/pkg/constvars"
	"medicore-service/internal/pkg/exceptions"
)

type doctorKvRepository struct {
	store *collection.Store[models.Doctor]
}

func NewDoctorKvRepository(kv contracts.KeyValueStore) contracts.DoctorRepository {
	return &doctorKvRepository{
		store: collection.NewStore(kv, constvars.StorageKeyDoctors, models.SeedDoctors),
	}
}

func (r *doctorKvRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	return r.store.LoadAll(ctx)
}

func (r *doctorKvRepository) FindByID(ctx context.Context, id string) (*models.Doctor, error) {
	doctors, err := r.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range doctors {
		if doctors[i].ID == id {
			return &doctors[i], nil
		}
	}
	return nil, nil
}

func (r *doctorKvRepository) Insert(ctx context.Context, doctor models.Doctor) error {
	doctors, err := r.store.LoadAll(ctx)
	if err != nil {
		return err
	}
	doctors = append(doctors, doctor)
	return r.store.SaveAll(ctx, doctors)
}

func (r *doctorKvRepository) Update(ctx context.Context, doctor models.Doctor) error {
	doctors, err := r.store.LoadAll(ctx)
	if err != nil {
		return err
	}
	for i := range doctors {
		if doctors[i].ID == doctor.ID {
			doctors[i] = doctor
			return r.store.SaveAll(ctx, doctors)
		}
	}
	return exceptions.ErrRecordNotFound(nil, constvars.ResourceDoctor, doctor.ID)
}

func (r *doctorKvRepository) Delete(ctx context.Context, id string) error {
	doctors, err := r.store.LoadAll(ctx)
	if err != nil {
		return err
	}
	remaining := make([]models.Doctor, 0, len(doctors))
	for _, doctor := range doctors {
		if doctor.ID != id {
			remaining = append(remaining, doctor)
		}
	}
	return r.store.SaveAll(ctx, remaining)
}
