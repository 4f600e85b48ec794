package medicalrecords

import (
	"context"
	"medicore-service/internal/app/contracts"
	"medicore-service/internal/app/models"
	"medicore-service/internal/app/services/shared/collection"
	"medicore-service/internal/pkg/constvars"
	"medicore-service/internal/pkg/exceptions"
)

type medicalRecordKvRepository struct {
	store *collection.Store[models.MedicalRecord]
}

func NewMedicalRecordKvRepository(kv contracts.KeyValueStore) contracts.MedicalRecordRepository {
	return &medicalRecordKvRepository{
		store: collection.NewStore(kv, constvars.StorageKeyMedicalRecords, models.SeedMedicalRecords),
	}
}

func (r *medicalRecordKvRepository) FindAll(ctx context.Context) ([]models.MedicalRecord, error) {
	return r.store.LoadAll(ctx)
}

func (r *medicalRecordKvRepository) FindByID(ctx context.Context, id string) (*models.MedicalRecord, error) {
	records, err := r.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, nil
}

func (r *medicalRecordKvRepository) Insert(ctx context.Context, record models.MedicalRecord) error {
	records, err := r.store.LoadAll(ctx)
	if err != nil {
		return err
	}
	records = append(records, record)
	return r.store.SaveAll(ctx, records)
}

func (r *medicalRecordKvRepository) Update(ctx context.Context, record models.MedicalRecord) error {
	records, err := r.store.LoadAll(ctx)
	if err != nil {
		return err
	}
	for i := range records {
		if records[i].ID == record.ID {
			records[i] = record
			return r.store.SaveAll(ctx, records)
		}
	}
	return exceptions.ErrRecordNotFound(nil, constvars.ResourceMedicalRecord, record.ID)
}

func (r *medicalRecordKvRepository) Delete(ctx context.Context, id string) error {
	records, err := r.store.LoadAll(ctx)
	if err != nil {
		return err
	}
	remaining := make([]models.MedicalRecord, 0, len(records))
	for _, record := range records {
		if record.ID != id {
			remaining = append(remaining, record)
		}
	}
	return r.store.SaveAll(ctx, remaining)
}
