package contracts

import (
	"context"
	"medicore-service/internal/app/models"
	"medicore-service/internal/pkg/dto/requests"
)

type MedicalRecordRepository interface {
	FindAll(ctx context.Context) ([]models.MedicalRecord, error)
	FindByID(ctx context.Context, id string) (*models.MedicalRecord, error)
	Insert(ctx context.Context, record models.MedicalRecord) error
	Update(ctx context.Context, record models.MedicalRecord) error
	Delete(ctx context.Context, id string) error
}

type MedicalRecordUsecase interface {
	ListMedicalRecords(ctx context.Context, search string) ([]models.MedicalRecord, error)
	CreateMedicalRecord(ctx context.Context, request *requests.CreateMedicalRecordRequest) (*models.MedicalRecord, error)
	UpdateMedicalRecord(ctx context.Context, id string, request *requests.UpdateMedicalRecordRequest) (*models.MedicalRecord, error)
	DeleteMedicalRecord(ctx context.Context, id string) error
}
