package contracts

import (
	"context"
	"medicore-service/internal/app/models"
	"medicore-service/internal/pkg/dto/requests"
)

type PatientRepository interface {
	FindAll(ctx context.Context) ([]models.Patient, error)
	FindByID(ctx context.Context, id string) (*models.Patient, error)
	Insert(ctx context.Context, patient models.Patient) error
	Update(ctx context.Context, patient models.Patient) error
	Delete(ctx context.Context, id string) error
}

type PatientUsecase interface {
	ListPatients(ctx context.Context, search string) ([]models.Patient, error)
	CreatePatient(ctx context.Context, request *requests.CreatePatientRequest) (*models.Patient, error)
	UpdatePatient(ctx context.Context, id string, request *requests.UpdatePatientRequest) (*models.Patient, error)
	DeletePatient(ctx context.Context, id string) error
}
