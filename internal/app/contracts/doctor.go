package contracts

import (
	"context"
	"medicore-service/internal/app/models"
	"medicore-service/internal/pkg/dto/requests"
)

type DoctorRepository interface {
	FindAll(ctx context.Context) ([]models.Doctor, error)
	FindByID(ctx context.Context, id string) (*models.Doctor, error)
	Insert(ctx context.Context, doctor models.Doctor) error
	Update(ctx context.Context, doctor models.Doctor) error
	Delete(ctx context.Context, id string) error
}

type DoctorUsecase interface {
	ListDoctors(ctx context.Context, search string) ([]models.Doctor, error)
	CreateDoctor(ctx context.Context, request *requests.CreateDoctorRequest) (*models.Doctor, error)
	UpdateDoctor(ctx context.Context, id string, request *requests.UpdateDoctorRequest) (*models.Doctor, error)
	DeleteDoctor(ctx context.Context, id string) error
}
