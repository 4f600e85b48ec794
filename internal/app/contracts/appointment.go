package contracts

import (
	"context"
	"medicore-service/internal/app/models"
	"medicore-service/internal/pkg/dto/requests"
)

type AppointmentRepository interface {
	FindAll(ctx context.Context) ([]models.Appointment, error)
	FindByID(ctx context.Context, id string) (*models.Appointment, error)
	Insert(ctx context.Context, appointment models.Appointment) error
	Update(ctx context.Context, appointment models.Appointment) error
	Delete(ctx context.Context, id string) error
}

type AppointmentUsecase interface {
	ListAppointments(ctx context.Context, status string) ([]models.Appointment, error)
	CreateAppointment(ctx context.Context, request *requests.CreateAppointmentRequest) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, id string, request *requests.UpdateAppointmentRequest) (*models.Appointment, error)
	DeleteAppointment(ctx context.Context, id string) error
}
