package appointments

import (
	"context"
	"medicore-service/internal/app/contracts"
	"medicore-service/internal/app/models"
	"medicore-service/internal/app/services/shared/collection"
	"medicore-service/internal/pkg/constvars"
	"medicore-service/internal/pkg/exceptions"
)

type appointmentKvRepository struct {
	store *collection.Store[models.Appointment]
}

func NewAppointmentKvRepository(kv contracts.KeyValueStore) contracts.AppointmentRepository {
	return &appointmentKvRepository{
		store: collection.NewStore(kv, constvars.StorageKeyAppointments, models.SeedAppointments),
	}
}

func (r *appointmentKvRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	return r.store.LoadAll(ctx)
}

func (r *appointmentKvRepository) FindByID(ctx context.Context, id string) (*models.Appointment, error) {
	appointments, err := r.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range appointments {
		if appointments[i].ID == id {
			return &appointments[i], nil
		}
	}
	return nil, nil
}

func (r *appointmentKvRepository) Insert(ctx context.Context, appointment models.Appointment) error {
	appointments, err := r.store.LoadAll(ctx)
	if err != nil {
		return err
	}
	appointments = append(appointments, appointment)
	return r.store.SaveAll(ctx, appointments)
}

func (r *appointmentKvRepository) Update(ctx context.Context, appointment models.Appointment) error {
	appointments, err := r.store.LoadAll(ctx)
	if err != nil {
		return err
	}
	for i := range appointments {
		if appointments[i].ID == appointment.ID {
			appointments[i] = appointment
			return r.store.SaveAll(ctx, appointments)
		}
	}
	return exceptions.ErrRecordNotFound(nil, constvars.ResourceAppointment, appointment.ID)
}

func (r *appointmentKvRepository) Delete(ctx context.Context, id string) error {
	appointments, err := r.store.LoadAll(ctx)
	if err != nil {
		return err
	}
	remaining := make([]models.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		if appointment.ID != id {
			remaining = append(remaining, appointment)
		}
	}
	return r.store.SaveAll(ctx, remaining)
}
