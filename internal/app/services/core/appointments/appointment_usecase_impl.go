package appointments

import (
	"context"
	"medicore-service/internal/app/contracts"
	"medicore-service/internal/app/models"
	"medicore-service/internal/pkg/constvars"
	"medicore-service/internal/pkg/dto/requests"
	"medicore-service/internal/pkg/exceptions"
	"medicore-service/internal/pkg/utils"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	PatientRepository     contracts.PatientRepository
	DoctorRepository      contracts.DoctorRepository
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	patientRepository contracts.PatientRepository,
	doctorRepository contracts.DoctorRepository,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		PatientRepository:     patientRepository,
		DoctorRepository:      doctorRepository,
	}
}

func (uc *appointmentUsecase) ListAppointments(ctx context.Context, status string) ([]models.Appointment, error) {
	appointments, err := uc.AppointmentRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" || status == constvars.AppointmentStatusAll {
		return appointments, nil
	}

	filtered := make([]models.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		if appointment.Status == status {
			filtered = append(filtered, appointment)
		}
	}
	return filtered, nil
}

// resolveReferences loads the referenced patient and doctor, rejecting
// the write before anything is persisted when either id is unknown. The
// resolved names are copied onto the appointment as point-in-time
// snapshots.
func (uc *appointmentUsecase) resolveReferences(ctx context.Context, patientID, doctorID string) (*models.Patient, *models.Doctor, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, nil, err
	}
	if patient == nil {
		return nil, nil, exceptions.ErrReferenceNotFound(nil, constvars.ResourcePatient, patientID)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, nil, err
	}
	if doctor == nil {
		return nil, nil, exceptions.ErrReferenceNotFound(nil, constvars.ResourceDoctor, doctorID)
	}

	return patient, doctor, nil
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointmentRequest) (*models.Appointment, error) {
	patient, doctor, err := uc.resolveReferences(ctx, request.PatientID, request.DoctorID)
	if err != nil {
		return nil, err
	}

	appointment := models.Appointment{
		ID:          utils.GenerateEntityID(),
		PatientID:   patient.ID,
		PatientName: patient.Name,
		DoctorID:    doctor.ID,
		DoctorName:  doctor.Name,
		Date:        request.Date,
		Time:        request.Time,
		Reason:      request.Reason,
		Status:      request.Status,
		CreatedAt:   utils.TodayDateStamp(),
	}

	if err := uc.AppointmentRepository.Insert(ctx, appointment); err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (uc *appointmentUsecase) UpdateAppointment(ctx context.Context, id string, request *requests.UpdateAppointmentRequest) (*models.Appointment, error) {
	existing, err := uc.AppointmentRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrRecordNotFound(nil, constvars.ResourceAppointment, id)
	}

	patient, doctor, err := uc.resolveReferences(ctx, request.PatientID, request.DoctorID)
	if err != nil {
		return nil, err
	}

	appointment := models.Appointment{
		ID:          existing.ID,
		PatientID:   patient.ID,
		PatientName: patient.Name,
		DoctorID:    doctor.ID,
		DoctorName:  doctor.Name,
		Date:        request.Date,
		Time:        request.Time,
		Reason:      request.Reason,
		Status:      request.Status,
		CreatedAt:   existing.CreatedAt,
	}

	if err := uc.AppointmentRepository.Update(ctx, appointment); err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (uc *appointmentUsecase) DeleteAppointment(ctx context.Context, id string) error {
	return uc.AppointmentRepository.Delete(ctx, id)
}
