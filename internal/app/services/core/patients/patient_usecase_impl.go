package patients

import (
	"context"
	"medicore-service/internal/app/contracts"
	"medicore-service/internal/app/models"
	"medicore-service/internal/pkg/constvars"
	"medicore-service/internal/pkg/dto/requests"
	"medicore-service/internal/pkg/exceptions"
	"medicore-service/internal/pkg/utils"
	"strings"
)

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
}

func NewPatientUsecase(patientRepository contracts.PatientRepository) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
	}
}

func (uc *patientUsecase) ListPatients(ctx context.Context, search string) ([]models.Patient, error) {
	patients, err := uc.PatientRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if search == "" {
		return patients, nil
	}

	// Name and email match as lower-cased substrings, phone as a raw
	// substring.
	needle := strings.ToLower(search)
	filtered := make([]models.Patient, 0, len(patients))
	for _, patient := range patients {
		if strings.Contains(strings.ToLower(patient.Name), needle) ||
			strings.Contains(strings.ToLower(patient.Email), needle) ||
			strings.Contains(patient.Phone, search) {
			filtered = append(filtered, patient)
		}
	}
	return filtered, nil
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatientRequest) (*models.Patient, error) {
	patient := models.Patient{
		ID:               utils.GenerateEntityID(),
		Name:             request.Name,
		Age:              request.Age,
		Gender:           request.Gender,
		Phone:            request.Phone,
		Email:            request.Email,
		Address:          request.Address,
		BloodGroup:       request.BloodGroup,
		EmergencyContact: request.EmergencyContact,
		RegisteredDate:   utils.TodayDateStamp(),
	}

	if err := uc.PatientRepository.Insert(ctx, patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, id string, request *requests.UpdatePatientRequest) (*models.Patient, error) {
	existing, err := uc.PatientRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrRecordNotFound(nil, constvars.ResourcePatient, id)
	}

	// Full-record replace; only id and the registration stamp survive
	// from the stored row.
	patient := models.Patient{
		ID:               existing.ID,
		Name:             request.Name,
		Age:              request.Age,
		Gender:           request.Gender,
		Phone:            request.Phone,
		Email:            request.Email,
		Address:          request.Address,
		BloodGroup:       request.BloodGroup,
		EmergencyContact: request.EmergencyContact,
		RegisteredDate:   existing.RegisteredDate,
	}

	if err := uc.PatientRepository.Update(ctx, patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (uc *patientUsecase) DeletePatient(ctx context.Context, id string) error {
	return uc.PatientRepository.Delete(ctx, id)
}
