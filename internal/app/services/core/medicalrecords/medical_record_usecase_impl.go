package medicalrecords

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

type medicalRecordUsecase struct {
	MedicalRecordRepository contracts.MedicalRecordRepository
	PatientRepository       contracts.PatientRepository
	DoctorRepository        contracts.DoctorRepository
}

func NewMedicalRecordUsecase(
	medicalRecordRepository contracts.MedicalRecordRepository,
	patientRepository contracts.PatientRepository,
	doctorRepository contracts.DoctorRepository,
) contracts.MedicalRecordUsecase {
	return &medicalRecordUsecase{
		MedicalRecordRepository: medicalRecordRepository,
		PatientRepository:       patientRepository,
		DoctorRepository:        doctorRepository,
	}
}

func (uc *medicalRecordUsecase) ListMedicalRecords(ctx context.Context, search string) ([]models.MedicalRecord, error) {
	records, err := uc.MedicalRecordRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if search == "" {
		return records, nil
	}

	needle := strings.ToLower(search)
	filtered := make([]models.MedicalRecord, 0, len(records))
	for _, record := range records {
		if strings.Contains(strings.ToLower(record.PatientName), needle) ||
			strings.Contains(strings.ToLower(record.DoctorName), needle) ||
			strings.Contains(strings.ToLower(record.Diagnosis), needle) {
			filtered = append(filtered, record)
		}
	}
	return filtered, nil
}

func (uc *medicalRecordUsecase) resolveReferences(ctx context.Context, patientID, doctorID string) (*models.Patient, *models.Doctor, error) {
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

func (uc *medicalRecordUsecase) CreateMedicalRecord(ctx context.Context, request *requests.CreateMedicalRecordRequest) (*models.MedicalRecord, error) {
	patient, doctor, err := uc.resolveReferences(ctx, request.PatientID, request.DoctorID)
	if err != nil {
		return nil, err
	}

	record := models.MedicalRecord{
		ID:           utils.GenerateEntityID(),
		PatientID:    patient.ID,
		PatientName:  patient.Name,
		DoctorID:     doctor.ID,
		DoctorName:   doctor.Name,
		Diagnosis:    request.Diagnosis,
		Symptoms:     request.Symptoms,
		Prescription: request.Prescription,
		TestResults:  request.TestResults,
		Notes:        request.Notes,
		FollowUpDate: request.FollowUpDate,
		RecordDate:   utils.TodayDateStamp(),
	}

	if err := uc.MedicalRecordRepository.Insert(ctx, record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (uc *medicalRecordUsecase) UpdateMedicalRecord(ctx context.Context, id string, request *requests.UpdateMedicalRecordRequest) (*models.MedicalRecord, error) {
	existing, err := uc.MedicalRecordRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrRecordNotFound(nil, constvars.ResourceMedicalRecord, id)
	}

	patient, doctor, err := uc.resolveReferences(ctx, request.PatientID, request.DoctorID)
	if err != nil {
		return nil, err
	}

	record := models.MedicalRecord{
		ID:           existing.ID,
		PatientID:    patient.ID,
		PatientName:  patient.Name,
		DoctorID:     doctor.ID,
		DoctorName:   doctor.Name,
		Diagnosis:    request.Diagnosis,
		Symptoms:     request.Symptoms,
		Prescription: request.Prescription,
		TestResults:  request.TestResults,
		Notes:        request.Notes,
		FollowUpDate: request.FollowUpDate,
		RecordDate:   existing.RecordDate,
	}

	if err := uc.MedicalRecordRepository.Update(ctx, record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (uc *medicalRecordUsecase) DeleteMedicalRecord(ctx context.Context, id string) error {
	return uc.MedicalRecordRepository.Delete(ctx, id)
}
