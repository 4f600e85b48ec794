package doctors

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

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
}

func NewDoctorUsecase(doctorRepository contracts.DoctorRepository) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository: doctorRepository,
	}
}

func (uc *doctorUsecase) ListDoctors(ctx context.Context, search string) ([]models.Doctor, error) {
	doctors, err := uc.DoctorRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if search == "" {
		return doctors, nil
	}

	needle := strings.ToLower(search)
	filtered := make([]models.Doctor, 0, len(doctors))
	for _, doctor := range doctors {
		if strings.Contains(strings.ToLower(doctor.Name), needle) ||
			strings.Contains(strings.ToLower(doctor.Specialization), needle) ||
			strings.Contains(strings.ToLower(doctor.Email), needle) {
			filtered = append(filtered, doctor)
		}
	}
	return filtered, nil
}

func (uc *doctorUsecase) CreateDoctor(ctx context.Context, request *requests.CreateDoctorRequest) (*models.Doctor, error) {
	doctor := models.Doctor{
		ID:              utils.GenerateEntityID(),
		Name:            request.Name,
		Specialization:  request.Specialization,
		Qualification:   request.Qualification,
		Experience:      request.Experience,
		Phone:           request.Phone,
		Email:           request.Email,
		ConsultationFee: request.ConsultationFee,
		Availability:    request.Availability,
		JoinedDate:      utils.TodayDateStamp(),
	}

	if err := uc.DoctorRepository.Insert(ctx, doctor); err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (uc *doctorUsecase) UpdateDoctor(ctx context.Context, id string, request *requests.UpdateDoctorRequest) (*models.Doctor, error) {
	existing, err := uc.DoctorRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrRecordNotFound(nil, constvars.ResourceDoctor, id)
	}

	doctor := models.Doctor{
		ID:              existing.ID,
		Name:            request.Name,
		Specialization:  request.Specialization,
		Qualification:   request.Qualification,
		Experience:      request.Experience,
		Phone:           request.Phone,
		Email:           request.Email,
		ConsultationFee: request.ConsultationFee,
		Availability:    request.Availability,
		JoinedDate:      existing.JoinedDate,
	}

	if err := uc.DoctorRepository.Update(ctx, doctor); err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (uc *doctorUsecase) DeleteDoctor(ctx context.Context, id string) error {
	return uc.DoctorRepository.Delete(ctx, id)
}
