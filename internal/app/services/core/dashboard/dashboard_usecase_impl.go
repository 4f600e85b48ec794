package dashboard

import (
	"context"
	"medicore-service/internal/app/contracts"
	"medicore-service/internal/pkg/dto/responses"
)

type dashboardUsecase struct {
	PatientRepository       contracts.PatientRepository
	DoctorRepository        contracts.DoctorRepository
	AppointmentRepository   contracts.AppointmentRepository
	MedicalRecordRepository contracts.MedicalRecordRepository
}

func NewDashboardUsecase(
	patientRepository contracts.PatientRepository,
	doctorRepository contracts.DoctorRepository,
	appointmentRepository contracts.AppointmentRepository,
	medicalRecordRepository contracts.MedicalRecordRepository,
) contracts.DashboardUsecase {
	return &dashboardUsecase{
		PatientRepository:       patientRepository,
		DoctorRepository:        doctorRepository,
		AppointmentRepository:   appointmentRepository,
		MedicalRecordRepository: medicalRecordRepository,
	}
}

func (uc *dashboardUsecase) GetSummary(ctx context.Context) (*responses.DashboardSummary, error) {
	patients, err := uc.PatientRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	doctors, err := uc.DoctorRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	appointments, err := uc.AppointmentRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	records, err := uc.MedicalRecordRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	byStatus := make(map[string]int)
	for _, appointment := range appointments {
		byStatus[appointment.Status]++
	}

	return &responses.DashboardSummary{
		TotalPatients:        len(patients),
		TotalDoctors:         len(doctors),
		TotalAppointments:    len(appointments),
		TotalMedicalRecords:  len(records),
		AppointmentsByStatus: byStatus,
	}, nil
}
