package requests

type CreateAppointmentRequest struct {
	PatientID string `json:"patientId" validate:"required"`
	DoctorID  string `json:"doctorId" validate:"required"`
	Date      string `json:"date" validate:"required"`
	Time      string `json:"time" validate:"required"`
	Reason    string `json:"reason" validate:"required"`
	Status    string `json:"status" validate:"required,oneof=Scheduled Completed Cancelled"`
}

type UpdateAppointmentRequest = CreateAppointmentRequest
