package requests

type CreateDoctorRequest struct {
	Name            string `json:"name" validate:"required"`
	Specialization  string `json:"specialization" validate:"required"`
	Qualification   string `json:"qualification" validate:"required"`
	Experience      int    `json:"experience" validate:"required,gt=0"`
	Phone           string `json:"phone" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	ConsultationFee string `json:"consultationFee" validate:"required"`
	Availability    string `json:"availability" validate:"required"`
}

type UpdateDoctorRequest = CreateDoctorRequest
