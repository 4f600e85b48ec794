package requests

type CreateMedicalRecordRequest struct {
	PatientID    string `json:"patientId" validate:"required"`
	DoctorID     string `json:"doctorId" validate:"required"`
	Diagnosis    string `json:"diagnosis" validate:"required"`
	Symptoms     string `json:"symptoms" validate:"required"`
	Prescription string `json:"prescription" validate:"required"`
	TestResults  string `json:"testResults"`
	Notes        string `json:"notes"`
	FollowUpDate string `json:"followUpDate"`
}

type UpdateMedicalRecordRequest = CreateMedicalRecordRequest
