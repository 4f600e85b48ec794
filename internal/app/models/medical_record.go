package models

// MedicalRecord follows the same name-snapshot rule as Appointment.
type MedicalRecord struct {
	ID           string `json:"id"`
	PatientID    string `json:"patientId"`
	PatientName  string `json:"patientName"`
	DoctorID     string `json:"doctorId"`
	DoctorName   string `json:"doctorName"`
	Diagnosis    string `json:"diagnosis"`
	Symptoms     string `json:"symptoms"`
	Prescription string `json:"prescription"`
	TestResults  string `json:"testResults"`
	Notes        string `json:"notes"`
	FollowUpDate string `json:"followUpDate"`
	RecordDate   string `json:"recordDate"`
}
