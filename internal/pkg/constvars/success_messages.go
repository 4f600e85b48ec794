package constvars

const (
	UserRegisteredSuccess = "Successfully registered user"
	UserLoginSuccess      = "Successfully logged in"
	UserLogoutSuccess     = "Successfully logged out"
	SessionRestoreSuccess = "Successfully restored session"

	PatientListSuccess    = "Successfully retrieved patients"
	PatientCreatedSuccess = "Successfully created patient"
	PatientUpdatedSuccess = "Successfully updated patient"
	PatientDeletedSuccess = "Successfully deleted patient"

	DoctorListSuccess    = "Successfully retrieved doctors"
	DoctorCreatedSuccess = "Successfully created doctor"
	DoctorUpdatedSuccess = "Successfully updated doctor"
	DoctorDeletedSuccess = "Successfully deleted doctor"

	AppointmentListSuccess    = "Successfully retrieved appointments"
	AppointmentCreatedSuccess = "Successfully created appointment"
	AppointmentUpdatedSuccess = "Successfully updated appointment"
	AppointmentDeletedSuccess = "Successfully deleted appointment"

	MedicalRecordListSuccess    = "Successfully retrieved medical records"
	MedicalRecordCreatedSuccess = "Successfully created medical record"
	MedicalRecordUpdatedSuccess = "Successfully updated medical record"
	MedicalRecordDeletedSuccess = "Successfully deleted medical record"

	DashboardSummarySuccess = "Successfully retrieved dashboard summary"
)
