package constvars

// Storage keys. Each key holds one JSON array, plus the single
// active-identity object under StorageKeyActiveUser. The layout is kept
// compatible with what the frontend reads back.
const (
	StorageKeyUsers          = "users"
	StorageKeyActiveUser     = "user"
	StorageKeyPatients       = "patients"
	StorageKeyDoctors        = "doctors"
	StorageKeyAppointments   = "appointments"
	StorageKeyMedicalRecords = "medicalRecords"
)

const (
	AppointmentStatusScheduled = "Scheduled"
	AppointmentStatusCompleted = "Completed"
	AppointmentStatusCancelled = "Cancelled"
	AppointmentStatusAll       = "All"
)

const (
	ResourcePatient       = "Patient"
	ResourceDoctor        = "Doctor"
	ResourceAppointment   = "Appointment"
	ResourceMedicalRecord = "MedicalRecord"
)

const DateOnlyFormat = "2006-01-02"

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY  ContextKey = "request_id"
	CONTEXT_ACTIVE_USER_KEY ContextKey = "active_user"
)

const (
	URLParamID = "id"

	QueryParamSearch = "search"
	QueryParamStatus = "status"
)
