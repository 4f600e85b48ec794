package constvars

// Client messages are safe to surface to the frontend; Dev messages are
// logged and only echoed outside production.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process request, please check your input"
	ErrClientNotLoggedIn                   = "You are not logged in, please log in first"
	ErrClientInvalidEmailOrPassword        = "Invalid email or password"
	ErrClientEmailAlreadyExists            = "User already exists"
	ErrClientInvalidPatientOrDoctor        = "Please select valid patient and doctor"
	ErrClientRecordNotFound                = "The requested record could not be found"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again later"
)

const (
	ErrDevValidationFailed       = "Request validation failed"
	ErrDevCannotParseJSON        = "Failed to parse JSON request body"
	ErrDevCannotMarshalJSON      = "Failed to marshal value to JSON"
	ErrDevCorruptStoredData      = "Stored collection is not valid JSON: %s"
	ErrDevKVStoreGet             = "Key-value store GET failed for key: %s"
	ErrDevKVStoreSet             = "Key-value store SET failed for key: %s"
	ErrDevKVStoreDelete          = "Key-value store DELETE failed for key: %s"
	ErrDevEmailAlreadyExists     = "Email is already registered"
	ErrDevInvalidCredentials     = "No user matches the given email and password"
	ErrDevNoActiveSession        = "No active identity is stored"
	ErrDevReferenceNotFound      = "%s with id %s does not exist"
	ErrDevRecordNotFound         = "%s with id %s not found in its collection"
	ErrDevServerDeadlineExceeded = "Server deadline exceeded while processing request"
	ErrDevUnhandledPanic         = "Recovered from unhandled panic"
)
