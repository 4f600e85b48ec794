package requests

type CreatePatientRequest struct {
	Name             string `json:"name" validate:"required"`
	Age              int    `json:"age" validate:"required,gt=0"`
	Gender           string `json:"gender" validate:"required,oneof=Male Female Other"`
	Phone            string `json:"phone" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Address          string `json:"address" validate:"required"`
	BloodGroup       string `json:"bloodGroup" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	EmergencyContact string `json:"emergencyContact" validate:"required"`
}

// Edit pages submit the complete previously loaded record, so update
// carries the same payload as create.
type UpdatePatientRequest = CreatePatientRequest
