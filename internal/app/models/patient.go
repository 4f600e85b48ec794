package models

type Patient struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Age              int    `json:"age"`
	Gender           string `json:"gender"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	Address          string `json:"address"`
	BloodGroup       string `json:"bloodGroup"`
	EmergencyContact string `json:"emergencyContact"`
	RegisteredDate   string `json:"registeredDate"`
}
