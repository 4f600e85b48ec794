package models

type Doctor struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Specialization  string `json:"specialization"`
	Qualification   string `json:"qualification"`
	Experience      int    `json:"experience"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	ConsultationFee string `json:"consultationFee"`
	Availability    string `json:"availability"`
	JoinedDate      string `json:"joinedDate"`
}
