package responses

type DashboardSummary struct {
	TotalPatients        int            `json:"totalPatients"`
	TotalDoctors         int            `json:"totalDoctors"`
	TotalAppointments    int            `json:"totalAppointments"`
	TotalMedicalRecords  int            `json:"totalMedicalRecords"`
	AppointmentsByStatus map[string]int `json:"appointmentsByStatus"`
}
