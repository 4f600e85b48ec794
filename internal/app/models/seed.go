package models

// Seed rows written to a collection the first time it is read and its
// storage key is entirely missing. Seeding never happens for a key that
// holds an empty array.

func SeedPatients() []Patient {
	return []Patient{
		{
			ID:               "1",
			Name:             "John Smith",
			Age:              45,
			Gender:           "Male",
			Phone:            "+1 234-567-8901",
			Email:            "john.smith@email.com",
			Address:          "123 Main St, New York, NY",
			BloodGroup:       "O+",
			EmergencyContact: "+1 234-567-8902",
			RegisteredDate:   "2024-01-15",
		},
		{
			ID:               "2",
			Name:             "Emma Wilson",
			Age:              32,
			Gender:           "Female",
			Phone:            "+1 234-567-8903",
			Email:            "emma.wilson@email.com",
			Address:          "456 Oak Ave, Los Angeles, CA",
			BloodGroup:       "A+",
			EmergencyContact: "+1 234-567-8904",
			RegisteredDate:   "2024-02-20",
		},
		{
			ID:               "3",
			Name:             "Michael Brown",
			Age:              58,
			Gender:           "Male",
			Phone:            "+1 234-567-8905",
			Email:            "michael.brown@email.com",
			Address:          "789 Pine Rd, Chicago, IL",
			BloodGroup:       "B+",
			EmergencyContact: "+1 234-567-8906",
			RegisteredDate:   "2024-03-10",
		},
	}
}

func SeedDoctors() []Doctor {
	return []Doctor{
		{
			ID:              "1",
			Name:            "Dr. Sarah Johnson",
			Specialization:  "Cardiology",
			Qualification:   "MD, FACC",
			Experience:      15,
			Phone:           "+1 234-567-9001",
			Email:           "sarah.johnson@hospital.com",
			ConsultationFee: "150",
			Availability:    "Mon-Fri: 9AM-5PM",
			JoinedDate:      "2020-03-15",
		},
		{
			ID:              "2",
			Name:            "Dr. Michael Chen",
			Specialization:  "Neurology",
			Qualification:   "MD, PhD",
			Experience:      12,
			Phone:           "+1 234-567-9002",
			Email:           "michael.chen@hospital.com",
			ConsultationFee: "180",
			Availability:    "Mon-Sat: 10AM-6PM",
			JoinedDate:      "2021-06-20",
		},
		{
			ID:              "3",
			Name:            "Dr. Emily Davis",
			Specialization:  "Pediatrics",
			Qualification:   "MD, FAAP",
			Experience:      8,
			Phone:           "+1 234-567-9003",
			Email:           "emily.davis@hospital.com",
			ConsultationFee: "120",
			Availability:    "Tue-Sat: 8AM-4PM",
			JoinedDate:      "2022-01-10",
		},
	}
}

func SeedAppointments() []Appointment {
	return []Appointment{
		{
			ID:          "1",
			PatientID:   "1",
			PatientName: "John Smith",
			DoctorID:    "1",
			DoctorName:  "Dr. Sarah Johnson",
			Date:        "2024-12-25",
			Time:        "10:00 AM",
			Reason:      "Regular checkup",
			Status:      "Scheduled",
			CreatedAt:   "2024-12-20",
		},
		{
			ID:          "2",
			PatientID:   "2",
			PatientName: "Emma Wilson",
			DoctorID:    "2",
			DoctorName:  "Dr. Michael Chen",
			Date:        "2024-12-26",
			Time:        "2:00 PM",
			Reason:      "Headache consultation",
			Status:      "Completed",
			CreatedAt:   "2024-12-18",
		},
		{
			ID:          "3",
			PatientID:   "3",
			PatientName: "Michael Brown",
			DoctorID:    "3",
			DoctorName:  "Dr. Emily Davis",
			Date:        "2024-12-27",
			Time:        "11:30 AM",
			Reason:      "Follow-up visit",
			Status:      "Cancelled",
			CreatedAt:   "2024-12-19",
		},
	}
}

func SeedMedicalRecords() []MedicalRecord {
	return []MedicalRecord{
		{
			ID:           "1",
			PatientID:    "1",
			PatientName:  "John Smith",
			DoctorID:     "1",
			DoctorName:   "Dr. Sarah Johnson",
			Diagnosis:    "Hypertension",
			Symptoms:     "High blood pressure, headaches, dizziness",
			Prescription: "Lisinopril 10mg once daily",
			TestResults:  "Blood pressure: 145/95 mmHg",
			Notes:        "Patient advised to reduce salt intake and exercise regularly",
			FollowUpDate: "2025-02-15",
			RecordDate:   "2024-12-15",
		},
		{
			ID:           "2",
			PatientID:    "2",
			PatientName:  "Emma Wilson",
			DoctorID:     "2",
			DoctorName:   "Dr. Michael Chen",
			Diagnosis:    "Migraine",
			Symptoms:     "Severe headaches, sensitivity to light, nausea",
			Prescription: "Sumatriptan 50mg as needed",
			TestResults:  "MRI scan: Normal, no abnormalities detected",
			Notes:        "Recommend stress management techniques and adequate sleep",
			FollowUpDate: "2025-01-20",
			RecordDate:   "2024-12-10",
		},
		{
			ID:           "3",
			PatientID:    "3",
			PatientName:  "Michael Brown",
			DoctorID:     "3",
			DoctorName:   "Dr. Emily Davis",
			Diagnosis:    "Type 2 Diabetes",
			Symptoms:     "Increased thirst, frequent urination, fatigue",
			Prescription: "Metformin 500mg twice daily",
			TestResults:  "HbA1c: 7.5%, Fasting glucose: 145 mg/dL",
			Notes:        "Patient educated on diet management and blood sugar monitoring",
			FollowUpDate: "2025-01-30",
			RecordDate:   "2024-12-05",
		},
	}
}
