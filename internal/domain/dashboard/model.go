package dashboard

import (
	"time"

	"github.com/google/uuid"
)

// Stats holds the headline counts for the landing page.
type Stats struct {
	Patients          int `json:"patients"`
	Doctors           int `json:"doctors"`
	Findings          int `json:"findings"`
	AppointmentsToday int `json:"appointments_today"`
}

// RecentFinding is a finding with display names for the recent-activity list.
type RecentFinding struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Date        time.Time `db:"date" json:"date"`
	Diagnosis   string    `db:"diagnosis" json:"diagnosis"`
	PatientName string    `db:"patient_name" json:"patient_name"`
	DoctorName  string    `db:"doctor_name" json:"doctor_name"`
}
