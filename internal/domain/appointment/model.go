package appointment

import (
	"time"

	"github.com/google/uuid"
)

// Appointment maps to the appointments table. Scheduling happens in an
// upstream system; this surface only reads.
type Appointment struct {
	ID        uuid.UUID `db:"id" json:"id"`
	PatientID uuid.UUID `db:"patient_id" json:"patient_id"`
	DoctorID  uuid.UUID `db:"doctor_id" json:"doctor_id"`
	Datetime  time.Time `db:"datetime" json:"datetime"`
	Reason    *string   `db:"reason" json:"reason,omitempty"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Row is an appointment joined with patient and doctor names for list views.
type Row struct {
	Appointment
	PatientName string `db:"patient_name" json:"patient_name"`
	DoctorName  string `db:"doctor_name" json:"doctor_name"`
}

var ValidStatuses = map[string]bool{
	"scheduled": true, "completed": true, "cancelled": true,
}
