package doctor

import (
	"time"

	"github.com/google/uuid"
)

// Doctor maps to the doctors table.
type Doctor struct {
	ID             uuid.UUID `db:"id" json:"id"`
	FirstName      string    `db:"first_name" json:"first_name"`
	LastName       string    `db:"last_name" json:"last_name"`
	Specialty      string    `db:"specialty" json:"specialty"`
	Phone          *string   `db:"phone" json:"phone,omitempty"`
	Email          *string   `db:"email" json:"email,omitempty"`
	OfficeLocation *string   `db:"office_location" json:"office_location,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// Specialties is the fixed set offered by the intake form.
var Specialties = []string{
	"General Medicine",
	"Cardiology",
	"Dermatology",
	"Neurology",
	"Orthopedics",
	"Pediatrics",
	"Psychiatry",
	"Radiology",
	"Surgery",
	"Gynecology",
	"Ophthalmology",
	"Otorhinolaryngology",
	"Urology",
	"Oncology",
	"Endocrinology",
	"Gastroenterology",
	"Nephrology",
	"Pulmonology",
	"Rheumatology",
	"Anesthesiology",
}
