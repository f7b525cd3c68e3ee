package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patients table.
type Patient struct {
	ID         uuid.UUID `db:"id" json:"id"`
	FirstName  string    `db:"first_name" json:"first_name"`
	LastName   string    `db:"last_name" json:"last_name"`
	BirthDate  time.Time `db:"birth_date" json:"birth_date"`
	Sex        string    `db:"sex" json:"sex"`
	NationalID string    `db:"national_id" json:"national_id"`
	Address    *string   `db:"address" json:"address,omitempty"`
	Phone      *string   `db:"phone" json:"phone,omitempty"`
	Email      *string   `db:"email" json:"email,omitempty"`
	BloodType  *string   `db:"blood_type" json:"blood_type,omitempty"`
	Allergies  *string   `db:"allergies" json:"allergies,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`

	// Age is derived from BirthDate on read, never stored.
	Age int `db:"-" json:"age"`
}
