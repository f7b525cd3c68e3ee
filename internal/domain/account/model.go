package account

import (
	"time"

	"github.com/google/uuid"
)

// StaffUser maps to the staff_users table. The password hash never leaves
// the package in JSON.
type StaffUser struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Name         string    `db:"name" json:"name"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
