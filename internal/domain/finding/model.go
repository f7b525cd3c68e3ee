package finding

import (
	"time"

	"github.com/google/uuid"
)

// Finding maps to the findings table.
type Finding struct {
	ID        uuid.UUID `db:"id" json:"id"`
	PatientID uuid.UUID `db:"patient_id" json:"patient_id"`
	DoctorID  uuid.UUID `db:"doctor_id" json:"doctor_id"`
	Date      time.Time `db:"date" json:"date"`
	Diagnosis string    `db:"diagnosis" json:"diagnosis"`
	Symptoms  *string   `db:"symptoms" json:"symptoms,omitempty"`
	Therapy   *string   `db:"therapy" json:"therapy,omitempty"`
	Notes     *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// LabResult maps to the lab_results table. Rows are owned by a finding and
// ordered by position within it.
type LabResult struct {
	ID             uuid.UUID `db:"id" json:"id"`
	FindingID      uuid.UUID `db:"finding_id" json:"finding_id"`
	TestName       string    `db:"test_name" json:"test_name"`
	Value          string    `db:"value" json:"value"`
	Unit           string    `db:"unit" json:"unit"`
	ReferenceRange string    `db:"reference_range" json:"reference_range"`
	Position       int       `db:"position" json:"position"`
}

// Row is a finding joined with patient and doctor names for list views.
type Row struct {
	Finding
	PatientName string `db:"patient_name" json:"patient_name"`
	DoctorName  string `db:"doctor_name" json:"doctor_name"`
}

// complete reports whether a candidate lab row carries all four fields.
// Incomplete rows are dropped before persistence, not rejected.
func (l *LabResult) complete() bool {
	return l.TestName != "" && l.Value != "" && l.Unit != "" && l.ReferenceRange != ""
}

// FilterComplete keeps only complete lab rows, preserving their order.
func FilterComplete(rows []*LabResult) []*LabResult {
	var kept []*LabResult
	for _, r := range rows {
		if r.complete() {
			kept = append(kept, r)
		}
	}
	return kept
}
