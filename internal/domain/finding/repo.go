package finding

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("finding not found")

type Repository interface {
	Create(ctx context.Context, f *Finding) error
	GetByID(ctx context.Context, id uuid.UUID) (*Finding, error)
	Update(ctx context.Context, f *Finding) error
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Row, int, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Row, int, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Row, int, error)
	// Lab results
	AddLabResult(ctx context.Context, l *LabResult) error
	GetLabResults(ctx context.Context, findingID uuid.UUID) ([]*LabResult, error)
	DeleteLabResults(ctx context.Context, findingID uuid.UUID) error
}
