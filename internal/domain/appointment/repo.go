package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Row, int, error)
	ListToday(ctx context.Context, now time.Time) ([]*Row, error)
	ListUpcomingByPatient(ctx context.Context, patientID uuid.UUID, now time.Time) ([]*Row, error)
	ListUpcomingByDoctor(ctx context.Context, doctorID uuid.UUID, now time.Time) ([]*Row, error)
}
