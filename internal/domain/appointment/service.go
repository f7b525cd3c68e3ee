package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrValidation marks input errors so handlers answer 400; any other error
// is a store failure and stays a 500.
var ErrValidation = errors.New("invalid input")

type Service struct {
	appointments Repository
	now          func() time.Time
}

func NewService(appointments Repository) *Service {
	return &Service{appointments: appointments, now: time.Now}
}

func (s *Service) Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Row, int, error) {
	if st, ok := params["status"]; ok && st != "" && !ValidStatuses[st] {
		return nil, 0, fmt.Errorf("%w: invalid status: %s", ErrValidation, st)
	}
	return s.appointments.Search(ctx, params, limit, offset)
}

func (s *Service) ListToday(ctx context.Context) ([]*Row, error) {
	return s.appointments.ListToday(ctx, s.now())
}

func (s *Service) ListUpcomingByPatient(ctx context.Context, patientID uuid.UUID) ([]*Row, error) {
	return s.appointments.ListUpcomingByPatient(ctx, patientID, s.now())
}

func (s *Service) ListUpcomingByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Row, error) {
	return s.appointments.ListUpcomingByDoctor(ctx, doctorID, s.now())
}
