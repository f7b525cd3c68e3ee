package finding

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrValidation marks input errors so handlers answer 400; any other write
// error is a store failure and stays a 500.
var ErrValidation = errors.New("invalid input")

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrValidation}, args...)...)
}

// TxRunner runs fn inside a transaction carried on the context. Repositories
// that see the transaction join it.
type TxRunner func(ctx context.Context, fn func(ctx context.Context) error) error

// Passthrough runs fn directly, with no transaction.
func Passthrough(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type Service struct {
	findings Repository
	tx       TxRunner
}

func NewService(findings Repository, tx TxRunner) *Service {
	if tx == nil {
		tx = Passthrough
	}
	return &Service{findings: findings, tx: tx}
}

func (s *Service) validate(f *Finding) error {
	if f.PatientID == uuid.Nil {
		return invalid("patient_id is required")
	}
	if f.DoctorID == uuid.Nil {
		return invalid("doctor_id is required")
	}
	if f.Date.IsZero() {
		return invalid("date is required")
	}
	if f.Diagnosis == "" {
		return invalid("diagnosis is required")
	}
	f.Symptoms = normalize(f.Symptoms)
	f.Therapy = normalize(f.Therapy)
	f.Notes = normalize(f.Notes)
	return nil
}

func normalize(s *string) *string {
	if s != nil && *s == "" {
		return nil
	}
	return s
}

// Create persists the finding and its complete lab rows in one transaction.
// Incomplete lab rows are dropped silently; the survivors keep their order.
func (s *Service) Create(ctx context.Context, f *Finding, labRows []*LabResult) error {
	if err := s.validate(f); err != nil {
		return err
	}
	kept := FilterComplete(labRows)
	return s.tx(ctx, func(ctx context.Context) error {
		if err := s.findings.Create(ctx, f); err != nil {
			return err
		}
		return s.insertLabRows(ctx, f.ID, kept)
	})
}

// Update rewrites the finding and replaces its entire lab result set. An
// empty set leaves the finding with zero lab rows.
func (s *Service) Update(ctx context.Context, f *Finding, labRows []*LabResult) error {
	if err := s.validate(f); err != nil {
		return err
	}
	kept := FilterComplete(labRows)
	return s.tx(ctx, func(ctx context.Context) error {
		if err := s.findings.Update(ctx, f); err != nil {
			return err
		}
		if err := s.findings.DeleteLabResults(ctx, f.ID); err != nil {
			return err
		}
		return s.insertLabRows(ctx, f.ID, kept)
	})
}

func (s *Service) insertLabRows(ctx context.Context, findingID uuid.UUID, rows []*LabResult) error {
	for i, l := range rows {
		l.FindingID = findingID
		l.Position = i
		if err := s.findings.AddLabResult(ctx, l); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Finding, error) {
	return s.findings.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.findings.Delete(ctx, id)
}

func (s *Service) Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Row, int, error) {
	return s.findings.Search(ctx, params, limit, offset)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Row, int, error) {
	return s.findings.ListByPatient(ctx, patientID, limit, offset)
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*Row, int, error) {
	return s.findings.ListByDoctor(ctx, doctorID, limit, offset)
}

func (s *Service) GetLabResults(ctx context.Context, findingID uuid.UUID) ([]*LabResult, error) {
	return s.findings.GetLabResults(ctx, findingID)
}
