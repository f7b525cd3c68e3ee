package patient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/telemed/telemed/pkg/age"
)

// ErrValidation marks input errors so handlers answer 400; any other write
// error is a store failure and stays a 500.
var ErrValidation = errors.New("invalid input")

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrValidation}, args...)...)
}

type Service struct {
	patients Repository
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients}
}

var validSexes = map[string]bool{"male": true, "female": true}

var validBloodTypes = map[string]bool{
	"A+": true, "A-": true, "B+": true, "B-": true,
	"AB+": true, "AB-": true, "O+": true, "O-": true,
}

func (s *Service) validate(p *Patient) error {
	if p.FirstName == "" {
		return invalid("first_name is required")
	}
	if p.LastName == "" {
		return invalid("last_name is required")
	}
	if p.BirthDate.IsZero() {
		return invalid("birth_date is required")
	}
	if !validSexes[p.Sex] {
		return invalid("invalid sex: %s", p.Sex)
	}
	// Length check only, matching the registration numbers already on file.
	if len(p.NationalID) != 11 {
		return invalid("national_id must be 11 characters")
	}
	if p.BloodType != nil && *p.BloodType != "" && !validBloodTypes[*p.BloodType] {
		return invalid("invalid blood_type: %s", *p.BloodType)
	}
	p.Address = normalize(p.Address)
	p.Phone = normalize(p.Phone)
	p.Email = normalize(p.Email)
	p.BloodType = normalize(p.BloodType)
	p.Allergies = normalize(p.Allergies)
	return nil
}

func normalize(s *string) *string {
	if s != nil && *s == "" {
		return nil
	}
	return s
}

func (s *Service) Create(ctx context.Context, p *Patient) error {
	if err := s.validate(p); err != nil {
		return err
	}
	if err := s.patients.Create(ctx, p); err != nil {
		return err
	}
	p.Age = age.Years(p.BirthDate, time.Now())
	return nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	p, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Age = age.Years(p.BirthDate, time.Now())
	return p, nil
}

func (s *Service) Update(ctx context.Context, p *Patient) error {
	if err := s.validate(p); err != nil {
		return err
	}
	if err := s.patients.Update(ctx, p); err != nil {
		return err
	}
	p.Age = age.Years(p.BirthDate, time.Now())
	return nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.patients.Delete(ctx, id)
}

func (s *Service) Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Patient, int, error) {
	items, total, err := s.patients.Search(ctx, params, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	now := time.Now()
	for _, p := range items {
		p.Age = age.Years(p.BirthDate, now)
	}
	return items, total, nil
}
