package doctor

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

type Service struct {
	doctors Repository
}

func NewService(doctors Repository) *Service {
	return &Service{doctors: doctors}
}

var validSpecialties = func() map[string]bool {
	m := make(map[string]bool, len(Specialties))
	for _, s := range Specialties {
		m[s] = true
	}
	return m
}()

func (s *Service) validate(d *Doctor) error {
	if d.FirstName == "" {
		return invalid("first_name is required")
	}
	if d.LastName == "" {
		return invalid("last_name is required")
	}
	if !validSpecialties[d.Specialty] {
		return invalid("invalid specialty: %s", d.Specialty)
	}
	d.Phone = normalize(d.Phone)
	d.Email = normalize(d.Email)
	d.OfficeLocation = normalize(d.OfficeLocation)
	return nil
}

func normalize(s *string) *string {
	if s != nil && *s == "" {
		return nil
	}
	return s
}

func (s *Service) Create(ctx context.Context, d *Doctor) error {
	if err := s.validate(d); err != nil {
		return err
	}
	return s.doctors.Create(ctx, d)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return s.doctors.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, d *Doctor) error {
	if err := s.validate(d); err != nil {
		return err
	}
	return s.doctors.Update(ctx, d)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.doctors.Delete(ctx, id)
}

func (s *Service) Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Doctor, int, error) {
	return s.doctors.Search(ctx, params, limit, offset)
}

// ActiveSpecialties lists the specialties actually present in the registry,
// for the search filter dropdown.
func (s *Service) ActiveSpecialties(ctx context.Context) ([]string, error) {
	return s.doctors.DistinctSpecialties(ctx)
}
