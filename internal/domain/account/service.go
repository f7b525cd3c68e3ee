package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/telemed/telemed/internal/platform/auth"
)

// ErrInvalidCredentials is deliberately generic so login responses never
// reveal whether the email exists.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrValidation marks input errors so handlers answer 400; any other write
// error is a store failure and stays a 500.
var ErrValidation = errors.New("invalid input")

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrValidation}, args...)...)
}

type Service struct {
	users  Repository
	issuer *auth.TokenIssuer
}

func NewService(users Repository, issuer *auth.TokenIssuer) *Service {
	return &Service{users: users, issuer: issuer}
}

// Login verifies the password and returns a signed token for the user.
func (s *Service) Login(ctx context.Context, email, password string) (string, *StaffUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	token, err := s.issuer.Issue(u.ID.String(), u.Email, u.Name)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (s *Service) Register(ctx context.Context, email, password, name string) (*StaffUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, invalid("email is required")
	}
	if len(password) < 8 {
		return nil, invalid("password must be at least 8 characters")
	}
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, invalid("email already registered")
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &StaffUser{Email: email, PasswordHash: string(hash), Name: name}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
