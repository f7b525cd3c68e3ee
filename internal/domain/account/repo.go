package account

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("user not found")

type Repository interface {
	Create(ctx context.Context, u *StaffUser) error
	GetByEmail(ctx context.Context, email string) (*StaffUser, error)
}
