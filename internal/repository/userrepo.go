// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/movievault/movievault/internal/model"
)

// UserRepository provides account storage for registration and login.
type UserRepository interface {
	// Create inserts a new user. Returns errs.ErrAlreadyExists when the
	// username is taken; the check-and-insert is atomic even under
	// concurrent registrations of the same name.
	Create(ctx context.Context, u *model.User) error
	// GetByUsername loads a user by exact, case-sensitive username.
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}
