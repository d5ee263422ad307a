package store

import (
	"context"
	"errors"
	"strings"

	"webepex/models"
)

var (
	ErrDuplicateEmail = errors.New("user with this email already exists")
	ErrUserNotFound   = errors.New("user not found")
)

// UserStore is the credential repository. Implementations must make Create
// atomic per normalized email: under concurrent signups for the same address
// at most one may succeed.
type UserStore interface {
	Create(ctx context.Context, email, fullName, passwordHash string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	UpdateStatus(ctx context.Context, id string, update models.StatusUpdate) (*models.User, error)
}

// NormalizeEmail is the canonical form used for storage and lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
