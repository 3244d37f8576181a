// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"mytube/internal/domain/entity"
	"mytube/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is a domain-specific error returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when the username or email is already taken.
	ErrDuplicateUser = errors.New("user already exists")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// Create persists a new user. The username is expected lowercase and trimmed.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByIDForUpdate is FindByID with a row lock, for use inside a transaction.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername matches the lowercase username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByUsernameOrEmail returns the first user matching either value. Empty values are ignored.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error)

	// Update applies the patch and returns the updated user.
	Update(ctx context.Context, id uuid.UUID, patch entity.UserPatch) (*entity.User, error)

	// SetRefreshToken replaces the stored refresh token. Nil clears it.
	SetRefreshToken(ctx context.Context, id uuid.UUID, token *string) error
}
