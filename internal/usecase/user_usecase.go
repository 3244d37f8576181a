// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"mytube/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// AvatarPath and CoverImagePath are local files written by the delivery layer.
type RegisterInput struct {
	Username       string
	Email          string
	Fullname       string
	Password       string
	AvatarPath     string
	CoverImagePath string
}

// LoginInput identifies the account by username or email.
type LoginInput struct {
	Username string
	Email    string
	Password string
}

// ChangePasswordInput carries the current and the new password.
type ChangePasswordInput struct {
	OldPassword string
	NewPassword string
}

// UserUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*entity.AuthResult, error)
	Logout(ctx context.Context, userID uuid.UUID) error

	// RefreshTokens rotates the token pair. The presented token must equal the stored one.
	RefreshTokens(ctx context.Context, refreshToken string) (*entity.TokenPair, error)

	ChangePassword(ctx context.Context, userID uuid.UUID, input *ChangePasswordInput) error
	CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateFullname(ctx context.Context, userID uuid.UUID, fullname string) (*entity.User, error)

	// UpdateAvatar and UpdateCoverImage replace the asset and release the old one best-effort.
	UpdateAvatar(ctx context.Context, userID uuid.UUID, localPath string) (*entity.User, error)
	UpdateCoverImage(ctx context.Context, userID uuid.UUID, localPath string) (*entity.User, error)
}
