package repository

import (
	"context"

	"mytube/internal/domain/entity"
	"mytube/internal/errors"

	"github.com/google/uuid"
)

var (
	ErrLikeNotFound = errors.New("like not found")
	// ErrDuplicateLike is returned when the (subject, likedBy) pair already exists.
	ErrDuplicateLike = errors.New("like already exists")
)

// LikeRepository stores likes. Presence of a row means "liked".
type LikeRepository interface {
	Find(ctx context.Context, subject entity.LikeSubject, likedBy uuid.UUID) (*entity.Like, error)
	Create(ctx context.Context, like *entity.Like) error
	Delete(ctx context.Context, id uuid.UUID) error
}
