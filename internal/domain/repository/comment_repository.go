package repository

import (
	"context"

	"mytube/internal/domain/entity"
	"mytube/internal/errors"

	"github.com/google/uuid"
)

var ErrCommentNotFound = errors.New("comment not found")

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)
	UpdateContent(ctx context.Context, id uuid.UUID, content string) (*entity.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
