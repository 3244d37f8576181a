package repository

import (
	"context"

	"mytube/internal/domain/entity"
	"mytube/internal/errors"

	"github.com/google/uuid"
)

var ErrTweetNotFound = errors.New("tweet not found")

type TweetRepository interface {
	Create(ctx context.Context, tweet *entity.Tweet) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tweet, error)
	UpdateContent(ctx context.Context, id uuid.UUID, content string) (*entity.Tweet, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
