package impl

import (
	"context"
	"strings"

	"mytube/internal/domain/entity"
	domainerrors "mytube/internal/domain/errors"
	"mytube/internal/domain/repository"
	"mytube/internal/errors"
	"mytube/internal/usecase"

	"github.com/google/uuid"
)

type tweetService struct {
	tweetRepo repository.TweetRepository
	userRepo  repository.UserRepository
	resolver  repository.RelationshipResolver
}

// NewTweetService is the constructor for tweetService.
func NewTweetService(
	tweetRepo repository.TweetRepository,
	userRepo repository.UserRepository,
	resolver repository.RelationshipResolver,
) usecase.TweetUsecase {
	return &tweetService{
		tweetRepo: tweetRepo,
		userRepo:  userRepo,
		resolver:  resolver,
	}
}

func (srv *tweetService) Create(ctx context.Context, callerID uuid.UUID, content string) (*entity.Tweet, error) {
	if err := requireFields(field{"content", content}); err != nil {
		return nil, err
	}

	tweet := &entity.Tweet{Content: strings.TrimSpace(content), OwnerID: callerID}
	if err := srv.tweetRepo.Create(ctx, tweet); err != nil {
		return nil, errors.Wrap(err, "failed to create tweet")
	}

	return tweet, nil
}

func (srv *tweetService) ListByUser(ctx context.Context, ownerID uuid.UUID) ([]*entity.TweetWithOwner, error) {
	if _, err := srv.userRepo.FindByID(ctx, ownerID); err != nil {
		return nil, translate(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to find user")
	}

	tweets, err := srv.resolver.UserTweets(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tweets")
	}

	return tweets, nil
}

func (srv *tweetService) Update(ctx context.Context, callerID, tweetID uuid.UUID, content string) (*entity.Tweet, error) {
	if err := requireFields(field{"content", content}); err != nil {
		return nil, err
	}

	if err := srv.ensureTweetOwner(ctx, callerID, tweetID); err != nil {
		return nil, err
	}

	tweet, err := srv.tweetRepo.UpdateContent(ctx, tweetID, strings.TrimSpace(content))
	if err != nil {
		return nil, translate(err, repository.ErrTweetNotFound, domainerrors.ErrTweetNotFound, "failed to update tweet")
	}

	return tweet, nil
}

func (srv *tweetService) Delete(ctx context.Context, callerID, tweetID uuid.UUID) error {
	if err := srv.ensureTweetOwner(ctx, callerID, tweetID); err != nil {
		return err
	}

	if err := srv.tweetRepo.Delete(ctx, tweetID); err != nil {
		return translate(err, repository.ErrTweetNotFound, domainerrors.ErrTweetNotFound, "failed to delete tweet")
	}

	return nil
}

func (srv *tweetService) ensureTweetOwner(ctx context.Context, callerID, tweetID uuid.UUID) error {
	tweet, err := srv.tweetRepo.FindByID(ctx, tweetID)
	if err != nil {
		return translate(err, repository.ErrTweetNotFound, domainerrors.ErrTweetNotFound, "failed to find tweet")
	}

	return ensureOwner(tweet.OwnerID, callerID)
}
