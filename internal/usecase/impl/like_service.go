package impl

import (
	"context"
	"log/slog"

	deliverycontext "mytube/internal/delivery/context"
	"mytube/internal/domain/entity"
	domainerrors "mytube/internal/domain/errors"
	"mytube/internal/domain/repository"
	"mytube/internal/errors"
	"mytube/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type likeService struct {
	likeRepo    repository.LikeRepository
	videoRepo   repository.VideoRepository
	commentRepo repository.CommentRepository
	tweetRepo   repository.TweetRepository
	resolver    repository.RelationshipResolver
	logger      *slog.Logger
}

// LikeServiceParams holds dependencies for LikeService, injected by Fx.
type LikeServiceParams struct {
	fx.In

	LikeRepo    repository.LikeRepository
	VideoRepo   repository.VideoRepository
	CommentRepo repository.CommentRepository
	TweetRepo   repository.TweetRepository
	Resolver    repository.RelationshipResolver
	Logger      *slog.Logger
}

// NewLikeService is the constructor for likeService.
func NewLikeService(params LikeServiceParams) usecase.LikeUsecase {
	return &likeService{
		likeRepo:    params.LikeRepo,
		videoRepo:   params.VideoRepo,
		commentRepo: params.CommentRepo,
		tweetRepo:   params.TweetRepo,
		resolver:    params.Resolver,
		logger:      params.Logger,
	}
}

func (srv *likeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Toggle flips the like between present and absent. The unique index on (subject, likedBy)
// settles concurrent toggles: a losing insert re-reads instead of duplicating.
func (srv *likeService) Toggle(ctx context.Context, callerID uuid.UUID, subject entity.LikeSubject) (*entity.ToggleResult, error) {
	if err := srv.ensureSubject(ctx, callerID, subject); err != nil {
		return nil, err
	}

	existing, err := srv.likeRepo.Find(ctx, subject, callerID)
	switch {
	case err == nil:
		if err := srv.likeRepo.Delete(ctx, existing.ID); err != nil && !errors.Is(err, repository.ErrLikeNotFound) {
			return nil, errors.Wrap(err, "failed to remove like")
		}

		return &entity.ToggleResult{Active: false}, nil
	case !errors.Is(err, repository.ErrLikeNotFound):
		return nil, errors.Wrap(err, "failed to find like")
	}

	err = srv.likeRepo.Create(ctx, entity.NewLike(subject, callerID))
	if errors.Is(err, repository.ErrDuplicateLike) {
		srv.log(ctx).Debug("Concurrent like detected, re-reading", slog.Any("subject", subject.ID), slog.Any("userID", callerID))

		if _, findErr := srv.likeRepo.Find(ctx, subject, callerID); findErr != nil {
			return nil, errors.Wrap(findErr, "failed to re-read like")
		}

		return &entity.ToggleResult{Active: true}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create like")
	}

	return &entity.ToggleResult{Active: true}, nil
}

func (srv *likeService) ensureSubject(ctx context.Context, callerID uuid.UUID, subject entity.LikeSubject) error {
	var err error
	switch subject.Target {
	case entity.LikeTargetVideo:
		video, err := srv.videoRepo.FindByID(ctx, subject.ID)
		if err != nil {
			return translate(err, repository.ErrVideoNotFound, domainerrors.ErrVideoNotFound, "failed to find video")
		}

		return ensureVisible(video.IsPublished, video.OwnerID, &callerID)
	case entity.LikeTargetComment:
		_, err = srv.commentRepo.FindByID(ctx, subject.ID)

		return translate(err, repository.ErrCommentNotFound, domainerrors.ErrCommentNotFound, "failed to find comment")
	case entity.LikeTargetTweet:
		_, err = srv.tweetRepo.FindByID(ctx, subject.ID)

		return translate(err, repository.ErrTweetNotFound, domainerrors.ErrTweetNotFound, "failed to find tweet")
	default:
		return domainerrors.NewValidationError(domainerrors.FieldError{Field: "target", Message: "unknown like target"})
	}
}

func (srv *likeService) LikedVideos(ctx context.Context, callerID uuid.UUID) ([]*entity.LikedVideo, error) {
	videos, err := srv.resolver.LikedVideos(ctx, callerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list liked videos")
	}

	return videos, nil
}
