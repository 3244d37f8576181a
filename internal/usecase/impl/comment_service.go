package impl

import (
	"context"
	"strings"

	"mytube/config"
	"mytube/internal/domain/entity"
	domainerrors "mytube/internal/domain/errors"
	"mytube/internal/domain/repository"
	"mytube/internal/errors"
	"mytube/internal/usecase"

	"github.com/google/uuid"
)

type commentService struct {
	commentRepo  repository.CommentRepository
	videoRepo    repository.VideoRepository
	resolver     repository.RelationshipResolver
	defaultLimit int
	maxLimit     int
}

// NewCommentService is the constructor for commentService.
func NewCommentService(
	commentRepo repository.CommentRepository,
	videoRepo repository.VideoRepository,
	resolver repository.RelationshipResolver,
	cfg *config.Config,
) usecase.CommentUsecase {
	srv := &commentService{
		commentRepo: commentRepo,
		videoRepo:   videoRepo,
		resolver:    resolver,
	}
	if cfg != nil && cfg.Pagination != nil {
		srv.defaultLimit = cfg.Pagination.CommentLimit
		srv.maxLimit = cfg.Pagination.MaxLimit
	}

	return srv
}

// List pages the comments of a video the viewer can see, newest first.
func (srv *commentService) List(ctx context.Context, viewerID *uuid.UUID, videoID uuid.UUID, page, limit int) ([]*entity.CommentWithOwner, error) {
	if err := srv.ensureVideo(ctx, videoID, viewerID); err != nil {
		return nil, err
	}

	comments, err := srv.resolver.VideoComments(ctx, videoID, entity.NewPage(page, limit, srv.defaultLimit, srv.maxLimit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	return comments, nil
}

func (srv *commentService) Add(ctx context.Context, callerID, videoID uuid.UUID, content string) (*entity.Comment, error) {
	if err := requireFields(field{"content", content}); err != nil {
		return nil, err
	}

	if err := srv.ensureVideo(ctx, videoID, &callerID); err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		Content: strings.TrimSpace(content),
		VideoID: videoID,
		OwnerID: callerID,
	}
	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		return nil, errors.Wrap(err, "failed to create comment")
	}

	return comment, nil
}

func (srv *commentService) Update(ctx context.Context, callerID, commentID uuid.UUID, content string) (*entity.Comment, error) {
	if err := requireFields(field{"content", content}); err != nil {
		return nil, err
	}

	if err := srv.ensureCommentOwner(ctx, callerID, commentID); err != nil {
		return nil, err
	}

	comment, err := srv.commentRepo.UpdateContent(ctx, commentID, strings.TrimSpace(content))
	if err != nil {
		return nil, translate(err, repository.ErrCommentNotFound, domainerrors.ErrCommentNotFound, "failed to update comment")
	}

	return comment, nil
}

func (srv *commentService) Delete(ctx context.Context, callerID, commentID uuid.UUID) error {
	if err := srv.ensureCommentOwner(ctx, callerID, commentID); err != nil {
		return err
	}

	if err := srv.commentRepo.Delete(ctx, commentID); err != nil {
		return translate(err, repository.ErrCommentNotFound, domainerrors.ErrCommentNotFound, "failed to delete comment")
	}

	return nil
}

func (srv *commentService) ensureCommentOwner(ctx context.Context, callerID, commentID uuid.UUID) error {
	comment, err := srv.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return translate(err, repository.ErrCommentNotFound, domainerrors.ErrCommentNotFound, "failed to find comment")
	}

	return ensureOwner(comment.OwnerID, callerID)
}

func (srv *commentService) ensureVideo(ctx context.Context, videoID uuid.UUID, viewerID *uuid.UUID) error {
	video, err := srv.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		return translate(err, repository.ErrVideoNotFound, domainerrors.ErrVideoNotFound, "failed to find video")
	}

	return ensureVisible(video.IsPublished, video.OwnerID, viewerID)
}
