package impl

import (
	"context"
	"math"
	"testing"

	"mytube/internal/domain/entity"
	domainerrors "mytube/internal/domain/errors"
	"mytube/internal/domain/repository"
	mockRepo "mytube/internal/mocks/repository"
	"mytube/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type commentServiceFixtures struct {
	service     usecase.CommentUsecase
	commentRepo *mockRepo.MockCommentRepository
	videoRepo   *mockRepo.MockVideoRepository
	resolver    *mockRepo.MockRelationshipResolver
}

func createTestCommentService(t *testing.T) commentServiceFixtures {
	f := commentServiceFixtures{
		commentRepo: mockRepo.NewMockCommentRepository(t),
		videoRepo:   mockRepo.NewMockVideoRepository(t),
		resolver:    mockRepo.NewMockRelationshipResolver(t),
	}
	f.service = NewCommentService(f.commentRepo, f.videoRepo, f.resolver, newTestConfig())

	return f
}

func TestCommentService_Update(t *testing.T) {
	owner := uuid.New()
	commentID := uuid.New()
	existing := &entity.Comment{ID: commentID, Content: "old", OwnerID: owner, VideoID: uuid.New()}

	tests := []struct {
		name    string
		caller  uuid.UUID
		content string
		setup   func(fx commentServiceFixtures)
		wantErr error
	}{
		{
			name:    "owner updates",
			caller:  owner,
			content: "  fresh  ",
			setup: func(fx commentServiceFixtures) {
				fx.commentRepo.EXPECT().FindByID(mock.Anything, commentID).Return(existing, nil)
				fx.commentRepo.EXPECT().UpdateContent(mock.Anything, commentID, "fresh").
					Return(&entity.Comment{ID: commentID, Content: "fresh", OwnerID: owner}, nil)
			},
		},
		{
			name:    "non-owner rejected",
			caller:  uuid.New(),
			content: "hijack",
			setup: func(fx commentServiceFixtures) {
				fx.commentRepo.EXPECT().FindByID(mock.Anything, commentID).Return(existing, nil)
			},
			wantErr: domainerrors.ErrNotOwner,
		},
		{
			name:    "missing comment",
			caller:  owner,
			content: "fresh",
			setup: func(fx commentServiceFixtures) {
				fx.commentRepo.EXPECT().FindByID(mock.Anything, commentID).Return(nil, repository.ErrCommentNotFound)
			},
			wantErr: domainerrors.ErrCommentNotFound,
		},
		{
			name:    "blank content",
			caller:  owner,
			content: "   ",
			setup:   func(fx commentServiceFixtures) {},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCommentService(t)
			tt.setup(fx)

			comment, err := fx.service.Update(context.Background(), tt.caller, commentID, tt.content)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, comment)
				fx.commentRepo.AssertNotCalled(t, "UpdateContent", mock.Anything, mock.Anything, mock.Anything)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "fresh", comment.Content)
		})
	}
}

func TestCommentService_Update_BlankContentIsValidationError(t *testing.T) {
	fx := createTestCommentService(t)

	_, err := fx.service.Update(context.Background(), uuid.New(), uuid.New(), "")

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "content", validationErr.Fields()[0].Field)
}

func TestCommentService_Delete(t *testing.T) {
	owner := uuid.New()
	commentID := uuid.New()
	existing := &entity.Comment{ID: commentID, Content: "hi", OwnerID: owner}

	tests := []struct {
		name    string
		caller  uuid.UUID
		setup   func(fx commentServiceFixtures)
		wantErr error
	}{
		{
			name:   "owner deletes",
			caller: owner,
			setup: func(fx commentServiceFixtures) {
				fx.commentRepo.EXPECT().FindByID(mock.Anything, commentID).Return(existing, nil)
				fx.commentRepo.EXPECT().Delete(mock.Anything, commentID).Return(nil)
			},
		},
		{
			name:   "non-owner rejected",
			caller: uuid.New(),
			setup: func(fx commentServiceFixtures) {
				fx.commentRepo.EXPECT().FindByID(mock.Anything, commentID).Return(existing, nil)
			},
			wantErr: domainerrors.ErrNotOwner,
		},
		{
			name:   "missing comment",
			caller: owner,
			setup: func(fx commentServiceFixtures) {
				fx.commentRepo.EXPECT().FindByID(mock.Anything, commentID).Return(nil, repository.ErrCommentNotFound)
			},
			wantErr: domainerrors.ErrCommentNotFound,
		},
		{
			name:   "removed concurrently",
			caller: owner,
			setup: func(fx commentServiceFixtures) {
				fx.commentRepo.EXPECT().FindByID(mock.Anything, commentID).Return(existing, nil)
				fx.commentRepo.EXPECT().Delete(mock.Anything, commentID).Return(repository.ErrCommentNotFound)
			},
			wantErr: domainerrors.ErrCommentNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCommentService(t)
			tt.setup(fx)

			err := fx.service.Delete(context.Background(), tt.caller, commentID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestCommentService_List(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	published := newTestVideo(owner, true)
	draft := newTestVideo(owner, false)

	tests := []struct {
		name    string
		viewer  *uuid.UUID
		video   *entity.Video
		page    int
		setup   func(fx commentServiceFixtures, videoID uuid.UUID)
		wantErr error
	}{
		{
			name:  "published video pages comments",
			video: published,
			page:  0,
			setup: func(fx commentServiceFixtures, videoID uuid.UUID) {
				fx.videoRepo.EXPECT().FindByID(mock.Anything, videoID).Return(published, nil)
				fx.resolver.EXPECT().VideoComments(mock.Anything, videoID, entity.Page{Number: 1, Limit: 10}).
					Return([]*entity.CommentWithOwner{{Comment: entity.Comment{Content: "nice"}}}, nil)
			},
		},
		{
			name:  "huge page stays in range",
			video: published,
			page:  math.MaxInt,
			setup: func(fx commentServiceFixtures, videoID uuid.UUID) {
				fx.videoRepo.EXPECT().FindByID(mock.Anything, videoID).Return(published, nil)
				fx.resolver.EXPECT().
					VideoComments(mock.Anything, videoID, mock.MatchedBy(func(p entity.Page) bool { return p.Offset() > 0 })).
					Return([]*entity.CommentWithOwner{}, nil)
			},
		},
		{
			name:  "missing video",
			video: &entity.Video{ID: uuid.New()},
			setup: func(fx commentServiceFixtures, videoID uuid.UUID) {
				fx.videoRepo.EXPECT().FindByID(mock.Anything, videoID).Return(nil, repository.ErrVideoNotFound)
			},
			wantErr: domainerrors.ErrVideoNotFound,
		},
		{
			name:  "draft hidden from anonymous",
			video: draft,
			setup: func(fx commentServiceFixtures, videoID uuid.UUID) {
				fx.videoRepo.EXPECT().FindByID(mock.Anything, videoID).Return(draft, nil)
			},
			wantErr: domainerrors.ErrVideoNotFound,
		},
		{
			name:   "draft hidden from stranger",
			viewer: &stranger,
			video:  draft,
			setup: func(fx commentServiceFixtures, videoID uuid.UUID) {
				fx.videoRepo.EXPECT().FindByID(mock.Anything, videoID).Return(draft, nil)
			},
			wantErr: domainerrors.ErrVideoNotFound,
		},
		{
			name:   "draft visible to owner",
			viewer: &owner,
			video:  draft,
			setup: func(fx commentServiceFixtures, videoID uuid.UUID) {
				fx.videoRepo.EXPECT().FindByID(mock.Anything, videoID).Return(draft, nil)
				fx.resolver.EXPECT().VideoComments(mock.Anything, videoID, mock.Anything).Return([]*entity.CommentWithOwner{}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCommentService(t)
			tt.setup(fx, tt.video.ID)

			comments, err := fx.service.List(context.Background(), tt.viewer, tt.video.ID, tt.page, 0)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				fx.resolver.AssertNotCalled(t, "VideoComments", mock.Anything, mock.Anything, mock.Anything)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, comments)
		})
	}
}

func TestCommentService_Add(t *testing.T) {
	owner := uuid.New()

	t.Run("trims and stores", func(t *testing.T) {
		fx := createTestCommentService(t)
		bob := uuid.New()
		video := newTestVideo(owner, true)

		fx.videoRepo.EXPECT().FindByID(mock.Anything, video.ID).Return(video, nil)
		fx.commentRepo.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(c *entity.Comment) bool {
				return c.Content == "great video" && c.OwnerID == bob && c.VideoID == video.ID
			})).
			Return(nil)

		comment, err := fx.service.Add(context.Background(), bob, video.ID, " great video ")
		require.NoError(t, err)
		assert.Equal(t, "great video", comment.Content)
	})

	t.Run("draft of another user", func(t *testing.T) {
		fx := createTestCommentService(t)
		video := newTestVideo(owner, false)

		fx.videoRepo.EXPECT().FindByID(mock.Anything, video.ID).Return(video, nil)

		_, err := fx.service.Add(context.Background(), uuid.New(), video.ID, "first")
		assert.ErrorIs(t, err, domainerrors.ErrVideoNotFound)
		fx.commentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("blank content", func(t *testing.T) {
		fx := createTestCommentService(t)

		_, err := fx.service.Add(context.Background(), owner, uuid.New(), "\t")
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}
