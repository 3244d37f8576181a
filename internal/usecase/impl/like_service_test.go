package impl

import (
	"context"
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

type likeServiceFixtures struct {
	service     usecase.LikeUsecase
	likeRepo    *mockRepo.MockLikeRepository
	videoRepo   *mockRepo.MockVideoRepository
	commentRepo *mockRepo.MockCommentRepository
	tweetRepo   *mockRepo.MockTweetRepository
	resolver    *mockRepo.MockRelationshipResolver
}

func createTestLikeService(t *testing.T) likeServiceFixtures {
	f := likeServiceFixtures{
		likeRepo:    mockRepo.NewMockLikeRepository(t),
		videoRepo:   mockRepo.NewMockVideoRepository(t),
		commentRepo: mockRepo.NewMockCommentRepository(t),
		tweetRepo:   mockRepo.NewMockTweetRepository(t),
		resolver:    mockRepo.NewMockRelationshipResolver(t),
	}
	f.service = NewLikeService(LikeServiceParams{
		LikeRepo:    f.likeRepo,
		VideoRepo:   f.videoRepo,
		CommentRepo: f.commentRepo,
		TweetRepo:   f.tweetRepo,
		Resolver:    f.resolver,
		Logger:      newDiscardLogger(),
	})

	return f
}

func TestLikeService_Toggle_CreatesWhenAbsent(t *testing.T) {
	fx := createTestLikeService(t)
	ctx := context.Background()
	bob := uuid.New()
	video := newTestVideo(uuid.New(), true)
	subject := entity.LikeSubject{Target: entity.LikeTargetVideo, ID: video.ID}

	fx.videoRepo.EXPECT().FindByID(ctx, video.ID).Return(video, nil)
	fx.likeRepo.EXPECT().Find(ctx, subject, bob).Return(nil, repository.ErrLikeNotFound)
	fx.likeRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(l *entity.Like) bool {
			return l.LikedBy == bob && l.VideoID != nil && *l.VideoID == video.ID && l.CommentID == nil && l.TweetID == nil
		})).
		Return(nil)

	result, err := fx.service.Toggle(ctx, bob, subject)
	require.NoError(t, err)
	assert.True(t, result.Active)
}

func TestLikeService_Toggle_RemovesWhenPresent(t *testing.T) {
	fx := createTestLikeService(t)
	ctx := context.Background()
	bob := uuid.New()
	tweetID := uuid.New()
	subject := entity.LikeSubject{Target: entity.LikeTargetTweet, ID: tweetID}
	existing := entity.NewLike(subject, bob)
	existing.ID = uuid.New()

	fx.tweetRepo.EXPECT().FindByID(ctx, tweetID).Return(&entity.Tweet{ID: tweetID}, nil)
	fx.likeRepo.EXPECT().Find(ctx, subject, bob).Return(existing, nil)
	fx.likeRepo.EXPECT().Delete(ctx, existing.ID).Return(nil)

	result, err := fx.service.Toggle(ctx, bob, subject)
	require.NoError(t, err)
	assert.False(t, result.Active)
}

func TestLikeService_Toggle_ConcurrentCreateReadsBack(t *testing.T) {
	fx := createTestLikeService(t)
	ctx := context.Background()
	bob := uuid.New()
	commentID := uuid.New()
	subject := entity.LikeSubject{Target: entity.LikeTargetComment, ID: commentID}

	fx.commentRepo.EXPECT().FindByID(ctx, commentID).Return(&entity.Comment{ID: commentID}, nil)
	fx.likeRepo.EXPECT().Find(ctx, subject, bob).Return(nil, repository.ErrLikeNotFound).Once()
	fx.likeRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateLike)
	fx.likeRepo.EXPECT().Find(ctx, subject, bob).Return(entity.NewLike(subject, bob), nil).Once()

	result, err := fx.service.Toggle(ctx, bob, subject)
	require.NoError(t, err)
	assert.True(t, result.Active)
}

func TestLikeService_Toggle_UnknownSubject(t *testing.T) {
	fx := createTestLikeService(t)
	ctx := context.Background()
	videoID := uuid.New()

	fx.videoRepo.EXPECT().FindByID(ctx, videoID).Return(nil, repository.ErrVideoNotFound)

	_, err := fx.service.Toggle(ctx, uuid.New(), entity.LikeSubject{Target: entity.LikeTargetVideo, ID: videoID})

	assert.ErrorIs(t, err, domainerrors.ErrVideoNotFound)
}

func TestLikeService_Toggle_UnpublishedVideo(t *testing.T) {
	owner := uuid.New()

	t.Run("hidden from others", func(t *testing.T) {
		fx := createTestLikeService(t)
		ctx := context.Background()
		video := newTestVideo(owner, false)

		fx.videoRepo.EXPECT().FindByID(ctx, video.ID).Return(video, nil)

		_, err := fx.service.Toggle(ctx, uuid.New(), entity.LikeSubject{Target: entity.LikeTargetVideo, ID: video.ID})

		assert.ErrorIs(t, err, domainerrors.ErrVideoNotFound)
		fx.likeRepo.AssertNotCalled(t, "Find", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("owner can like", func(t *testing.T) {
		fx := createTestLikeService(t)
		ctx := context.Background()
		video := newTestVideo(owner, false)
		subject := entity.LikeSubject{Target: entity.LikeTargetVideo, ID: video.ID}

		fx.videoRepo.EXPECT().FindByID(ctx, video.ID).Return(video, nil)
		fx.likeRepo.EXPECT().Find(ctx, subject, owner).Return(nil, repository.ErrLikeNotFound)
		fx.likeRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

		result, err := fx.service.Toggle(ctx, owner, subject)
		require.NoError(t, err)
		assert.True(t, result.Active)
	})
}
