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

type tweetServiceFixtures struct {
	service   usecase.TweetUsecase
	tweetRepo *mockRepo.MockTweetRepository
	userRepo  *mockRepo.MockUserRepository
	resolver  *mockRepo.MockRelationshipResolver
}

func createTestTweetService(t *testing.T) tweetServiceFixtures {
	f := tweetServiceFixtures{
		tweetRepo: mockRepo.NewMockTweetRepository(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		resolver:  mockRepo.NewMockRelationshipResolver(t),
	}
	f.service = NewTweetService(f.tweetRepo, f.userRepo, f.resolver)

	return f
}

func TestTweetService_Create(t *testing.T) {
	fx := createTestTweetService(t)
	author := uuid.New()

	fx.tweetRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(tw *entity.Tweet) bool {
			return tw.Content == "hello" && tw.OwnerID == author
		})).
		Return(nil)

	tweet, err := fx.service.Create(context.Background(), author, " hello\n")
	require.NoError(t, err)
	assert.Equal(t, "hello", tweet.Content)

	_, err = fx.service.Create(context.Background(), author, "  ")
	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "content", validationErr.Fields()[0].Field)
}

func TestTweetService_Update(t *testing.T) {
	owner := uuid.New()
	tweetID := uuid.New()
	existing := &entity.Tweet{ID: tweetID, Content: "old", OwnerID: owner}

	tests := []struct {
		name    string
		caller  uuid.UUID
		content string
		setup   func(fx tweetServiceFixtures)
		wantErr error
	}{
		{
			name:    "owner updates",
			caller:  owner,
			content: "edited",
			setup: func(fx tweetServiceFixtures) {
				fx.tweetRepo.EXPECT().FindByID(mock.Anything, tweetID).Return(existing, nil)
				fx.tweetRepo.EXPECT().UpdateContent(mock.Anything, tweetID, "edited").
					Return(&entity.Tweet{ID: tweetID, Content: "edited", OwnerID: owner}, nil)
			},
		},
		{
			name:    "non-owner rejected",
			caller:  uuid.New(),
			content: "edited",
			setup: func(fx tweetServiceFixtures) {
				fx.tweetRepo.EXPECT().FindByID(mock.Anything, tweetID).Return(existing, nil)
			},
			wantErr: domainerrors.ErrNotOwner,
		},
		{
			name:    "missing tweet",
			caller:  owner,
			content: "edited",
			setup: func(fx tweetServiceFixtures) {
				fx.tweetRepo.EXPECT().FindByID(mock.Anything, tweetID).Return(nil, repository.ErrTweetNotFound)
			},
			wantErr: domainerrors.ErrTweetNotFound,
		},
		{
			name:    "blank content",
			caller:  owner,
			content: "",
			setup:   func(fx tweetServiceFixtures) {},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestTweetService(t)
			tt.setup(fx)

			tweet, err := fx.service.Update(context.Background(), tt.caller, tweetID, tt.content)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, tweet)
				fx.tweetRepo.AssertNotCalled(t, "UpdateContent", mock.Anything, mock.Anything, mock.Anything)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "edited", tweet.Content)
		})
	}
}

func TestTweetService_Delete(t *testing.T) {
	owner := uuid.New()
	tweetID := uuid.New()
	existing := &entity.Tweet{ID: tweetID, Content: "bye", OwnerID: owner}

	tests := []struct {
		name    string
		caller  uuid.UUID
		setup   func(fx tweetServiceFixtures)
		wantErr error
	}{
		{
			name:   "owner deletes",
			caller: owner,
			setup: func(fx tweetServiceFixtures) {
				fx.tweetRepo.EXPECT().FindByID(mock.Anything, tweetID).Return(existing, nil)
				fx.tweetRepo.EXPECT().Delete(mock.Anything, tweetID).Return(nil)
			},
		},
		{
			name:   "non-owner rejected",
			caller: uuid.New(),
			setup: func(fx tweetServiceFixtures) {
				fx.tweetRepo.EXPECT().FindByID(mock.Anything, tweetID).Return(existing, nil)
			},
			wantErr: domainerrors.ErrNotOwner,
		},
		{
			name:   "missing tweet",
			caller: owner,
			setup: func(fx tweetServiceFixtures) {
				fx.tweetRepo.EXPECT().FindByID(mock.Anything, tweetID).Return(nil, repository.ErrTweetNotFound)
			},
			wantErr: domainerrors.ErrTweetNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestTweetService(t)
			tt.setup(fx)

			err := fx.service.Delete(context.Background(), tt.caller, tweetID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				fx.tweetRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestTweetService_ListByUser(t *testing.T) {
	t.Run("missing user", func(t *testing.T) {
		fx := createTestTweetService(t)
		userID := uuid.New()

		fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.ListByUser(context.Background(), userID)
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
		fx.resolver.AssertNotCalled(t, "UserTweets", mock.Anything, mock.Anything)
	})

	t.Run("lists tweets", func(t *testing.T) {
		fx := createTestTweetService(t)
		user := newTestUser("alice")

		fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
		fx.resolver.EXPECT().UserTweets(mock.Anything, user.ID).
			Return([]*entity.TweetWithOwner{{Tweet: entity.Tweet{Content: "hi", OwnerID: user.ID}}}, nil)

		tweets, err := fx.service.ListByUser(context.Background(), user.ID)
		require.NoError(t, err)
		require.Len(t, tweets, 1)
		assert.Equal(t, "hi", tweets[0].Content)
	})
}
