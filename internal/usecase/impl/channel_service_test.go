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

type channelServiceFixtures struct {
	service     usecase.ChannelUsecase
	userRepo    *mockRepo.MockUserRepository
	videoRepo   *mockRepo.MockVideoRepository
	historyRepo *mockRepo.MockWatchHistoryRepository
	resolver    *mockRepo.MockRelationshipResolver
}

func createTestChannelService(t *testing.T) channelServiceFixtures {
	f := channelServiceFixtures{
		userRepo:    mockRepo.NewMockUserRepository(t),
		videoRepo:   mockRepo.NewMockVideoRepository(t),
		historyRepo: mockRepo.NewMockWatchHistoryRepository(t),
		resolver:    mockRepo.NewMockRelationshipResolver(t),
	}
	f.service = NewChannelService(ChannelServiceParams{
		UserRepo:    f.userRepo,
		VideoRepo:   f.videoRepo,
		HistoryRepo: f.historyRepo,
		Resolver:    f.resolver,
		Logger:      newDiscardLogger(),
	})

	return f
}

func TestChannelService_Profile_Counts(t *testing.T) {
	channel := newTestUser("alice")
	subscriber := uuid.New()
	stranger := uuid.New()

	tests := []struct {
		name           string
		viewer         *uuid.UUID
		isSubscribed   bool
		wantSubscribed bool
	}{
		{name: "anonymous", viewer: nil},
		{name: "subscriber", viewer: &subscriber, isSubscribed: true, wantSubscribed: true},
		{name: "stranger", viewer: &stranger, isSubscribed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestChannelService(t)
			ctx := context.Background()
			video := newTestVideo(channel.ID, true)

			fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(channel, nil)
			fx.resolver.EXPECT().CountSubscribers(mock.Anything, channel.ID).Return(int64(3), nil)
			fx.resolver.EXPECT().CountSubscriptions(mock.Anything, channel.ID).Return(int64(2), nil)
			fx.resolver.EXPECT().ChannelVideos(mock.Anything, channel.ID, false).
				Return([]*entity.VideoWithOwner{{Video: *video}}, nil)
			if tt.viewer != nil {
				fx.resolver.EXPECT().IsSubscribed(mock.Anything, *tt.viewer, channel.ID).Return(tt.isSubscribed, nil)
			}

			profile, err := fx.service.Profile(ctx, " Alice ", tt.viewer)
			require.NoError(t, err)
			assert.Equal(t, int64(3), profile.SubscriberCount)
			assert.Equal(t, int64(2), profile.ChannelSubscribedCount)
			assert.Equal(t, tt.wantSubscribed, profile.IsSubscribed)
			require.Len(t, profile.Videos, 1)
			assert.Equal(t, video.ID, profile.Videos[0].ID)
		})
	}
}

func TestChannelService_Profile_NotFound(t *testing.T) {
	fx := createTestChannelService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Profile(ctx, "ghost", nil)

	assert.ErrorIs(t, err, domainerrors.ErrChannelNotFound)
}

func TestChannelService_AddToWatchHistory(t *testing.T) {
	t.Run("published video", func(t *testing.T) {
		fx := createTestChannelService(t)
		ctx := context.Background()
		viewer := uuid.New()
		video := newTestVideo(uuid.New(), true)

		fx.videoRepo.EXPECT().FindByID(ctx, video.ID).Return(video, nil)
		fx.historyRepo.EXPECT().Add(ctx, viewer, video.ID).Return(nil)

		require.NoError(t, fx.service.AddToWatchHistory(ctx, viewer, video.ID))
	})

	t.Run("hidden video", func(t *testing.T) {
		fx := createTestChannelService(t)
		ctx := context.Background()
		video := newTestVideo(uuid.New(), false)

		fx.videoRepo.EXPECT().FindByID(ctx, video.ID).Return(video, nil)

		err := fx.service.AddToWatchHistory(ctx, uuid.New(), video.ID)

		assert.ErrorIs(t, err, domainerrors.ErrVideoNotFound)
	})
}
