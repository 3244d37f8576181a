package impl

import (
	"context"
	"testing"

	"mytube/internal/domain/entity"
	mockRepo "mytube/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_Stats(t *testing.T) {
	resolver := mockRepo.NewMockRelationshipResolver(t)
	service := NewDashboardService(resolver)
	owner := uuid.New()

	resolver.EXPECT().CountChannelVideos(mock.Anything, owner).Return(int64(4), nil)
	resolver.EXPECT().SumChannelViews(mock.Anything, owner).Return(int64(120), nil)
	resolver.EXPECT().CountChannelVideoLikes(mock.Anything, owner).Return(int64(9), nil)
	resolver.EXPECT().CountSubscribers(mock.Anything, owner).Return(int64(3), nil)
	resolver.EXPECT().CountSubscriptions(mock.Anything, owner).Return(int64(2), nil)

	stats, err := service.Stats(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, &entity.ChannelStats{
		TotalVideos:             4,
		TotalViews:              120,
		TotalLikes:              9,
		TotalSubscribers:        3,
		TotalSubscribedChannels: 2,
	}, stats)
}

func TestDashboardService_Stats_PropagatesFailure(t *testing.T) {
	resolver := mockRepo.NewMockRelationshipResolver(t)
	service := NewDashboardService(resolver)
	owner := uuid.New()

	resolver.EXPECT().CountChannelVideos(mock.Anything, owner).Return(int64(0), errors.New("db down")).Maybe()
	resolver.EXPECT().SumChannelViews(mock.Anything, owner).Return(int64(0), nil).Maybe()
	resolver.EXPECT().CountChannelVideoLikes(mock.Anything, owner).Return(int64(0), nil).Maybe()
	resolver.EXPECT().CountSubscribers(mock.Anything, owner).Return(int64(0), nil).Maybe()
	resolver.EXPECT().CountSubscriptions(mock.Anything, owner).Return(int64(0), nil).Maybe()

	_, err := service.Stats(context.Background(), owner)

	assert.ErrorContains(t, err, "total videos")
}

func TestDashboardService_Videos_IncludesUnpublished(t *testing.T) {
	resolver := mockRepo.NewMockRelationshipResolver(t)
	service := NewDashboardService(resolver)
	owner := uuid.New()
	hidden := newTestVideo(owner, false)

	resolver.EXPECT().ChannelVideos(mock.Anything, owner, true).Return([]*entity.VideoWithOwner{{Video: *hidden}}, nil)

	videos, err := service.Videos(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.False(t, videos[0].IsPublished)
}
