package impl

import (
	"context"
	"testing"

	"mytube/internal/domain/entity"
	domainerrors "mytube/internal/domain/errors"
	mockRepo "mytube/internal/mocks/repository"
	"mytube/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type playlistServiceFixtures struct {
	service      usecase.PlaylistUsecase
	playlistRepo *mockRepo.MockPlaylistRepository
	videoRepo    *mockRepo.MockVideoRepository
	userRepo     *mockRepo.MockUserRepository
	resolver     *mockRepo.MockRelationshipResolver
}

func createTestPlaylistService(t *testing.T) playlistServiceFixtures {
	f := playlistServiceFixtures{
		playlistRepo: mockRepo.NewMockPlaylistRepository(t),
		videoRepo:    mockRepo.NewMockVideoRepository(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		resolver:     mockRepo.NewMockRelationshipResolver(t),
	}
	f.service = NewPlaylistService(f.playlistRepo, f.videoRepo, f.userRepo, f.resolver)

	return f
}

func TestPlaylistService_AddVideo_ExistingMemberIsNoop(t *testing.T) {
	fx := createTestPlaylistService(t)
	ctx := context.Background()
	owner := uuid.New()
	video := newTestVideo(owner, true)
	playlist := &entity.Playlist{ID: uuid.New(), OwnerID: owner, VideoIDs: []uuid.UUID{video.ID}}

	fx.playlistRepo.EXPECT().FindByID(ctx, playlist.ID).Return(playlist, nil)
	fx.videoRepo.EXPECT().FindByID(ctx, video.ID).Return(video, nil)

	got, err := fx.service.AddVideo(ctx, owner, playlist.ID, video.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{video.ID}, got.VideoIDs)
	fx.playlistRepo.AssertNotCalled(t, "AddVideo", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlaylistService_AddVideo_Appends(t *testing.T) {
	fx := createTestPlaylistService(t)
	ctx := context.Background()
	owner := uuid.New()
	video := newTestVideo(uuid.New(), true)
	playlist := &entity.Playlist{ID: uuid.New(), OwnerID: owner, VideoIDs: []uuid.UUID{}}
	after := &entity.Playlist{ID: playlist.ID, OwnerID: owner, VideoIDs: []uuid.UUID{video.ID}}

	fx.playlistRepo.EXPECT().FindByID(ctx, playlist.ID).Return(playlist, nil).Once()
	fx.videoRepo.EXPECT().FindByID(ctx, video.ID).Return(video, nil)
	fx.playlistRepo.EXPECT().AddVideo(ctx, playlist.ID, video.ID).Return(nil)
	fx.playlistRepo.EXPECT().FindByID(ctx, playlist.ID).Return(after, nil).Once()

	got, err := fx.service.AddVideo(ctx, owner, playlist.ID, video.ID)
	require.NoError(t, err)
	assert.Equal(t, after, got)
}

func TestPlaylistService_AddVideo_HiddenVideoOfOthers(t *testing.T) {
	fx := createTestPlaylistService(t)
	ctx := context.Background()
	owner := uuid.New()
	video := newTestVideo(uuid.New(), false)
	playlist := &entity.Playlist{ID: uuid.New(), OwnerID: owner}

	fx.playlistRepo.EXPECT().FindByID(ctx, playlist.ID).Return(playlist, nil)
	fx.videoRepo.EXPECT().FindByID(ctx, video.ID).Return(video, nil)

	_, err := fx.service.AddVideo(ctx, owner, playlist.ID, video.ID)

	assert.ErrorIs(t, err, domainerrors.ErrVideoNotFound)
}

func TestPlaylistService_RemoveVideo_AbsentIsNoop(t *testing.T) {
	fx := createTestPlaylistService(t)
	ctx := context.Background()
	owner := uuid.New()
	playlist := &entity.Playlist{ID: uuid.New(), OwnerID: owner, VideoIDs: []uuid.UUID{uuid.New()}}

	fx.playlistRepo.EXPECT().FindByID(ctx, playlist.ID).Return(playlist, nil)

	got, err := fx.service.RemoveVideo(ctx, owner, playlist.ID, uuid.New())
	require.NoError(t, err)
	assert.Len(t, got.VideoIDs, 1)
}

func TestPlaylistService_Update_RequiresOwner(t *testing.T) {
	fx := createTestPlaylistService(t)
	ctx := context.Background()
	playlist := &entity.Playlist{ID: uuid.New(), OwnerID: uuid.New()}
	name := "mine now"

	fx.playlistRepo.EXPECT().FindByID(ctx, playlist.ID).Return(playlist, nil)

	_, err := fx.service.Update(ctx, uuid.New(), playlist.ID, entity.PlaylistPatch{Name: &name})

	assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
}

func TestPlaylistService_Update_RejectsBlankName(t *testing.T) {
	fx := createTestPlaylistService(t)
	blank := "   "

	_, err := fx.service.Update(context.Background(), uuid.New(), uuid.New(), entity.PlaylistPatch{Name: &blank})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPlaylistService_Get_ResolvesOwnerAndVideos(t *testing.T) {
	fx := createTestPlaylistService(t)
	ctx := context.Background()
	owner := uuid.New()
	video := newTestVideo(owner, true)
	playlist := &entity.Playlist{ID: uuid.New(), Name: "mix", OwnerID: owner, VideoIDs: []uuid.UUID{video.ID}}

	fx.playlistRepo.EXPECT().FindByID(ctx, playlist.ID).Return(playlist, nil)
	fx.resolver.EXPECT().OwnerSummary(mock.Anything, owner).Return(&entity.OwnerSummary{ID: owner, Username: "alice"}, nil)
	fx.resolver.EXPECT().PlaylistVideos(mock.Anything, playlist.ID, &owner).
		Return([]*entity.VideoWithOwner{{Video: *video}}, nil)

	detail, err := fx.service.Get(ctx, playlist.ID, &owner)
	require.NoError(t, err)
	assert.Equal(t, "alice", detail.Owner.Username)
	require.Len(t, detail.Videos, 1)
	assert.Equal(t, video.ID, detail.Videos[0].ID)
}

func TestPlaylistService_Videos_PassesViewer(t *testing.T) {
	fx := createTestPlaylistService(t)
	ctx := context.Background()
	owner := uuid.New()
	draft := newTestVideo(owner, false)
	playlist := &entity.Playlist{ID: uuid.New(), OwnerID: owner, VideoIDs: []uuid.UUID{draft.ID}}

	fx.playlistRepo.EXPECT().FindByID(ctx, playlist.ID).Return(playlist, nil)
	fx.resolver.EXPECT().PlaylistVideos(ctx, playlist.ID, &owner).
		Return([]*entity.VideoWithOwner{{Video: *draft}}, nil)

	videos, err := fx.service.Videos(ctx, playlist.ID, &owner)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, draft.ID, videos[0].ID)
}
