package impl

import (
	"context"
	"testing"

	"mytube/internal/domain/entity"
	domainerrors "mytube/internal/domain/errors"
	"mytube/internal/domain/repository"
	"mytube/internal/domain/service"
	mockRepo "mytube/internal/mocks/repository"
	mockSvc "mytube/internal/mocks/service"
	"mytube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type videoServiceFixtures struct {
	service   usecase.VideoUsecase
	videoRepo *mockRepo.MockVideoRepository
	resolver  *mockRepo.MockRelationshipResolver
	media     *mockSvc.MockMediaStorage
	publisher *mockSvc.MockEventPublisher
}

func createTestVideoService(t *testing.T) videoServiceFixtures {
	f := videoServiceFixtures{
		videoRepo: mockRepo.NewMockVideoRepository(t),
		resolver:  mockRepo.NewMockRelationshipResolver(t),
		media:     mockSvc.NewMockMediaStorage(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}
	f.service = NewVideoService(VideoServiceParams{
		VideoRepo: f.videoRepo,
		Resolver:  f.resolver,
		Media:     f.media,
		Publisher: f.publisher,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return f
}

func TestVideoService_Feed_RequiresQuery(t *testing.T) {
	fx := createTestVideoService(t)

	_, err := fx.service.Feed(context.Background(), &usecase.FeedInput{Query: "   "})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestVideoService_Feed_NormalizesPagingAndSort(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.FeedInput
		want  entity.VideoFeedQuery
	}{
		{
			name:  "defaults",
			input: usecase.FeedInput{Query: " go "},
			want:  entity.VideoFeedQuery{Query: "go", SortBy: entity.VideoSortViews, Page: entity.Page{Number: 1, Limit: 12}},
		},
		{
			name:  "descending by title",
			input: usecase.FeedInput{Query: "go", SortBy: "title", SortType: "-1", Page: 2, Limit: 10},
			want:  entity.VideoFeedQuery{Query: "go", SortBy: entity.VideoSortTitle, SortDesc: true, Page: entity.Page{Number: 2, Limit: 10}},
		},
		{
			name:  "unknown sort and capped limit",
			input: usecase.FeedInput{Query: "go", SortBy: "password", SortType: "asc", Limit: 1000},
			want:  entity.VideoFeedQuery{Query: "go", SortBy: entity.VideoSortViews, Page: entity.Page{Number: 1, Limit: 100}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestVideoService(t)
			ctx := context.Background()
			fx.resolver.EXPECT().VideoFeed(ctx, tt.want).Return([]*entity.VideoWithOwner{}, nil)

			videos, err := fx.service.Feed(ctx, &tt.input)
			require.NoError(t, err)
			assert.Empty(t, videos)
		})
	}
}

func TestVideoService_Publish_Success(t *testing.T) {
	fx := createTestVideoService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	videoFile := uploaded("videos/new")
	videoFile.Duration = 93.4

	fx.media.EXPECT().Upload(mock.Anything, "/tmp/v.mp4", entity.MediaKindVideo).Return(videoFile, nil)
	fx.media.EXPECT().Upload(mock.Anything, "/tmp/t.png", entity.MediaKindImage).Return(uploaded("thumbnails/new"), nil)
	fx.videoRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(v *entity.Video) bool {
			return v.OwnerID == ownerID && v.Duration == 93.4 && v.IsPublished && v.Thumbnail.StorageID == "thumbnails/new"
		})).
		Return(nil)

	video, err := fx.service.Publish(ctx, ownerID, &usecase.PublishVideoInput{
		Title: "Intro", Description: "First", VideoPath: "/tmp/v.mp4", ThumbnailPath: "/tmp/t.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "Intro", video.Title)
}

func TestVideoService_Publish_ThumbnailFailureReleasesVideo(t *testing.T) {
	fx := createTestVideoService(t)
	ctx := context.Background()

	fx.media.EXPECT().Upload(mock.Anything, "/tmp/v.mp4", entity.MediaKindVideo).Return(uploaded("videos/orphan"), nil)
	fx.media.EXPECT().Upload(mock.Anything, "/tmp/t.png", entity.MediaKindImage).Return(nil, errors.New("rejected"))
	fx.media.EXPECT().Delete(ctx, "videos/orphan", entity.MediaKindVideo).Return(nil)

	_, err := fx.service.Publish(ctx, uuid.New(), &usecase.PublishVideoInput{
		Title: "Intro", Description: "First", VideoPath: "/tmp/v.mp4", ThumbnailPath: "/tmp/t.png",
	})

	assert.ErrorIs(t, err, domainerrors.ErrMediaUploadFailed)
}

func TestVideoService_Publish_RequiresBothFiles(t *testing.T) {
	fx := createTestVideoService(t)

	_, err := fx.service.Publish(context.Background(), uuid.New(), &usecase.PublishVideoInput{
		Title: "Intro", Description: "First", VideoPath: "/tmp/v.mp4",
	})

	assert.ErrorIs(t, err, domainerrors.ErrMediaFileMissing)
}

func TestVideoService_Detail_HidesUnpublishedFromOthers(t *testing.T) {
	ownerID := uuid.New()
	stranger := uuid.New()
	detail := &entity.VideoDetail{VideoWithOwner: entity.VideoWithOwner{Video: *newTestVideo(ownerID, false)}}

	tests := []struct {
		name    string
		viewer  *uuid.UUID
		wantErr error
	}{
		{name: "anonymous", viewer: nil, wantErr: domainerrors.ErrVideoNotFound},
		{name: "stranger", viewer: &stranger, wantErr: domainerrors.ErrVideoNotFound},
		{name: "owner", viewer: &ownerID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestVideoService(t)
			ctx := context.Background()
			fx.resolver.EXPECT().VideoDetail(ctx, detail.ID).Return(detail, nil)

			got, err := fx.service.Detail(ctx, detail.ID, tt.viewer)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, detail, got)
		})
	}
}

func TestVideoService_Detail_NotFound(t *testing.T) {
	fx := createTestVideoService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.resolver.EXPECT().VideoDetail(ctx, id).Return(nil, repository.ErrVideoNotFound)

	_, err := fx.service.Detail(ctx, id, nil)

	assert.ErrorIs(t, err, domainerrors.ErrVideoNotFound)
}

func TestVideoService_Delete_RemovesMediaThenRecord(t *testing.T) {
	fx := createTestVideoService(t)
	ctx := context.Background()
	video := newTestVideo(uuid.New(), true)

	fx.videoRepo.EXPECT().FindByID(ctx, video.ID).Return(video, nil)
	fx.media.EXPECT().Delete(mock.Anything, video.VideoFile.StorageID, entity.MediaKindVideo).Return(nil)
	fx.media.EXPECT().Delete(mock.Anything, video.Thumbnail.StorageID, entity.MediaKindImage).Return(nil)
	fx.videoRepo.EXPECT().Delete(ctx, video.ID).Return(nil)

	require.NoError(t, fx.service.Delete(ctx, video.OwnerID, video.ID))
}

func TestVideoService_Delete_KeepsRecordWhenMediaFails(t *testing.T) {
	fx := createTestVideoService(t)
	ctx := context.Background()
	video := newTestVideo(uuid.New(), true)

	fx.videoRepo.EXPECT().FindByID(ctx, video.ID).Return(video, nil)
	fx.media.EXPECT().Delete(mock.Anything, video.VideoFile.StorageID, entity.MediaKindVideo).Return(service.ErrMediaTimeout)
	fx.media.EXPECT().Delete(mock.Anything, video.Thumbnail.StorageID, entity.MediaKindImage).Return(nil).Maybe()

	err := fx.service.Delete(ctx, video.OwnerID, video.ID)

	assert.ErrorIs(t, err, domainerrors.ErrMediaTimeout)
	fx.videoRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestVideoService_Delete_RequiresOwner(t *testing.T) {
	fx := createTestVideoService(t)
	ctx := context.Background()
	video := newTestVideo(uuid.New(), true)

	fx.videoRepo.EXPECT().FindByID(ctx, video.ID).Return(video, nil)

	err := fx.service.Delete(ctx, uuid.New(), video.ID)

	assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
}

func TestVideoService_Update_ReplacesThumbnail(t *testing.T) {
	fx := createTestVideoService(t)
	ctx := context.Background()
	video := newTestVideo(uuid.New(), true)
	updated := *video
	updated.Title = "New"

	fx.videoRepo.EXPECT().FindByID(ctx, video.ID).Return(video, nil)
	fx.media.EXPECT().Upload(ctx, "/tmp/t2.png", entity.MediaKindImage).Return(uploaded("thumbnails/t2"), nil)
	fx.videoRepo.EXPECT().
		Update(ctx, video.ID, mock.MatchedBy(func(p entity.VideoPatch) bool {
			return *p.Title == "New" && *p.Description == "Desc" && p.Thumbnail.StorageID == "thumbnails/t2"
		})).
		Return(&updated, nil)
	fx.media.EXPECT().Delete(ctx, video.Thumbnail.StorageID, entity.MediaKindImage).Return(nil)

	got, err := fx.service.Update(ctx, video.OwnerID, video.ID, &usecase.UpdateVideoInput{
		Title: " New ", Description: "Desc", ThumbnailPath: "/tmp/t2.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "New", got.Title)
}

func TestVideoService_TogglePublish(t *testing.T) {
	fx := createTestVideoService(t)
	ctx := context.Background()
	video := newTestVideo(uuid.New(), true)
	hidden := *video
	hidden.IsPublished = false

	fx.videoRepo.EXPECT().FindByID(ctx, video.ID).Return(video, nil)
	fx.videoRepo.EXPECT().SetPublished(ctx, video.ID, false).Return(&hidden, nil)

	got, err := fx.service.TogglePublish(ctx, video.OwnerID, video.ID)
	require.NoError(t, err)
	assert.False(t, got.IsPublished)
}

func TestVideoService_IncrementViews(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	tests := []struct {
		name      string
		published bool
		viewer    *uuid.UUID
		wantErr   error
	}{
		{name: "published counts for anonymous", published: true},
		{name: "draft counts for owner", published: false, viewer: &owner},
		{name: "draft hidden from anonymous", published: false, wantErr: domainerrors.ErrVideoNotFound},
		{name: "draft hidden from stranger", published: false, viewer: &stranger, wantErr: domainerrors.ErrVideoNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestVideoService(t)
			ctx := context.Background()
			video := newTestVideo(owner, tt.published)

			fx.videoRepo.EXPECT().FindByID(ctx, video.ID).Return(video, nil)
			if tt.wantErr == nil {
				bumped := *video
				bumped.Views = 1
				fx.videoRepo.EXPECT().IncrementViews(ctx, video.ID).Return(&bumped, nil)
			}

			got, err := fx.service.IncrementViews(ctx, video.ID, tt.viewer)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				fx.videoRepo.AssertNotCalled(t, "IncrementViews", mock.Anything, mock.Anything)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(1), got.Views)
		})
	}
}

func TestVideoService_IncrementViews_MissingVideo(t *testing.T) {
	fx := createTestVideoService(t)
	ctx := context.Background()
	videoID := uuid.New()

	fx.videoRepo.EXPECT().FindByID(ctx, videoID).Return(nil, repository.ErrVideoNotFound)

	_, err := fx.service.IncrementViews(ctx, videoID, nil)
	assert.ErrorIs(t, err, domainerrors.ErrVideoNotFound)
}
