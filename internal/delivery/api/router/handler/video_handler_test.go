package handler

import (
	"net/http"
	"testing"

	"mytube/internal/domain/entity"
	domainerrors "mytube/internal/domain/errors"
	mockUsecase "mytube/internal/mocks/usecase"
	"mytube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type videoHandlerFixtures struct {
	*testServer
	videoUC *mockUsecase.MockVideoUsecase
}

func createTestVideoHandler(t *testing.T) videoHandlerFixtures {
	srv := newTestServer(t)
	f := videoHandlerFixtures{testServer: srv, videoUC: mockUsecase.NewMockVideoUsecase(t)}

	h := NewVideoHandler(VideoHandlerParams{VideoUC: f.videoUC, Config: newTestConfig(t)})

	videos := srv.echo.Group("/api/v1/videos")
	videos.GET("", h.Feed, srv.auth.OptionalAuthenticate)
	videos.POST("", h.Publish, srv.auth.Authenticate)
	videos.GET("/:videoId", h.Detail, srv.auth.OptionalAuthenticate)
	videos.DELETE("/:videoId", h.Delete, srv.auth.Authenticate)
	videos.PATCH("/toggle/publish/:videoId", h.TogglePublish, srv.auth.Authenticate)
	videos.PATCH("/:videoId/views", h.IncrementViews)

	return f
}

func TestVideoHandler_Feed_ForwardsQuery(t *testing.T) {
	fx := createTestVideoHandler(t)
	viewer := uuid.New()
	owner := uuid.New()
	token := fx.as(viewer)

	fx.videoUC.EXPECT().
		Feed(mock.Anything, mock.MatchedBy(func(in *usecase.FeedInput) bool {
			return in.Query == "cats" &&
				in.SortBy == "views" && in.SortType == "-1" &&
				in.Page == 2 && in.Limit == 5 &&
				in.OwnerID != nil && *in.OwnerID == owner &&
				in.ViewerID != nil && *in.ViewerID == viewer
		})).
		Return([]*entity.VideoWithOwner{}, nil)

	target := "/api/v1/videos?query=cats&sortBy=views&sortType=-1&page=2&limit=5&userId=" + owner.String()
	rec, body := fx.do(jsonRequest(http.MethodGet, target, nil), token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", string(body.Data))
}

func TestVideoHandler_Feed_InvalidOwner(t *testing.T) {
	fx := createTestVideoHandler(t)

	rec, body := fx.do(jsonRequest(http.MethodGet, "/api/v1/videos?query=x&userId=nope", nil), "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", body.Code)
}

func TestVideoHandler_Publish_PassesFiles(t *testing.T) {
	fx := createTestVideoHandler(t)
	owner := uuid.New()
	token := fx.as(owner)

	fx.videoUC.EXPECT().
		Publish(mock.Anything, owner, mock.MatchedBy(func(in *usecase.PublishVideoInput) bool {
			return in.Title == "Hello" && in.VideoPath != "" && in.ThumbnailPath != ""
		})).
		Return(&entity.Video{ID: uuid.New(), Title: "Hello"}, nil)

	req := multipartRequest(t, http.MethodPost, "/api/v1/videos",
		map[string]string{"title": "Hello", "description": "first upload"},
		map[string]string{"videoFile": "clip.mp4", "thumbnail": "thumb.jpg"},
	)
	rec, body := fx.do(req, token)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, body.Success)
}

func TestVideoHandler_Publish_MissingVideoFile(t *testing.T) {
	fx := createTestVideoHandler(t)
	owner := uuid.New()
	token := fx.as(owner)

	fx.videoUC.EXPECT().
		Publish(mock.Anything, owner, mock.MatchedBy(func(in *usecase.PublishVideoInput) bool {
			return in.VideoPath == ""
		})).
		Return(nil, domainerrors.ErrMediaFileMissing.WithDetails("videoFile"))

	req := multipartRequest(t, http.MethodPost, "/api/v1/videos",
		map[string]string{"title": "Hello", "description": "no file"},
		map[string]string{"thumbnail": "thumb.jpg"},
	)
	rec, body := fx.do(req, token)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "MEDIA_FILE_MISSING", body.Code)
}

func TestVideoHandler_Detail_AnonymousViewer(t *testing.T) {
	fx := createTestVideoHandler(t)
	videoID := uuid.New()

	fx.videoUC.EXPECT().
		Detail(mock.Anything, videoID, (*uuid.UUID)(nil)).
		Return(nil, domainerrors.ErrVideoNotFound)

	rec, body := fx.do(jsonRequest(http.MethodGet, "/api/v1/videos/"+videoID.String(), nil), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "VIDEO_NOT_FOUND", body.Code)
}

func TestVideoHandler_Delete_NotOwner(t *testing.T) {
	fx := createTestVideoHandler(t)
	caller := uuid.New()
	videoID := uuid.New()
	token := fx.as(caller)

	fx.videoUC.EXPECT().Delete(mock.Anything, caller, videoID).Return(domainerrors.ErrNotOwner)

	rec, body := fx.do(jsonRequest(http.MethodDelete, "/api/v1/videos/"+videoID.String(), nil), token)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "NOT_OWNER", body.Code)
}

func TestVideoHandler_Delete_MediaFailureIsServerError(t *testing.T) {
	fx := createTestVideoHandler(t)
	caller := uuid.New()
	videoID := uuid.New()
	token := fx.as(caller)

	fx.videoUC.EXPECT().Delete(mock.Anything, caller, videoID).
		Return(errors.Wrap(domainerrors.ErrMediaDeleteFailed, "remove video file"))

	rec, body := fx.do(jsonRequest(http.MethodDelete, "/api/v1/videos/"+videoID.String(), nil), token)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.False(t, body.Success)
	assert.Empty(t, body.Errors)
}

func TestVideoHandler_UnexpectedErrorIsHidden(t *testing.T) {
	fx := createTestVideoHandler(t)
	videoID := uuid.New()

	fx.videoUC.EXPECT().IncrementViews(mock.Anything, videoID, (*uuid.UUID)(nil)).Return(nil, errors.New("pq: connection reset"))

	rec, body := fx.do(jsonRequest(http.MethodPatch, "/api/v1/videos/"+videoID.String()+"/views", nil), "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", body.Code)
	assert.NotContains(t, body.Message, "pq")
}

func TestVideoHandler_TogglePublish(t *testing.T) {
	fx := createTestVideoHandler(t)
	owner := uuid.New()
	videoID := uuid.New()
	token := fx.as(owner)

	fx.videoUC.EXPECT().TogglePublish(mock.Anything, owner, videoID).
		Return(&entity.Video{ID: videoID, IsPublished: false}, nil)

	rec, _ := fx.do(jsonRequest(http.MethodPatch, "/api/v1/videos/toggle/publish/"+videoID.String(), nil), token)

	assert.Equal(t, http.StatusOK, rec.Code)
}
