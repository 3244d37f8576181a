package handler

import (
	"net/http"
	"testing"

	"mytube/internal/domain/entity"
	domainerrors "mytube/internal/domain/errors"
	mockUsecase "mytube/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestLikeHandler_Toggle(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		target      entity.LikeTarget
		active      bool
		wantMessage string
	}{
		{name: "video liked", path: "/v/", target: entity.LikeTargetVideo, active: true, wantMessage: "Like added"},
		{name: "comment unliked", path: "/c/", target: entity.LikeTargetComment, active: false, wantMessage: "Like removed"},
		{name: "tweet liked", path: "/t/", target: entity.LikeTargetTweet, active: true, wantMessage: "Like added"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t)
			likeUC := mockUsecase.NewMockLikeUsecase(t)
			h := NewLikeHandler(likeUC)
			likes := srv.echo.Group("/api/v1/likes", srv.auth.Authenticate)
			likes.POST("/toggle/v/:videoId", h.ToggleVideo)
			likes.POST("/toggle/c/:commentId", h.ToggleComment)
			likes.POST("/toggle/t/:tweetId", h.ToggleTweet)

			caller := uuid.New()
			id := uuid.New()
			token := srv.as(caller)

			likeUC.EXPECT().
				Toggle(mock.Anything, caller, entity.LikeSubject{Target: tt.target, ID: id}).
				Return(&entity.ToggleResult{Active: tt.active}, nil)

			rec, body := srv.do(jsonRequest(http.MethodPost, "/api/v1/likes/toggle"+tt.path+id.String(), nil), token)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}

func TestSubscriptionHandler_Toggle_Self(t *testing.T) {
	srv := newTestServer(t)
	subscriptionUC := mockUsecase.NewMockSubscriptionUsecase(t)
	h := NewSubscriptionHandler(subscriptionUC)
	srv.echo.POST("/api/v1/subscriptions/c/:channelId", h.Toggle, srv.auth.Authenticate)

	caller := uuid.New()
	token := srv.as(caller)

	subscriptionUC.EXPECT().Toggle(mock.Anything, caller, caller).Return(nil, domainerrors.ErrSelfSubscription)

	rec, body := srv.do(jsonRequest(http.MethodPost, "/api/v1/subscriptions/c/"+caller.String(), nil), token)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, body.Success)
}

func TestCommentHandler_Add_BlankContent(t *testing.T) {
	srv := newTestServer(t)
	h := NewCommentHandler(mockUsecase.NewMockCommentUsecase(t))
	srv.echo.POST("/api/v1/comments/:videoId", h.Add, srv.auth.Authenticate)

	token := srv.as(uuid.New())

	rec, body := srv.do(jsonRequest(http.MethodPost, "/api/v1/comments/"+uuid.NewString(), map[string]string{
		"content": "   ",
	}), token)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", body.Code)
}

func TestCommentHandler_List_PassesPaging(t *testing.T) {
	srv := newTestServer(t)
	commentUC := mockUsecase.NewMockCommentUsecase(t)
	h := NewCommentHandler(commentUC)
	srv.echo.GET("/api/v1/comments/:videoId", h.List)

	videoID := uuid.New()
	commentUC.EXPECT().List(mock.Anything, (*uuid.UUID)(nil), videoID, 3, 0).Return([]*entity.CommentWithOwner{}, nil)

	rec, _ := srv.do(jsonRequest(http.MethodGet, "/api/v1/comments/"+videoID.String()+"?page=3&limit=abc", nil), "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTweetHandler_Update_NotOwner(t *testing.T) {
	srv := newTestServer(t)
	tweetUC := mockUsecase.NewMockTweetUsecase(t)
	h := NewTweetHandler(tweetUC)
	srv.echo.PATCH("/api/v1/tweets/:tweetId", h.Update, srv.auth.Authenticate)

	caller := uuid.New()
	tweetID := uuid.New()
	token := srv.as(caller)

	tweetUC.EXPECT().Update(mock.Anything, caller, tweetID, "edited").Return(nil, domainerrors.ErrNotOwner)

	rec, _ := srv.do(jsonRequest(http.MethodPatch, "/api/v1/tweets/"+tweetID.String(), map[string]string{
		"content": "edited",
	}), token)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDashboardHandler_Stats(t *testing.T) {
	srv := newTestServer(t)
	dashboardUC := mockUsecase.NewMockDashboardUsecase(t)
	h := NewDashboardHandler(dashboardUC)
	srv.echo.GET("/api/v1/dashboard/stats", h.Stats, srv.auth.Authenticate)

	owner := uuid.New()
	token := srv.as(owner)

	dashboardUC.EXPECT().Stats(mock.Anything, owner).Return(&entity.ChannelStats{TotalVideos: 2}, nil)

	rec, body := srv.do(jsonRequest(http.MethodGet, "/api/v1/dashboard/stats", nil), token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"totalVideos":2,"totalViews":0,"totalLikes":0,"totalSubscribers":0,"totalSubscribedChannels":0}`, string(body.Data))
}
