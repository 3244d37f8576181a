package handler

import (
	"mytube/internal/delivery/api/middleware"
	"mytube/internal/delivery/api/response"
	"mytube/internal/domain/entity"
	domainerrors "mytube/internal/domain/errors"
	"mytube/internal/usecase"

	"github.com/labstack/echo/v4"
)

// LikeHandler toggles likes on videos, comments and tweets.
type LikeHandler struct {
	likeUC usecase.LikeUsecase
}

// NewLikeHandler is the constructor for LikeHandler
func NewLikeHandler(likeUC usecase.LikeUsecase) *LikeHandler {
	return &LikeHandler{likeUC: likeUC}
}

func (h *LikeHandler) ToggleVideo(c echo.Context) error {
	return h.toggle(c, entity.LikeTargetVideo, "videoId")
}

func (h *LikeHandler) ToggleComment(c echo.Context) error {
	return h.toggle(c, entity.LikeTargetComment, "commentId")
}

func (h *LikeHandler) ToggleTweet(c echo.Context) error {
	return h.toggle(c, entity.LikeTargetTweet, "tweetId")
}

func (h *LikeHandler) toggle(c echo.Context, target entity.LikeTarget, param string) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrUnauthorized)
	}

	id, err := parseID(c, param)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.likeUC.Toggle(c.Request().Context(), userID, entity.LikeSubject{Target: target, ID: id})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	message := "Like removed"
	if result.Active {
		message = "Like added"
	}

	return response.OK(c, result, message)
}

func (h *LikeHandler) LikedVideos(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrUnauthorized)
	}

	videos, err := h.likeUC.LikedVideos(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, videos, "Liked videos fetched successfully")
}
