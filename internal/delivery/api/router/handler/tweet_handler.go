package handler

import (
	"mytube/internal/delivery/api/middleware"
	"mytube/internal/delivery/api/response"
	domainerrors "mytube/internal/domain/errors"
	"mytube/internal/usecase"

	"github.com/labstack/echo/v4"
)

// TweetHandler serves channel posts.
type TweetHandler struct {
	tweetUC usecase.TweetUsecase
}

// NewTweetHandler is the constructor for TweetHandler
func NewTweetHandler(tweetUC usecase.TweetUsecase) *TweetHandler {
	return &TweetHandler{tweetUC: tweetUC}
}

func (h *TweetHandler) Create(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrUnauthorized)
	}

	var req ContentRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	tweet, err := h.tweetUC.Create(c.Request().Context(), userID, req.Content)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, tweet, "Tweet created successfully")
}

func (h *TweetHandler) ListByUser(c echo.Context) error {
	ownerID, err := parseID(c, "userId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	tweets, err := h.tweetUC.ListByUser(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, tweets, "Tweets fetched successfully")
}

func (h *TweetHandler) Update(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrUnauthorized)
	}

	tweetID, err := parseID(c, "tweetId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ContentRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	tweet, err := h.tweetUC.Update(c.Request().Context(), userID, tweetID, req.Content)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, tweet, "Tweet updated successfully")
}

func (h *TweetHandler) Delete(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrUnauthorized)
	}

	tweetID, err := parseID(c, "tweetId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.tweetUC.Delete(c.Request().Context(), userID, tweetID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]any{"tweetId": tweetID}, "Tweet deleted successfully")
}
