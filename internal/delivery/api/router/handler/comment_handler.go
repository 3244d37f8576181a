package handler

import (
	"mytube/internal/delivery/api/middleware"
	"mytube/internal/delivery/api/response"
	domainerrors "mytube/internal/domain/errors"
	"mytube/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CommentHandler serves comments on videos.
type CommentHandler struct {
	commentUC usecase.CommentUsecase
}

// NewCommentHandler is the constructor for CommentHandler
func NewCommentHandler(commentUC usecase.CommentUsecase) *CommentHandler {
	return &CommentHandler{commentUC: commentUC}
}

// ContentRequest is the body shared by comments and tweets
type ContentRequest struct {
	Content string `json:"content" validate:"notblank"`
}

func (h *CommentHandler) List(c echo.Context) error {
	videoID, err := parseID(c, "videoId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	comments, err := h.commentUC.List(c.Request().Context(), middleware.GetOptionalUserID(c), videoID, queryInt(c, "page"), queryInt(c, "limit"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, comments, "Comments fetched successfully")
}

func (h *CommentHandler) Add(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrUnauthorized)
	}

	videoID, err := parseID(c, "videoId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ContentRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	comment, err := h.commentUC.Add(c.Request().Context(), userID, videoID, req.Content)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, comment, "Comment added successfully")
}

func (h *CommentHandler) Update(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrUnauthorized)
	}

	commentID, err := parseID(c, "commentId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ContentRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	comment, err := h.commentUC.Update(c.Request().Context(), userID, commentID, req.Content)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, comment, "Comment updated successfully")
}

func (h *CommentHandler) Delete(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrUnauthorized)
	}

	commentID, err := parseID(c, "commentId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.commentUC.Delete(c.Request().Context(), userID, commentID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]any{"commentId": commentID}, "Comment deleted successfully")
}
