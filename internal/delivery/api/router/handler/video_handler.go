package handler

import (
	"log/slog"

	"mytube/config"
	"mytube/internal/delivery/api/middleware"
	"mytube/internal/delivery/api/response"
	domainerrors "mytube/internal/domain/errors"
	"mytube/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VideoHandlerParams holds dependencies for VideoHandler, injected by Fx.
type VideoHandlerParams struct {
	fx.In

	VideoUC usecase.VideoUsecase
	Config  *config.Config
	Logger  *slog.Logger
}

// VideoHandler serves the feed and the video lifecycle.
type VideoHandler struct {
	videoUC usecase.VideoUsecase
	tempDir string
	logger  *slog.Logger
}

// NewVideoHandler is the constructor for VideoHandler
func NewVideoHandler(params VideoHandlerParams) *VideoHandler {
	return &VideoHandler{
		videoUC: params.VideoUC,
		tempDir: params.Config.Media.TempDir,
		logger:  params.Logger,
	}
}

// VideoRequest is the form of publish and update. Files travel as multipart parts.
type VideoRequest struct {
	Title       string `form:"title" json:"title" validate:"notblank"`
	Description string `form:"description" json:"description" validate:"notblank"`
}

// Feed searches published videos. The owner's own unpublished videos are included for them.
func (h *VideoHandler) Feed(c echo.Context) error {
	input := &usecase.FeedInput{
		Query:    c.QueryParam("query"),
		ViewerID: middleware.GetOptionalUserID(c),
		SortBy:   c.QueryParam("sortBy"),
		SortType: c.QueryParam("sortType"),
		Page:     queryInt(c, "page"),
		Limit:    queryInt(c, "limit"),
	}

	if raw := c.QueryParam("userId"); raw != "" {
		ownerID, err := uuid.Parse(raw)
		if err != nil {
			return response.AppError(c, domainerrors.ErrInvalidID.WithDetails("userId"))
		}
		input.OwnerID = &ownerID
	}

	videos, err := h.videoUC.Feed(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, videos, "Videos fetched successfully")
}

func (h *VideoHandler) Publish(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrUnauthorized)
	}

	var req VideoRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	files := newUploads(h.tempDir)
	defer files.cleanup()

	videoPath, err := files.save(c, "videoFile")
	if err != nil {
		return err
	}
	thumbnailPath, err := files.save(c, "thumbnail")
	if err != nil {
		return err
	}

	video, err := h.videoUC.Publish(c.Request().Context(), userID, &usecase.PublishVideoInput{
		Title:         req.Title,
		Description:   req.Description,
		VideoPath:     videoPath,
		ThumbnailPath: thumbnailPath,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, video, "Video published successfully")
}

func (h *VideoHandler) Detail(c echo.Context) error {
	videoID, err := parseID(c, "videoId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	video, err := h.videoUC.Detail(c.Request().Context(), videoID, middleware.GetOptionalUserID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, video, "Video fetched successfully")
}

func (h *VideoHandler) Update(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrUnauthorized)
	}

	videoID, err := parseID(c, "videoId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req VideoRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	files := newUploads(h.tempDir)
	defer files.cleanup()

	thumbnailPath, err := files.save(c, "thumbnail")
	if err != nil {
		return err
	}

	video, err := h.videoUC.Update(c.Request().Context(), userID, videoID, &usecase.UpdateVideoInput{
		Title:         req.Title,
		Description:   req.Description,
		ThumbnailPath: thumbnailPath,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, video, "Video updated successfully")
}

func (h *VideoHandler) Delete(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrUnauthorized)
	}

	videoID, err := parseID(c, "videoId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.videoUC.Delete(c.Request().Context(), userID, videoID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]any{"videoId": videoID}, "Video deleted successfully")
}

func (h *VideoHandler) TogglePublish(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrUnauthorized)
	}

	videoID, err := parseID(c, "videoId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	video, err := h.videoUC.TogglePublish(c.Request().Context(), userID, videoID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, video, "Publish status toggled")
}

func (h *VideoHandler) IncrementViews(c echo.Context) error {
	videoID, err := parseID(c, "videoId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	video, err := h.videoUC.IncrementViews(c.Request().Context(), videoID, middleware.GetOptionalUserID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, video, "Views updated")
}
