package handler

import (
	"context"

	"mytube/internal/delivery/api/middleware"
	"mytube/internal/delivery/api/response"
	"mytube/internal/domain/entity"
	domainerrors "mytube/internal/domain/errors"
	"mytube/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PlaylistHandler serves playlists and their membership.
type PlaylistHandler struct {
	playlistUC usecase.PlaylistUsecase
}

// NewPlaylistHandler is the constructor for PlaylistHandler
func NewPlaylistHandler(playlistUC usecase.PlaylistUsecase) *PlaylistHandler {
	return &PlaylistHandler{playlistUC: playlistUC}
}

// PlaylistRequest carries both editable fields.
type PlaylistRequest struct {
	Name        string `json:"name" validate:"notblank"`
	Description string `json:"description" validate:"notblank"`
}

// PlaylistNameRequest renames a playlist
type PlaylistNameRequest struct {
	Name string `json:"name" validate:"notblank"`
}

// PlaylistDescriptionRequest replaces the description of a playlist
type PlaylistDescriptionRequest struct {
	Description string `json:"description" validate:"notblank"`
}

func (h *PlaylistHandler) Create(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrUnauthorized)
	}

	var req PlaylistRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	playlist, err := h.playlistUC.Create(c.Request().Context(), userID, &usecase.PlaylistInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, playlist, "Playlist created successfully")
}

func (h *PlaylistHandler) Get(c echo.Context) error {
	playlistID, err := parseID(c, "playlistId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	playlist, err := h.playlistUC.Get(c.Request().Context(), playlistID, middleware.GetOptionalUserID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, playlist, "Playlist fetched successfully")
}

func (h *PlaylistHandler) ListByUser(c echo.Context) error {
	ownerID, err := parseID(c, "userId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	playlists, err := h.playlistUC.ListByUser(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, playlists, "Playlists fetched successfully")
}

func (h *PlaylistHandler) Videos(c echo.Context) error {
	playlistID, err := parseID(c, "playlistId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	videos, err := h.playlistUC.Videos(c.Request().Context(), playlistID, middleware.GetOptionalUserID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, videos, "Playlist videos fetched successfully")
}

func (h *PlaylistHandler) Update(c echo.Context) error {
	var req PlaylistRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.patch(c, entity.PlaylistPatch{Name: &req.Name, Description: &req.Description})
}

func (h *PlaylistHandler) UpdateName(c echo.Context) error {
	var req PlaylistNameRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.patch(c, entity.PlaylistPatch{Name: &req.Name})
}

func (h *PlaylistHandler) UpdateDescription(c echo.Context) error {
	var req PlaylistDescriptionRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.patch(c, entity.PlaylistPatch{Description: &req.Description})
}

func (h *PlaylistHandler) patch(c echo.Context, patch entity.PlaylistPatch) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrUnauthorized)
	}

	playlistID, err := parseID(c, "playlistId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	playlist, err := h.playlistUC.Update(c.Request().Context(), userID, playlistID, patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, playlist, "Playlist updated successfully")
}

func (h *PlaylistHandler) Delete(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrUnauthorized)
	}

	playlistID, err := parseID(c, "playlistId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.playlistUC.Delete(c.Request().Context(), userID, playlistID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]any{"playlistId": playlistID}, "Playlist deleted successfully")
}

func (h *PlaylistHandler) AddVideo(c echo.Context) error {
	return h.membership(c, h.playlistUC.AddVideo, "Video added to playlist")
}

func (h *PlaylistHandler) RemoveVideo(c echo.Context) error {
	return h.membership(c, h.playlistUC.RemoveVideo, "Video removed from playlist")
}

type membershipFunc func(ctx context.Context, callerID, playlistID, videoID uuid.UUID) (*entity.Playlist, error)

func (h *PlaylistHandler) membership(c echo.Context, change membershipFunc, message string) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrUnauthorized)
	}

	videoID, err := parseID(c, "videoId")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	playlistID, err := parseID(c, "playlistId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	playlist, err := change(c.Request().Context(), userID, playlistID, videoID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, playlist, message)
}
