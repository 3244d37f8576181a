package handler

import (
	"context"
	"log/slog"

	"mytube/config"
	"mytube/internal/delivery/api/middleware"
	"mytube/internal/delivery/api/response"
	"mytube/internal/domain/constants"
	"mytube/internal/domain/entity"
	domainerrors "mytube/internal/domain/errors"
	"mytube/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC    usecase.UserUsecase
	ChannelUC usecase.ChannelUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// UserHandler serves accounts, channel pages and watch history.
type UserHandler struct {
	userUC    usecase.UserUsecase
	channelUC usecase.ChannelUsecase
	auth      *config.AuthConfig
	tempDir   string
	logger    *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC:    params.UserUC,
		channelUC: params.ChannelUC,
		auth:      params.Config.Auth,
		tempDir:   params.Config.Media.TempDir,
		logger:    params.Logger,
	}
}

// RegisterRequest is the multipart form of a registration. Avatar and cover image travel as files.
type RegisterRequest struct {
	Username string `form:"username" json:"username" validate:"notblank"`
	Email    string `form:"email" json:"email" validate:"notblank,email"`
	Fullname string `form:"fullname" json:"fullname" validate:"notblank"`
	Password string `form:"password" json:"password" validate:"notblank"`
}

// LoginRequest identifies the account by username or email
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" validate:"notblank"`
}

// RefreshRequest carries the refresh token when it is not sent as a cookie
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// ChangePasswordRequest carries the current and the new password
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"notblank"`
	NewPassword string `json:"newPassword" validate:"notblank"`
}

// UpdateFullnameRequest carries the new display name
type UpdateFullnameRequest struct {
	Fullname string `json:"fullname" validate:"notblank"`
}

func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	files := newUploads(h.tempDir)
	defer files.cleanup()

	avatarPath, err := files.save(c, "avatar")
	if err != nil {
		return err
	}
	coverPath, err := files.save(c, "coverImage")
	if err != nil {
		return err
	}

	user, err := h.userUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Username:       req.Username,
		Email:          req.Email,
		Fullname:       req.Fullname,
		Password:       req.Password,
		AvatarPath:     avatarPath,
		CoverImagePath: coverPath,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, user, "User registered successfully")
}

func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	setTokenCookies(c.Response(), h.auth, result.TokenPair)

	return response.OK(c, result, "User logged in successfully")
}

func (h *UserHandler) Logout(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrUnauthorized)
	}

	if err := h.userUC.Logout(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	clearTokenCookies(c.Response(), h.auth)

	return response.OK(c, map[string]any{}, "User logged out")
}

// RefreshToken accepts the refresh token from the cookie first, then from the body.
func (h *UserHandler) RefreshToken(c echo.Context) error {
	var token string
	if cookie, err := c.Cookie(constants.CookieRefreshToken); err == nil {
		token = cookie.Value
	}
	if token == "" {
		var req RefreshRequest
		if err := c.Bind(&req); err == nil {
			token = req.RefreshToken
		}
	}
	if token == "" {
		return response.AppError(c, domainerrors.ErrUnauthorized)
	}

	pair, err := h.userUC.RefreshTokens(c.Request().Context(), token)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	setTokenCookies(c.Response(), h.auth, *pair)

	return response.OK(c, pair, "Access token refreshed")
}

func (h *UserHandler) ChangePassword(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrUnauthorized)
	}

	var req ChangePasswordRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	err := h.userUC.ChangePassword(c.Request().Context(), userID, &usecase.ChangePasswordInput{
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]any{}, "Password changed successfully")
}

func (h *UserHandler) CurrentUser(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrUnauthorized)
	}

	user, err := h.userUC.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, user, "Current user fetched successfully")
}

func (h *UserHandler) UpdateFullname(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrUnauthorized)
	}

	var req UpdateFullnameRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.UpdateFullname(c.Request().Context(), userID, req.Fullname)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, user, "Account details updated successfully")
}

func (h *UserHandler) UpdateAvatar(c echo.Context) error {
	return h.replaceImage(c, "avatar", h.userUC.UpdateAvatar, "Avatar updated successfully")
}

func (h *UserHandler) UpdateCoverImage(c echo.Context) error {
	return h.replaceImage(c, "coverImage", h.userUC.UpdateCoverImage, "Cover image updated successfully")
}

func (h *UserHandler) replaceImage(
	c echo.Context,
	field string,
	update func(ctx context.Context, userID uuid.UUID, localPath string) (*entity.User, error),
	message string,
) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrUnauthorized)
	}

	files := newUploads(h.tempDir)
	defer files.cleanup()

	path, err := files.save(c, field)
	if err != nil {
		return err
	}
	if path == "" {
		return response.AppError(c, domainerrors.ErrMediaFileMissing.WithDetails(field))
	}

	user, err := update(c.Request().Context(), userID, path)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, user, message)
}

func (h *UserHandler) ChannelProfile(c echo.Context) error {
	profile, err := h.channelUC.Profile(c.Request().Context(), c.Param("username"), middleware.GetOptionalUserID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, profile, "User channel fetched successfully")
}

func (h *UserHandler) ChannelVideos(c echo.Context) error {
	ownerID, err := parseID(c, "userId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	videos, err := h.channelUC.ChannelVideos(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, videos, "Channel videos fetched successfully")
}

func (h *UserHandler) WatchHistory(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrUnauthorized)
	}

	videos, err := h.channelUC.WatchHistory(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, videos, "Watch history fetched successfully")
}

func (h *UserHandler) AddToWatchHistory(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrUnauthorized)
	}

	videoID, err := parseID(c, "videoId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.channelUC.AddToWatchHistory(c.Request().Context(), userID, videoID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]any{"videoId": videoID}, "Video added to watch history")
}

func (h *UserHandler) RemoveFromWatchHistory(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrUnauthorized)
	}

	videoID, err := parseID(c, "videoId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.channelUC.RemoveFromWatchHistory(c.Request().Context(), userID, videoID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]any{"videoId": videoID}, "Video removed from watch history")
}
