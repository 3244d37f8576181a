package handler

import (
	"mytube/internal/delivery/api/middleware"
	"mytube/internal/delivery/api/response"
	domainerrors "mytube/internal/domain/errors"
	"mytube/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the owner's channel dashboard.
type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(dashboardUC usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC}
}

func (h *DashboardHandler) Stats(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrUnauthorized)
	}

	stats, err := h.dashboardUC.Stats(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, stats, "Channel stats fetched successfully")
}

func (h *DashboardHandler) Videos(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrUnauthorized)
	}

	videos, err := h.dashboardUC.Videos(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, videos, "Channel videos fetched successfully")
}
