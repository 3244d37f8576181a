package handler

import (
	"mytube/internal/delivery/api/middleware"
	"mytube/internal/delivery/api/response"
	domainerrors "mytube/internal/domain/errors"
	"mytube/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SubscriptionHandler serves channel subscriptions.
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler
func NewSubscriptionHandler(subscriptionUC usecase.SubscriptionUsecase) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionUC: subscriptionUC}
}

func (h *SubscriptionHandler) Toggle(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrUnauthorized)
	}

	channelID, err := parseID(c, "channelId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.subscriptionUC.Toggle(c.Request().Context(), userID, channelID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	message := "Unsubscribed"
	if result.Active {
		message = "Subscribed"
	}

	return response.OK(c, result, message)
}

func (h *SubscriptionHandler) Subscribers(c echo.Context) error {
	channelID, err := parseID(c, "channelId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	subscribers, err := h.subscriptionUC.Subscribers(c.Request().Context(), channelID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, subscribers, "Subscribers fetched successfully")
}

func (h *SubscriptionHandler) SubscribedChannels(c echo.Context) error {
	subscriberID, err := parseID(c, "subscriberId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	channels, err := h.subscriptionUC.SubscribedChannels(c.Request().Context(), subscriberID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, channels, "Subscribed channels fetched successfully")
}

func (h *SubscriptionHandler) Status(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrUnauthorized)
	}

	channelID, err := parseID(c, "channelId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status, err := h.subscriptionUC.Status(c.Request().Context(), userID, channelID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, status, "Subscription status fetched successfully")
}
