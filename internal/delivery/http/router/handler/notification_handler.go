package handler

import (
	"log/slog"
	"net/http"

	"accounts/internal/delivery/http/response"
	"accounts/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler handles smart notification subscriptions of an account
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// ListNotifications handles listing the notifications of an account
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	notifications, err := h.notificationUC.ListNotifications(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications, "")
}

// GetNotification handles retrieving one notification
func (h *NotificationHandler) GetNotification(c echo.Context) error {
	notification, err := h.notificationUC.GetNotification(c.Request().Context(), c.Param("id"), c.Param("notificationId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notification, "")
}

// CreateNotification handles creating a notification
func (h *NotificationHandler) CreateNotification(c echo.Context) error {
	var input usecase.NotificationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}

	notification, err := h.notificationUC.CreateNotification(c.Request().Context(), c.Param("id"), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, notification, "Notification created")
}

// UpdateNotification handles replacing a notification
func (h *NotificationHandler) UpdateNotification(c echo.Context) error {
	var input usecase.NotificationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}

	notification, err := h.notificationUC.UpdateNotification(c.Request().Context(), c.Param("id"), c.Param("notificationId"), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notification, "Notification updated")
}

// DeleteNotification handles deleting a notification
func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	if err := h.notificationUC.DeleteNotification(c.Request().Context(), c.Param("id"), c.Param("notificationId")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification deleted")
}
