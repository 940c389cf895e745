package usecase

import (
	"context"

	"accounts/internal/domain/entity"
)

// NotificationInput is the payload of a notification create or update.
type NotificationInput struct {
	LineID       string              `json:"line_id"`
	StopID       string              `json:"stop_id"`
	Distance     float64             `json:"distance"`
	DistanceUnit entity.DistanceUnit `json:"distance_unit"`
	StartTime    int                 `json:"start_time"`
	EndTime      int                 `json:"end_time"`
	WeekDays     []string            `json:"week_days"`
}

// NotificationUsecase defines the interface for smart notification subscriptions.
// Writes are mirrored to the external smart notification service.
type NotificationUsecase interface {
	// ListNotifications retrieves the notifications of the account owning the device.
	ListNotifications(ctx context.Context, deviceID string) ([]entity.Notification, error)

	// GetNotification retrieves one notification.
	GetNotification(ctx context.Context, deviceID, notificationID string) (*entity.Notification, error)

	// CreateNotification stores a notification and mirrors it remotely.
	CreateNotification(ctx context.Context, deviceID string, input *NotificationInput) (*entity.Notification, error)

	// UpdateNotification replaces a notification and mirrors it remotely.
	UpdateNotification(ctx context.Context, deviceID, notificationID string, input *NotificationInput) (*entity.Notification, error)

	// DeleteNotification removes a notification and its remote mirror.
	DeleteNotification(ctx context.Context, deviceID, notificationID string) error
}
