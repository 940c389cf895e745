package service

import (
	"context"
)

// NotificationSubscription is the projection of a notification mirrored to the smart notification service.
type NotificationSubscription struct {
	ID           string   `json:"id"`      // Notification id.
	UserID       string   `json:"user_id"` // Owning account id.
	LineID       string   `json:"line_id"`
	StopID       string   `json:"stop_id"`
	Distance     float64  `json:"distance"`
	DistanceUnit string   `json:"distance_unit"`
	StartTime    int      `json:"start_time"`
	EndTime      int      `json:"end_time"`
	WeekDays     []string `json:"week_days"`
}

// NotificationSyncService defines the interface of the external smart notification service,
// which owns the delivery of proximity alerts.
type NotificationSyncService interface {
	// Enabled reports whether the external service is configured.
	Enabled() bool

	// UpsertNotification creates or replaces the mirror of a notification.
	UpsertNotification(ctx context.Context, subscription *NotificationSubscription) error

	// DeleteNotification removes the mirror stored under key ({account_id}:{notification_id}).
	DeleteNotification(ctx context.Context, key string) error
}
