// Package notification mirrors notification subscriptions to the external smart notification service.
package notification

import (
	"context"
	"log/slog"
	"time"

	"accounts/config"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/service"

	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 10 * time.Second

// errorBody is the error payload of the smart notification service.
type errorBody struct {
	Message string `json:"message"`
}

type smartNotificationsClient struct {
	httpClient *resty.Client
	logger     *slog.Logger
}

// NewNotificationSyncService creates the client for the configured service, or a
// disabled implementation when no base URL is configured.
func NewNotificationSyncService(cfg *config.Config, logger *slog.Logger) service.NotificationSyncService {
	if cfg.SmartNotifications == nil || cfg.SmartNotifications.BaseURL == "" {
		logger.Warn("Smart notifications base URL not configured, notification writes are disabled")

		return disabledSyncService{}
	}

	return NewSmartNotificationsClient(cfg.SmartNotifications, logger)
}

// NewSmartNotificationsClient creates a resty backed client.
func NewSmartNotificationsClient(cfg *config.SmartNotificationsConfig, logger *slog.Logger) service.NotificationSyncService {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &smartNotificationsClient{
		httpClient: client,
		logger:     logger,
	}
}

// Enabled reports whether the external service is configured.
func (c *smartNotificationsClient) Enabled() bool {
	return true
}

// UpsertNotification creates or replaces the mirror of a notification.
func (c *smartNotificationsClient) UpsertNotification(ctx context.Context, subscription *service.NotificationSubscription) error {
	var failure errorBody
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(subscription).
		SetError(&failure).
		Post("/notifications")
	if err != nil {
		c.logger.ErrorContext(ctx, "Smart notifications upsert failed",
			slog.String("notificationID", subscription.ID),
			slog.Any("error", err),
		)

		return domainerrors.NewUpstreamError(0, "", err)
	}

	if resp.IsError() {
		c.logger.WarnContext(ctx, "Smart notifications upsert rejected",
			slog.String("notificationID", subscription.ID),
			slog.Int("status", resp.StatusCode()),
			slog.String("message", failure.Message),
		)

		return domainerrors.NewUpstreamError(resp.StatusCode(), failure.Message, nil)
	}

	return nil
}

// DeleteNotification removes the mirror stored under key.
func (c *smartNotificationsClient) DeleteNotification(ctx context.Context, key string) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetPathParam("key", key).
		Delete("/notifications/{key}")
	if err != nil {
		c.logger.ErrorContext(ctx, "Smart notifications delete failed",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return domainerrors.NewUpstreamError(0, "", err)
	}

	if resp.IsError() {
		c.logger.WarnContext(ctx, "Smart notifications delete rejected",
			slog.String("key", key),
			slog.Int("status", resp.StatusCode()),
		)

		return domainerrors.NewUpstreamError(resp.StatusCode(), "", nil)
	}

	return nil
}

// disabledSyncService is used when the external service is not configured.
type disabledSyncService struct{}

func (disabledSyncService) Enabled() bool { return false }

func (disabledSyncService) UpsertNotification(context.Context, *service.NotificationSubscription) error {
	return domainerrors.ErrNotificationSyncDisabled
}

func (disabledSyncService) DeleteNotification(context.Context, string) error {
	return domainerrors.ErrNotificationSyncDisabled
}
