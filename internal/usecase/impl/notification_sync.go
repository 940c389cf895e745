package impl

import (
	"context"
	"log/slog"

	"accounts/internal/domain/entity"
	"accounts/internal/domain/service"
)

// toSubscription builds the projection mirrored to the smart notification service.
func toSubscription(accountID string, n *entity.Notification) *service.NotificationSubscription {
	return &service.NotificationSubscription{
		ID:           n.ID,
		UserID:       accountID,
		LineID:       n.LineID,
		StopID:       n.StopID,
		Distance:     n.Distance,
		DistanceUnit: string(n.DistanceUnit),
		StartTime:    n.StartTime,
		EndTime:      n.EndTime,
		WeekDays:     n.WeekDays,
	}
}

// removeMirrors deletes the remote mirrors of every notification of a deleted account.
// Failures are logged only.
func removeMirrors(ctx context.Context, logger *slog.Logger, sync service.NotificationSyncService, account *entity.Account) {
	if !sync.Enabled() || account == nil {
		return
	}

	for _, n := range account.Notifications {
		key := entity.SyncKey(account.ID, n.ID)
		if err := sync.DeleteNotification(ctx, key); err != nil {
			logger.WarnContext(ctx, "Failed to delete notification mirror",
				slog.String("key", key),
				slog.Any("error", err),
			)
		}
	}
}

// rekeyMirrors moves the remote mirrors of the source accounts under the merged account id.
// Failures are logged only.
func rekeyMirrors(ctx context.Context, logger *slog.Logger, sync service.NotificationSyncService, merged *entity.Account, sources ...*entity.Account) {
	if !sync.Enabled() {
		return
	}

	for _, src := range sources {
		for i := range src.Notifications {
			n := &src.Notifications[i]
			if err := sync.DeleteNotification(ctx, entity.SyncKey(src.ID, n.ID)); err != nil {
				logger.WarnContext(ctx, "Failed to delete notification mirror after merge",
					slog.String("key", entity.SyncKey(src.ID, n.ID)),
					slog.Any("error", err),
				)
			}
		}
	}

	for i := range merged.Notifications {
		n := &merged.Notifications[i]
		if err := sync.UpsertNotification(ctx, toSubscription(merged.ID, n)); err != nil {
			logger.WarnContext(ctx, "Failed to mirror notification after merge",
				slog.String("key", entity.SyncKey(merged.ID, n.ID)),
				slog.Any("error", err),
			)
		}
	}
}
