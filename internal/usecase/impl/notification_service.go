package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "accounts/internal/delivery/context"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// notificationService implements the NotificationUsecase interface. Local writes are
// committed before the remote mirror is updated; a remote failure is returned to the
// caller without undoing the local write.
type notificationService struct {
	accountRepo repository.AccountRepository
	syncService service.NotificationSyncService
	logger      *slog.Logger
	now         func() time.Time
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	SyncService service.NotificationSyncService
	Logger      *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		accountRepo: params.AccountRepo,
		syncService: params.SyncService,
		logger:      params.Logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListNotifications retrieves the notifications of the account owning the device.
func (s *notificationService) ListNotifications(ctx context.Context, deviceID string) ([]entity.Notification, error) {
	account, err := s.accountRepo.FindByDeviceID(ctx, deviceID)
	if err != nil {
		return nil, mapRepoError(err, "failed to get account")
	}

	return account.Notifications, nil
}

// GetNotification retrieves one notification.
func (s *notificationService) GetNotification(ctx context.Context, deviceID, notificationID string) (*entity.Notification, error) {
	account, err := s.accountRepo.FindByDeviceID(ctx, deviceID)
	if err != nil {
		return nil, mapRepoError(err, "failed to get account")
	}

	notification, ok := account.FindNotification(notificationID)
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrNotificationNotFound, "failed to get notification")
	}

	return notification, nil
}

// CreateNotification stores a notification and mirrors it remotely.
func (s *notificationService) CreateNotification(ctx context.Context, deviceID string, input *usecase.NotificationInput) (*entity.Notification, error) {
	if !s.syncService.Enabled() {
		return nil, errors.WithStack(domainerrors.ErrNotificationSyncDisabled)
	}

	now := s.now()
	notification := fromInput(input)
	notification.ID = uuid.New().String()
	notification.CreatedAt = now
	notification.UpdatedAt = now

	if err := notification.Validate(); err != nil {
		return nil, validationError(err)
	}

	account, err := s.accountRepo.PushNotification(ctx, deviceID, notification)
	if err != nil {
		return nil, mapRepoError(err, "failed to create notification")
	}

	if err := s.syncService.UpsertNotification(ctx, toSubscription(account.ID, notification)); err != nil {
		s.log(ctx).Warn("Notification saved but not mirrored",
			slog.String("key", entity.SyncKey(account.ID, notification.ID)),
			slog.Any("error", err),
		)

		return nil, err
	}

	return notification, nil
}

// UpdateNotification replaces a notification and mirrors it remotely.
func (s *notificationService) UpdateNotification(ctx context.Context, deviceID, notificationID string, input *usecase.NotificationInput) (*entity.Notification, error) {
	if !s.syncService.Enabled() {
		return nil, errors.WithStack(domainerrors.ErrNotificationSyncDisabled)
	}

	existing, err := s.GetNotification(ctx, deviceID, notificationID)
	if err != nil {
		return nil, err
	}

	notification := fromInput(input)
	notification.ID = notificationID
	notification.CreatedAt = existing.CreatedAt
	notification.UpdatedAt = s.now()

	if err := notification.Validate(); err != nil {
		return nil, validationError(err)
	}

	account, err := s.accountRepo.ReplaceNotification(ctx, deviceID, notification)
	if err != nil {
		return nil, mapRepoError(err, "failed to update notification")
	}

	if err := s.syncService.UpsertNotification(ctx, toSubscription(account.ID, notification)); err != nil {
		s.log(ctx).Warn("Notification updated but not mirrored",
			slog.String("key", entity.SyncKey(account.ID, notification.ID)),
			slog.Any("error", err),
		)

		return nil, err
	}

	return notification, nil
}

// DeleteNotification removes a notification and its remote mirror.
func (s *notificationService) DeleteNotification(ctx context.Context, deviceID, notificationID string) error {
	if !s.syncService.Enabled() {
		return errors.WithStack(domainerrors.ErrNotificationSyncDisabled)
	}

	account, err := s.accountRepo.PullNotification(ctx, deviceID, notificationID)
	if err != nil {
		return mapRepoError(err, "failed to delete notification")
	}

	key := entity.SyncKey(account.ID, notificationID)
	if err := s.syncService.DeleteNotification(ctx, key); err != nil {
		s.log(ctx).Warn("Notification deleted but mirror kept", slog.String("key", key), slog.Any("error", err))

		return err
	}

	return nil
}

func fromInput(input *usecase.NotificationInput) *entity.Notification {
	return &entity.Notification{
		LineID:       input.LineID,
		StopID:       input.StopID,
		Distance:     input.Distance,
		DistanceUnit: input.DistanceUnit,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		WeekDays:     input.WeekDays,
	}
}
