// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"accounts/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for account persistence.
var (
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateAccount is returned when one of the proposed devices is already bound to an account.
	ErrDuplicateAccount = errors.New("device already bound to an account")
	// ErrNotificationNotFound is returned when the account has no notification with the given id.
	ErrNotificationNotFound = errors.New("notification not found")
)

// AccountRepository defines the interface for account-related database operations.
// Accounts are addressed by any of their device ids; a device id belongs to at most one account.
type AccountRepository interface {
	// Create persists a new account. It fails with ErrDuplicateAccount when any of the
	// account's device ids is already bound to another account. ID and timestamps are assigned.
	Create(ctx context.Context, account *entity.Account) error

	// FindByDeviceID retrieves the account owning the device.
	FindByDeviceID(ctx context.Context, deviceID string) (*entity.Account, error)

	// GetOrCreateByDeviceID returns the account owning the device, creating a single-device
	// account first when none exists.
	GetOrCreateByDeviceID(ctx context.Context, deviceID string) (*entity.Account, error)

	// FindByRole retrieves every account with the given role.
	FindByRole(ctx context.Context, role entity.Role) ([]*entity.Account, error)

	// List retrieves every account.
	List(ctx context.Context) ([]*entity.Account, error)

	// Update applies the non-nil patch fields to the account owning the device.
	Update(ctx context.Context, deviceID string, patch *entity.AccountPatch) (*entity.Account, error)

	// DeleteByDeviceID removes the account owning the device and returns it.
	DeleteByDeviceID(ctx context.Context, deviceID string) (*entity.Account, error)

	// PullDevice unbinds deviceID from the account that owns both ownerDeviceID and deviceID.
	PullDevice(ctx context.Context, ownerDeviceID, deviceID string) (*entity.Account, error)

	// AddFavorite appends itemID to the favorite collection selected by kind.
	AddFavorite(ctx context.Context, deviceID string, kind entity.FavoriteKind, itemID string) (*entity.Account, error)

	// RemoveFavorite removes every occurrence of itemID from the favorite collection selected by kind.
	RemoveFavorite(ctx context.Context, deviceID string, kind entity.FavoriteKind, itemID string) (*entity.Account, error)

	// PushNotification appends a notification to the account owning the device.
	PushNotification(ctx context.Context, deviceID string, notification *entity.Notification) (*entity.Account, error)

	// ReplaceNotification overwrites the notification with the same id.
	ReplaceNotification(ctx context.Context, deviceID string, notification *entity.Notification) (*entity.Account, error)

	// PullNotification removes the notification with the given id.
	PullNotification(ctx context.Context, deviceID, notificationID string) (*entity.Account, error)
}
