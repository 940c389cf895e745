// Package usecase defines the application's business operations.
package usecase

import (
	"context"
	"time"

	"accounts/internal/domain/entity"
)

// CreateAccountInput is the payload of a public account creation.
type CreateAccountInput struct {
	Devices       []entity.Device `json:"devices"`
	FavoriteLines []string        `json:"favorite_lines"`
	FavoriteStops []string        `json:"favorite_stops"`
	Email         string          `json:"email"`
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Avatar        string          `json:"avatar"`
	Gender        string          `json:"gender"`
	BirthDate     string          `json:"birth_date"`
}

// SyncToken is an issued device sync token with its QR rendering.
type SyncToken struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	QRCode    string    `json:"qr_code"` // Base64 encoded PNG.
}

// AccountUsecase defines the interface for account management use cases.
// Accounts are addressed by the id of any of their devices.
type AccountUsecase interface {
	// CreateAccount creates an account with role user.
	CreateAccount(ctx context.Context, input *CreateAccountInput) (*entity.Account, error)

	// GetAccount retrieves the account owning the device.
	GetAccount(ctx context.Context, deviceID string) (*entity.Account, error)

	// ListAccounts retrieves every account, or those with the given role when role is not empty.
	ListAccounts(ctx context.Context, role string) ([]*entity.Account, error)

	// UpdateAccount patches the profile of the account owning the device. The role field
	// is ignored unless the caller is an owner.
	UpdateAccount(ctx context.Context, principal entity.Principal, deviceID string, patch *entity.AccountPatch) (*entity.Account, error)

	// DeleteAccount deletes the account owning the device and returns it.
	DeleteAccount(ctx context.Context, deviceID string) (*entity.Account, error)

	// MergeDevices atomically replaces the accounts of both devices by their merge.
	MergeDevices(ctx context.Context, deviceID, otherDeviceID string) (*entity.Account, error)

	// AddDeviceWithToken consumes a sync token and merges the two devices it names.
	AddDeviceWithToken(ctx context.Context, token string) (*entity.Account, error)

	// IssueSyncToken issues a single-use token pairing deviceID with otherDeviceID.
	IssueSyncToken(ctx context.Context, deviceID, otherDeviceID string) (*SyncToken, error)

	// RemoveDevice unbinds deviceID from the account owning ownerDeviceID. The account is
	// deleted when it would be left without devices.
	RemoveDevice(ctx context.Context, ownerDeviceID, deviceID string) (*entity.Account, error)

	// ToggleFavorite adds itemID to the selected favorites, or removes it when present.
	ToggleFavorite(ctx context.Context, deviceID string, kind entity.FavoriteKind, itemID string) (*entity.Account, error)
}
