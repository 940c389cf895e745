// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"encoding/base64"
	"log/slog"
	"strings"
	"time"

	deliverycontext "accounts/internal/delivery/context"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	tokenService service.TokenService
	tokenGuard   service.SyncTokenGuard
	qrService    service.QRCodeService
	syncService  service.NotificationSyncService
	logger       *slog.Logger
	now          func() time.Time
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	TokenService service.TokenService
	TokenGuard   service.SyncTokenGuard
	QRService    service.QRCodeService
	SyncService  service.NotificationSyncService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		tokenService: params.TokenService,
		tokenGuard:   params.TokenGuard,
		qrService:    params.QRService,
		syncService:  params.SyncService,
		logger:       params.Logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateAccount creates an account with role user.
func (srv *accountService) CreateAccount(ctx context.Context, input *usecase.CreateAccountInput) (*entity.Account, error) {
	account := &entity.Account{
		Devices:       input.Devices,
		FavoriteLines: input.FavoriteLines,
		FavoriteStops: input.FavoriteStops,
		Email:         input.Email,
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Avatar:        input.Avatar,
		Gender:        input.Gender,
		BirthDate:     input.BirthDate,
		Role:          entity.RoleUser,
	}
	account.Normalize()

	if err := account.Validate(); err != nil {
		return nil, validationError(err)
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		return nil, mapRepoError(err, "failed to create account")
	}

	srv.log(ctx).Info("Account created",
		slog.String("accountID", account.ID),
		slog.Any("devices", account.DeviceIDs()),
	)

	return account, nil
}

// GetAccount retrieves the account owning the device.
func (srv *accountService) GetAccount(ctx context.Context, deviceID string) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByDeviceID(ctx, deviceID)
	if err != nil {
		return nil, mapRepoError(err, "failed to get account")
	}

	return account, nil
}

// ListAccounts retrieves every account, optionally filtered by role.
func (srv *accountService) ListAccounts(ctx context.Context, role string) ([]*entity.Account, error) {
	if role == "" {
		accounts, err := srv.accountRepo.List(ctx)
		if err != nil {
			return nil, mapRepoError(err, "failed to list accounts")
		}

		return accounts, nil
	}

	r := entity.Role(role)
	if !r.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown role %q", role)
	}

	accounts, err := srv.accountRepo.FindByRole(ctx, r)
	if err != nil {
		return nil, mapRepoError(err, "failed to list accounts by role")
	}

	return accounts, nil
}

// UpdateAccount patches the profile of the account owning the device.
func (srv *accountService) UpdateAccount(ctx context.Context, principal entity.Principal, deviceID string, patch *entity.AccountPatch) (*entity.Account, error) {
	if !principal.CanManage(deviceID) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "cannot update another account")
	}

	if patch.Role != nil && principal.Role != entity.RoleOwner {
		srv.log(ctx).Debug("Ignoring role change from non-owner",
			slog.String("callerDeviceID", principal.DeviceID),
			slog.String("targetDeviceID", deviceID),
		)
		patch.Role = nil
	}

	if err := patch.Validate(); err != nil {
		return nil, validationError(err)
	}

	if patch.IsEmpty() {
		return srv.GetAccount(ctx, deviceID)
	}

	account, err := srv.accountRepo.Update(ctx, deviceID, patch)
	if err != nil {
		return nil, mapRepoError(err, "failed to update account")
	}

	return account, nil
}

// DeleteAccount deletes the account owning the device and its remote notification mirrors.
func (srv *accountService) DeleteAccount(ctx context.Context, deviceID string) (*entity.Account, error) {
	account, err := srv.accountRepo.DeleteByDeviceID(ctx, deviceID)
	if err != nil {
		return nil, mapRepoError(err, "failed to delete account")
	}

	srv.log(ctx).Info("Account deleted", slog.String("accountID", account.ID))
	removeMirrors(ctx, srv.log(ctx), srv.syncService, account)

	return account, nil
}

// MergeDevices replaces the accounts of both devices by their merge in one transaction.
// A device without an account joins as a fresh single-device account.
func (srv *accountService) MergeDevices(ctx context.Context, deviceID, otherDeviceID string) (*entity.Account, error) {
	first, err := findOptional(ctx, srv.accountRepo, deviceID)
	if err != nil {
		return nil, err
	}
	second, err := findOptional(ctx, srv.accountRepo, otherDeviceID)
	if err != nil {
		return nil, err
	}

	if first == nil && second == nil {
		return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "no account owns either device")
	}

	var merged *entity.Account
	var sources []*entity.Account

	// The closure may run more than once, so both accounts are read again inside it.
	err = srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		accounts := repos.NewAccountRepository()

		first, err := findOptional(txCtx, accounts, deviceID)
		if err != nil {
			return err
		}
		second, err := findOptional(txCtx, accounts, otherDeviceID)
		if err != nil {
			return err
		}
		if first == nil && second == nil {
			return errors.Wrap(domainerrors.ErrAccountNotFound, "no account owns either device")
		}

		primary, err := materialize(txCtx, accounts, first, deviceID)
		if err != nil {
			return err
		}
		secondary, err := materialize(txCtx, accounts, second, otherDeviceID)
		if err != nil {
			return err
		}

		if primary.ID == secondary.ID {
			return errors.Wrap(domainerrors.ErrSelfMerge, "devices already share an account")
		}

		result := MergeAccounts(primary, secondary, srv.now())

		if _, err := accounts.DeleteByDeviceID(txCtx, deviceID); err != nil {
			return mapRepoError(err, "failed to delete merged account")
		}
		if _, err := accounts.DeleteByDeviceID(txCtx, otherDeviceID); err != nil {
			return mapRepoError(err, "failed to delete merged account")
		}
		if err := accounts.Create(txCtx, result); err != nil {
			return mapRepoError(err, "failed to create merged account")
		}

		merged = result
		sources = []*entity.Account{primary, secondary}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Device merge aborted",
			slog.String("deviceID", deviceID),
			slog.String("otherDeviceID", otherDeviceID),
			slog.Any("error", err),
		)

		return nil, wrapTxError(err)
	}

	srv.log(ctx).Info("Devices merged",
		slog.String("accountID", merged.ID),
		slog.Any("devices", merged.DeviceIDs()),
	)
	rekeyMirrors(ctx, srv.log(ctx), srv.syncService, merged, sources...)

	return merged, nil
}

// findOptional returns nil when the device has no account.
func findOptional(ctx context.Context, accounts repository.AccountRepository, deviceID string) (*entity.Account, error) {
	if deviceID == "" {
		return nil, nil
	}

	account, err := accounts.FindByDeviceID(ctx, deviceID)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, mapRepoError(err, "failed to find account")
	}

	return account, nil
}

// materialize returns a copy of found, or creates a single-device account for deviceID.
func materialize(ctx context.Context, accounts repository.AccountRepository, found *entity.Account, deviceID string) (*entity.Account, error) {
	if found != nil {
		return found.Clone(), nil
	}

	if deviceID == "" {
		return nil, errors.Wrap(domainerrors.ErrDeviceIDRequired, "cannot merge an empty device id")
	}

	account := entity.NewAccountForDevice(deviceID)
	if err := accounts.Create(ctx, account); err != nil {
		return nil, mapRepoError(err, "failed to create account for device")
	}

	return account, nil
}

// wrapTxError keeps application errors and reports everything else as a failed transaction.
func wrapTxError(err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return errors.Wrap(domainerrors.ErrTransactionFailed, err.Error())
}

// AddDeviceWithToken consumes a sync token and merges the two devices it names.
// The token may also arrive as the scanned QR payload that carries it.
func (srv *accountService) AddDeviceWithToken(ctx context.Context, token string) (*entity.Account, error) {
	token, err := srv.resolveSyncToken(token)
	if err != nil {
		srv.log(ctx).Debug("Sync QR payload rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInvalidSyncToken, "sync QR payload is malformed")
	}

	claims, err := srv.tokenService.ValidateSyncToken(token)
	if err != nil {
		srv.log(ctx).Debug("Sync token rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInvalidSyncToken, "sync token validation failed")
	}

	ttl := srv.tokenService.GetSyncTokenDuration()
	if claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Sub(srv.now())
	}

	fresh, err := srv.tokenGuard.Consume(ctx, claims.ID, ttl)
	if err != nil {
		return nil, errors.Wrap(err, "failed to consume sync token")
	}
	if !fresh {
		return nil, errors.Wrap(domainerrors.ErrSyncTokenUsed, "sync token replayed")
	}

	return srv.MergeDevices(ctx, claims.DeviceID, claims.DeviceID2)
}

// resolveSyncToken unwraps a scanned QR payload and passes raw tokens through.
func (srv *accountService) resolveSyncToken(input string) (string, error) {
	if !strings.HasPrefix(strings.TrimSpace(input), "{") {
		return input, nil
	}

	return srv.qrService.ParseSyncQR(input)
}

// IssueSyncToken issues a single-use token pairing deviceID with otherDeviceID.
func (srv *accountService) IssueSyncToken(ctx context.Context, deviceID, otherDeviceID string) (*usecase.SyncToken, error) {
	if deviceID == "" || otherDeviceID == "" {
		return nil, errors.Wrap(domainerrors.ErrDeviceIDRequired, "both device ids are required")
	}
	if deviceID == otherDeviceID {
		return nil, errors.Wrap(domainerrors.ErrSelfMerge, "cannot pair a device with itself")
	}

	token, claims, err := srv.tokenService.GenerateSyncToken(deviceID, otherDeviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate sync token")
	}

	png, err := srv.qrService.GenerateSyncQR(token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render sync token")
	}

	srv.log(ctx).Info("Sync token issued",
		slog.String("deviceID", deviceID),
		slog.String("otherDeviceID", otherDeviceID),
		slog.String("tokenID", claims.ID),
	)

	return &usecase.SyncToken{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		QRCode:    base64.StdEncoding.EncodeToString(png),
	}, nil
}

// RemoveDevice unbinds deviceID from the account owning ownerDeviceID.
func (srv *accountService) RemoveDevice(ctx context.Context, ownerDeviceID, deviceID string) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByDeviceID(ctx, ownerDeviceID)
	if err != nil {
		return nil, mapRepoError(err, "failed to find account")
	}

	if !account.HasDevice(deviceID) {
		return nil, errors.Wrap(domainerrors.ErrDevicePairNotFound, "device is not bound to this account")
	}

	if len(account.Devices) == 1 {
		return srv.DeleteAccount(ctx, ownerDeviceID)
	}

	updated, err := srv.accountRepo.PullDevice(ctx, ownerDeviceID, deviceID)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(domainerrors.ErrDevicePairNotFound, "device is not bound to this account")
	}
	if err != nil {
		return nil, mapRepoError(err, "failed to remove device")
	}

	// A concurrent removal may have taken the other devices.
	if len(updated.Devices) == 0 {
		return srv.DeleteAccount(ctx, ownerDeviceID)
	}

	return updated, nil
}

// ToggleFavorite adds itemID to the selected favorites, or removes it when present.
// Two concurrent toggles of the same item may both add it.
func (srv *accountService) ToggleFavorite(ctx context.Context, deviceID string, kind entity.FavoriteKind, itemID string) (*entity.Account, error) {
	if !kind.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown favorite kind %q", kind)
	}
	if itemID == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "favorite id is required")
	}

	account, err := srv.accountRepo.GetOrCreateByDeviceID(ctx, deviceID)
	if err != nil {
		return nil, mapRepoError(err, "failed to get account")
	}

	if account.HasFavorite(kind, itemID) {
		account, err = srv.accountRepo.RemoveFavorite(ctx, deviceID, kind, itemID)
	} else {
		account, err = srv.accountRepo.AddFavorite(ctx, deviceID, kind, itemID)
	}
	if err != nil {
		return nil, mapRepoError(err, "failed to toggle favorite")
	}

	return account, nil
}
