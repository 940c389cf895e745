package mongo

import (
	"context"
	"time"

	"accounts/internal/domain/entity"
	"accounts/internal/domain/repository"
	"accounts/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// accountRepository implements the repository.AccountRepository interface.
// Transactions are carried by ctx, so the same instance serves inside and outside them.
type accountRepository struct {
	gateway *Gateway[model.AccountModel]
	now     func() time.Time
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(store *Store) repository.AccountRepository {
	return newAccountRepository(NewGateway[model.AccountModel](store.Collection()))
}

func newAccountRepository(gateway *Gateway[model.AccountModel]) *accountRepository {
	return &accountRepository{
		gateway: gateway,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func byDevice(deviceID string) bson.M {
	return bson.M{"devices.device_id": deviceID}
}

// Create persists a new account after checking that none of its devices is already bound.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	if len(account.Devices) == 0 {
		return errors.New("account must have at least one device")
	}

	account.Normalize()
	now := repo.now()
	if account.CreatedAt.IsZero() {
		account.CreatedAt = now
	}
	account.UpdatedAt = now

	anyDevice := make(bson.A, 0, len(account.Devices))
	for _, id := range account.DeviceIDs() {
		anyDevice = append(anyDevice, byDevice(id))
	}

	accountM := fromAccountDomain(account)
	accountM.ID = bson.NilObjectID

	id, err := repo.gateway.CreateUnique(ctx, accountM, bson.M{"$or": anyDevice})
	if err != nil {
		if errors.Is(err, ErrDocumentConflict) {
			return repository.ErrDuplicateAccount
		}

		return errors.Wrap(err, "failed to create account")
	}

	account.ID = id.Hex()

	return nil
}

// FindByDeviceID retrieves the account owning the device.
func (repo *accountRepository) FindByDeviceID(ctx context.Context, deviceID string) (*entity.Account, error) {
	accountM, err := repo.gateway.FindOne(ctx, byDevice(deviceID))
	if err != nil {
		return nil, repo.translate(err, "failed to find account by device")
	}

	return toAccountDomain(accountM), nil
}

// GetOrCreateByDeviceID returns the account owning the device, creating it when absent.
func (repo *accountRepository) GetOrCreateByDeviceID(ctx context.Context, deviceID string) (*entity.Account, error) {
	account, err := repo.FindByDeviceID(ctx, deviceID)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, err
	}

	account = entity.NewAccountForDevice(deviceID)
	err = repo.Create(ctx, account)
	if errors.Is(err, repository.ErrDuplicateAccount) {
		// Lost the race against a concurrent creator.
		return repo.FindByDeviceID(ctx, deviceID)
	}
	if err != nil {
		return nil, err
	}

	return account, nil
}

// FindByRole retrieves every account with the given role.
func (repo *accountRepository) FindByRole(ctx context.Context, role entity.Role) ([]*entity.Account, error) {
	filter := bson.M{"role": role.String()}
	if role == entity.RoleUser {
		// Documents without a role default to user.
		filter = bson.M{"role": bson.M{"$in": bson.A{entity.RoleUser.String(), "", nil}}}
	}

	return repo.find(ctx, filter)
}

// List retrieves every account.
func (repo *accountRepository) List(ctx context.Context) ([]*entity.Account, error) {
	return repo.find(ctx, bson.M{})
}

func (repo *accountRepository) find(ctx context.Context, filter bson.M) ([]*entity.Account, error) {
	accountModels, err := repo.gateway.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	accounts := make([]*entity.Account, 0, len(accountModels))
	for _, accountM := range accountModels {
		accounts = append(accounts, toAccountDomain(accountM))
	}

	return accounts, nil
}

// Update applies the non-nil patch fields.
func (repo *accountRepository) Update(ctx context.Context, deviceID string, patch *entity.AccountPatch) (*entity.Account, error) {
	set := bson.M{"updated_at": repo.now()}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.FirstName != nil {
		set["first_name"] = *patch.FirstName
	}
	if patch.LastName != nil {
		set["last_name"] = *patch.LastName
	}
	if patch.Avatar != nil {
		set["avatar"] = *patch.Avatar
	}
	if patch.Gender != nil {
		set["gender"] = *patch.Gender
	}
	if patch.BirthDate != nil {
		set["birth_date"] = *patch.BirthDate
	}
	if patch.Role != nil {
		set["role"] = patch.Role.String()
	}

	return repo.update(ctx, byDevice(deviceID), bson.M{"$set": set}, "failed to update account")
}

// DeleteByDeviceID removes the account owning the device.
func (repo *accountRepository) DeleteByDeviceID(ctx context.Context, deviceID string) (*entity.Account, error) {
	accountM, err := repo.gateway.DeleteOne(ctx, byDevice(deviceID))
	if err != nil {
		return nil, repo.translate(err, "failed to delete account")
	}

	return toAccountDomain(accountM), nil
}

// PullDevice unbinds deviceID from the account owning both devices.
func (repo *accountRepository) PullDevice(ctx context.Context, ownerDeviceID, deviceID string) (*entity.Account, error) {
	filter := bson.M{"$and": bson.A{byDevice(ownerDeviceID), byDevice(deviceID)}}
	update := bson.M{
		"$pull": bson.M{"devices": bson.M{"device_id": deviceID}},
		"$set":  bson.M{"updated_at": repo.now()},
	}

	return repo.update(ctx, filter, update, "failed to remove device")
}

// AddFavorite appends itemID to the selected favorite collection.
func (repo *accountRepository) AddFavorite(ctx context.Context, deviceID string, kind entity.FavoriteKind, itemID string) (*entity.Account, error) {
	update := bson.M{
		"$push": bson.M{kind.Field(): itemID},
		"$set":  bson.M{"updated_at": repo.now()},
	}

	return repo.update(ctx, byDevice(deviceID), update, "failed to add favorite")
}

// RemoveFavorite removes itemID from the selected favorite collection.
func (repo *accountRepository) RemoveFavorite(ctx context.Context, deviceID string, kind entity.FavoriteKind, itemID string) (*entity.Account, error) {
	update := bson.M{
		"$pull": bson.M{kind.Field(): itemID},
		"$set":  bson.M{"updated_at": repo.now()},
	}

	return repo.update(ctx, byDevice(deviceID), update, "failed to remove favorite")
}

// PushNotification appends a notification to the account.
func (repo *accountRepository) PushNotification(ctx context.Context, deviceID string, notification *entity.Notification) (*entity.Account, error) {
	update := bson.M{
		"$push": bson.M{"notifications": fromNotificationDomain(notification)},
		"$set":  bson.M{"updated_at": repo.now()},
	}

	return repo.update(ctx, byDevice(deviceID), update, "failed to add notification")
}

// ReplaceNotification overwrites the notification with the same id.
func (repo *accountRepository) ReplaceNotification(ctx context.Context, deviceID string, notification *entity.Notification) (*entity.Account, error) {
	// The filter spans two arrays, so the bare positional $ could resolve against devices.
	filter := bson.M{"devices.device_id": deviceID, "notifications.id": notification.ID}
	update := bson.M{"$set": bson.M{
		"notifications.$[n]": fromNotificationDomain(notification),
		"updated_at":         repo.now(),
	}}

	account, err := repo.update(ctx, filter, update, "failed to update notification",
		bson.M{"n.id": notification.ID})
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, repo.notificationMiss(ctx, deviceID)
	}

	return account, err
}

// PullNotification removes the notification with the given id.
func (repo *accountRepository) PullNotification(ctx context.Context, deviceID, notificationID string) (*entity.Account, error) {
	filter := bson.M{"devices.device_id": deviceID, "notifications.id": notificationID}
	update := bson.M{
		"$pull": bson.M{"notifications": bson.M{"id": notificationID}},
		"$set":  bson.M{"updated_at": repo.now()},
	}

	account, err := repo.update(ctx, filter, update, "failed to delete notification")
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, repo.notificationMiss(ctx, deviceID)
	}

	return account, err
}

// notificationMiss tells a missing account apart from a missing notification.
func (repo *accountRepository) notificationMiss(ctx context.Context, deviceID string) error {
	if _, err := repo.FindByDeviceID(ctx, deviceID); err != nil {
		return err
	}

	return repository.ErrNotificationNotFound
}

func (repo *accountRepository) update(ctx context.Context, filter, update bson.M, message string, arrayFilters ...any) (*entity.Account, error) {
	accountM, err := repo.gateway.UpdateOne(ctx, filter, update, true, arrayFilters...)
	if err != nil {
		return nil, repo.translate(err, message)
	}

	return toAccountDomain(accountM), nil
}

func (repo *accountRepository) translate(err error, message string) error {
	switch {
	case errors.Is(err, ErrDocumentNotFound):
		return repository.ErrAccountNotFound
	case errors.Is(err, ErrDocumentConflict):
		return repository.ErrDuplicateAccount
	default:
		return errors.Wrap(err, message)
	}
}
