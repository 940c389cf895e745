package memory

import (
	"context"
	"slices"
	"time"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// accountRepository implements the repository.AccountRepository interface.
type accountRepository struct {
	store *Store
	tx    *state // set when bound to a transaction; the store lock is then already held
	now   func() time.Time
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(store *Store) repository.AccountRepository {
	return &accountRepository{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (repo *accountRepository) run(ctx context.Context, fn func(s *state) error) error {
	if err := ctx.Err(); err != nil {
		return domainerrors.NewStorageError(err, "memory store operation aborted")
	}

	if repo.tx != nil {
		return fn(repo.tx)
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	return fn(repo.store.state)
}

// mutate applies fn to the account owning deviceID and returns a copy of the result.
func (repo *accountRepository) mutate(ctx context.Context, deviceID string, fn func(a *entity.Account) error) (*entity.Account, error) {
	var out *entity.Account
	err := repo.run(ctx, func(s *state) error {
		account := s.byDevice(deviceID)
		if account == nil {
			return repository.ErrAccountNotFound
		}
		if err := fn(account); err != nil {
			return err
		}
		account.UpdatedAt = repo.now()
		out = account.Clone()

		return nil
	})

	return out, err
}

// Create persists a new account after checking that none of its devices is already bound.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	if len(account.Devices) == 0 {
		return errors.New("account must have at least one device")
	}

	return repo.run(ctx, func(s *state) error {
		for _, id := range account.DeviceIDs() {
			if s.byDevice(id) != nil {
				return repository.ErrDuplicateAccount
			}
		}

		account.Normalize()
		now := repo.now()
		if account.CreatedAt.IsZero() {
			account.CreatedAt = now
		}
		account.UpdatedAt = now
		account.ID = bson.NewObjectID().Hex()

		s.insert(account.Clone())

		return nil
	})
}

// FindByDeviceID retrieves the account owning the device.
func (repo *accountRepository) FindByDeviceID(ctx context.Context, deviceID string) (*entity.Account, error) {
	var out *entity.Account
	err := repo.run(ctx, func(s *state) error {
		account := s.byDevice(deviceID)
		if account == nil {
			return repository.ErrAccountNotFound
		}
		out = account.Clone()

		return nil
	})

	return out, err
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
		return repo.FindByDeviceID(ctx, deviceID)
	}
	if err != nil {
		return nil, err
	}

	return account, nil
}

// FindByRole retrieves every account with the given role.
func (repo *accountRepository) FindByRole(ctx context.Context, role entity.Role) ([]*entity.Account, error) {
	return repo.filter(ctx, func(a *entity.Account) bool { return a.Role == role })
}

// List retrieves every account.
func (repo *accountRepository) List(ctx context.Context) ([]*entity.Account, error) {
	return repo.filter(ctx, func(*entity.Account) bool { return true })
}

func (repo *accountRepository) filter(ctx context.Context, keep func(*entity.Account) bool) ([]*entity.Account, error) {
	accounts := make([]*entity.Account, 0)
	err := repo.run(ctx, func(s *state) error {
		s.each(func(a *entity.Account) {
			if keep(a) {
				accounts = append(accounts, a.Clone())
			}
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return accounts, nil
}

// Update applies the non-nil patch fields.
func (repo *accountRepository) Update(ctx context.Context, deviceID string, patch *entity.AccountPatch) (*entity.Account, error) {
	return repo.mutate(ctx, deviceID, func(a *entity.Account) error {
		patch.Apply(a)

		return nil
	})
}

// DeleteByDeviceID removes the account owning the device.
func (repo *accountRepository) DeleteByDeviceID(ctx context.Context, deviceID string) (*entity.Account, error) {
	var out *entity.Account
	err := repo.run(ctx, func(s *state) error {
		account := s.byDevice(deviceID)
		if account == nil {
			return repository.ErrAccountNotFound
		}
		s.remove(account.ID)
		out = account

		return nil
	})

	return out, err
}

// PullDevice unbinds deviceID from the account owning both devices.
func (repo *accountRepository) PullDevice(ctx context.Context, ownerDeviceID, deviceID string) (*entity.Account, error) {
	return repo.mutate(ctx, ownerDeviceID, func(a *entity.Account) error {
		if !a.HasDevice(deviceID) {
			return repository.ErrAccountNotFound
		}
		a.Devices = slices.DeleteFunc(a.Devices, func(d entity.Device) bool { return d.DeviceID == deviceID })

		return nil
	})
}

// AddFavorite appends itemID to the selected favorite collection.
func (repo *accountRepository) AddFavorite(ctx context.Context, deviceID string, kind entity.FavoriteKind, itemID string) (*entity.Account, error) {
	return repo.mutate(ctx, deviceID, func(a *entity.Account) error {
		if kind == entity.FavoriteStops {
			a.FavoriteStops = append(a.FavoriteStops, itemID)
		} else {
			a.FavoriteLines = append(a.FavoriteLines, itemID)
		}

		return nil
	})
}

// RemoveFavorite removes every occurrence of itemID from the selected favorite collection.
func (repo *accountRepository) RemoveFavorite(ctx context.Context, deviceID string, kind entity.FavoriteKind, itemID string) (*entity.Account, error) {
	return repo.mutate(ctx, deviceID, func(a *entity.Account) error {
		match := func(v string) bool { return v == itemID }
		if kind == entity.FavoriteStops {
			a.FavoriteStops = slices.DeleteFunc(a.FavoriteStops, match)
		} else {
			a.FavoriteLines = slices.DeleteFunc(a.FavoriteLines, match)
		}

		return nil
	})
}

// PushNotification appends a notification to the account.
func (repo *accountRepository) PushNotification(ctx context.Context, deviceID string, notification *entity.Notification) (*entity.Account, error) {
	return repo.mutate(ctx, deviceID, func(a *entity.Account) error {
		a.Notifications = append(a.Notifications, notification.Clone())

		return nil
	})
}

// ReplaceNotification overwrites the notification with the same id.
func (repo *accountRepository) ReplaceNotification(ctx context.Context, deviceID string, notification *entity.Notification) (*entity.Account, error) {
	return repo.mutate(ctx, deviceID, func(a *entity.Account) error {
		existing, ok := a.FindNotification(notification.ID)
		if !ok {
			return repository.ErrNotificationNotFound
		}
		*existing = notification.Clone()

		return nil
	})
}

// PullNotification removes the notification with the given id.
func (repo *accountRepository) PullNotification(ctx context.Context, deviceID, notificationID string) (*entity.Account, error) {
	return repo.mutate(ctx, deviceID, func(a *entity.Account) error {
		if _, ok := a.FindNotification(notificationID); !ok {
			return repository.ErrNotificationNotFound
		}
		a.Notifications = slices.DeleteFunc(a.Notifications, func(n entity.Notification) bool {
			return n.ID == notificationID
		})

		return nil
	})
}
