package memory

import (
	"context"
	"sync"
	"testing"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccount(deviceIDs ...string) *entity.Account {
	account := entity.NewAccountForDevice(deviceIDs[0])
	for _, id := range deviceIDs[1:] {
		account.Devices = append(account.Devices, entity.Device{DeviceID: id})
	}

	return account
}

func TestAccountRepository_CreateAssignsIDAndTimestamps(t *testing.T) {
	repo := NewAccountRepository(NewStore())
	ctx := context.Background()

	account := newAccount("d1")
	require.NoError(t, repo.Create(ctx, account))

	assert.NotEmpty(t, account.ID)
	assert.False(t, account.CreatedAt.IsZero())
	assert.Equal(t, entity.RoleUser, account.Role)

	found, err := repo.FindByDeviceID(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, account.ID, found.ID)
}

func TestAccountRepository_DeviceExclusivity(t *testing.T) {
	repo := NewAccountRepository(NewStore())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newAccount("d1", "d2")))

	err := repo.Create(ctx, newAccount("d3", "d2"))
	assert.ErrorIs(t, err, repository.ErrDuplicateAccount)

	accounts, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}

func TestAccountRepository_ConcurrentCreateSameDevice(t *testing.T) {
	repo := NewAccountRepository(NewStore())
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.Create(ctx, newAccount("shared"))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, repository.ErrDuplicateAccount)
		}
	}
	assert.Equal(t, 1, succeeded)
}

func TestAccountRepository_GetOrCreateByDeviceID(t *testing.T) {
	repo := NewAccountRepository(NewStore())
	ctx := context.Background()

	created, err := repo.GetOrCreateByDeviceID(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, []string{"d1"}, created.DeviceIDs())

	again, err := repo.GetOrCreateByDeviceID(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
}

func TestAccountRepository_FindByRole(t *testing.T) {
	repo := NewAccountRepository(NewStore())
	ctx := context.Background()

	admin := newAccount("admin-device")
	admin.Role = entity.RoleAdmin
	require.NoError(t, repo.Create(ctx, admin))
	require.NoError(t, repo.Create(ctx, newAccount("user-device")))

	admins, err := repo.FindByRole(ctx, entity.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, admin.ID, admins[0].ID)

	owners, err := repo.FindByRole(ctx, entity.RoleOwner)
	require.NoError(t, err)
	assert.Empty(t, owners)
}

func TestAccountRepository_UpdateAndDelete(t *testing.T) {
	repo := NewAccountRepository(NewStore())
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newAccount("d1")))

	name := "Ada"
	updated, err := repo.Update(ctx, "d1", &entity.AccountPatch{FirstName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Ada", updated.FirstName)

	deleted, err := repo.DeleteByDeviceID(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, updated.ID, deleted.ID)

	_, err = repo.FindByDeviceID(ctx, "d1")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)

	_, err = repo.DeleteByDeviceID(ctx, "d1")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestAccountRepository_PullDevice(t *testing.T) {
	repo := NewAccountRepository(NewStore())
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newAccount("d1", "d2")))
	require.NoError(t, repo.Create(ctx, newAccount("d3")))

	t.Run("device of another account", func(t *testing.T) {
		_, err := repo.PullDevice(ctx, "d1", "d3")
		assert.ErrorIs(t, err, repository.ErrAccountNotFound)
	})

	t.Run("owned device", func(t *testing.T) {
		account, err := repo.PullDevice(ctx, "d1", "d2")
		require.NoError(t, err)
		assert.Equal(t, []string{"d1"}, account.DeviceIDs())

		_, err = repo.FindByDeviceID(ctx, "d2")
		assert.ErrorIs(t, err, repository.ErrAccountNotFound)
	})
}

func TestAccountRepository_FavoritesArePushedAndPulled(t *testing.T) {
	repo := NewAccountRepository(NewStore())
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newAccount("d1")))

	// Two adds that raced past the membership check store the item twice;
	// a single remove pulls every occurrence.
	_, err := repo.AddFavorite(ctx, "d1", entity.FavoriteLines, "L1")
	require.NoError(t, err)
	account, err := repo.AddFavorite(ctx, "d1", entity.FavoriteLines, "L1")
	require.NoError(t, err)
	assert.Equal(t, []string{"L1", "L1"}, account.FavoriteLines)

	account, err = repo.RemoveFavorite(ctx, "d1", entity.FavoriteLines, "L1")
	require.NoError(t, err)
	assert.Empty(t, account.FavoriteLines)

	account, err = repo.AddFavorite(ctx, "d1", entity.FavoriteStops, "S1")
	require.NoError(t, err)
	assert.Equal(t, []string{"S1"}, account.FavoriteStops)
	assert.Empty(t, account.FavoriteLines)
}

func TestAccountRepository_Notifications(t *testing.T) {
	repo := NewAccountRepository(NewStore())
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newAccount("d1")))

	notification := &entity.Notification{
		ID: "n1", LineID: "L1", StopID: "S1", Distance: 1, DistanceUnit: entity.DistanceKilometers,
		StartTime: 0, EndTime: 60, WeekDays: []string{"monday"},
	}

	account, err := repo.PushNotification(ctx, "d1", notification)
	require.NoError(t, err)
	require.Len(t, account.Notifications, 1)

	notification.Distance = 5
	account, err = repo.ReplaceNotification(ctx, "d1", notification)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, account.Notifications[0].Distance, 0)

	_, err = repo.ReplaceNotification(ctx, "d1", &entity.Notification{ID: "missing"})
	assert.ErrorIs(t, err, repository.ErrNotificationNotFound)

	_, err = repo.PullNotification(ctx, "unknown", "n1")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)

	account, err = repo.PullNotification(ctx, "d1", "n1")
	require.NoError(t, err)
	assert.Empty(t, account.Notifications)

	_, err = repo.PullNotification(ctx, "d1", "n1")
	assert.ErrorIs(t, err, repository.ErrNotificationNotFound)
}

func TestAccountRepository_ReturnsCopies(t *testing.T) {
	repo := NewAccountRepository(NewStore())
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newAccount("d1")))

	account, err := repo.FindByDeviceID(ctx, "d1")
	require.NoError(t, err)
	account.Devices = append(account.Devices, entity.Device{DeviceID: "d2"})

	_, err = repo.FindByDeviceID(ctx, "d2")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestAccountRepository_CanceledContext(t *testing.T) {
	repo := NewAccountRepository(NewStore())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.FindByDeviceID(ctx, "d1")

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "STORAGE_ERROR", appErr.ErrorCode())
}
