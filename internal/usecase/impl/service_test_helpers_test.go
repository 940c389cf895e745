package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"accounts/internal/domain/entity"
	"accounts/internal/domain/repository"

	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// seedAccount stores an account owning the given devices.
func seedAccount(t *testing.T, repo repository.AccountRepository, deviceIDs ...string) *entity.Account {
	t.Helper()

	account := entity.NewAccountForDevice(deviceIDs[0])
	for _, id := range deviceIDs[1:] {
		account.Devices = append(account.Devices, entity.Device{DeviceID: id})
	}
	require.NoError(t, repo.Create(context.Background(), account))

	return account
}

func newTestNotification(id string) entity.Notification {
	return entity.Notification{
		ID:           id,
		LineID:       "L1",
		StopID:       "S1",
		Distance:     500,
		DistanceUnit: entity.DistanceMeters,
		StartTime:    7 * 3600,
		EndTime:      9 * 3600,
		WeekDays:     []string{"monday", "friday"},
	}
}
