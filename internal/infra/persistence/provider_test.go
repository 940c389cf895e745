package persistence

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"accounts/config"
	"accounts/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewStore_FallsBackToMemory(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	result, err := NewStore(StoreParams{
		Lc:     lc,
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, result.AccountRepo.Create(ctx, entity.NewAccountForDevice("d1")))

	found, err := result.AccountRepo.FindByDeviceID(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, []string{"d1"}, found.DeviceIDs())
	assert.NotNil(t, result.TxManager)
}

func TestNewStore_EmptyMongoURI(t *testing.T) {
	result, err := NewStore(StoreParams{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{Mongo: &config.MongoConfig{}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	assert.NotNil(t, result.AccountRepo)
}
