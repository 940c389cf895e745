package mongo

import (
	"testing"
	"time"

	"accounts/internal/domain/entity"
	"accounts/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestAccountMapper_RoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	account := &entity.Account{
		ID:            bson.NewObjectID().Hex(),
		Devices:       []entity.Device{{DeviceID: "d1", Name: "phone", Type: "ios"}, {DeviceID: "d2"}},
		FavoriteLines: []string{"L1"},
		FavoriteStops: []string{"S1", "S2"},
		Email:         "rider@example.com",
		Role:          entity.RoleAdmin,
		Notifications: []entity.Notification{{
			ID:           "n1",
			LineID:       "L1",
			StopID:       "S1",
			Distance:     2,
			DistanceUnit: entity.DistanceMinutes,
			StartTime:    3600,
			EndTime:      7200,
			WeekDays:     []string{"monday"},
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	back := toAccountDomain(fromAccountDomain(account))
	assert.Equal(t, account, back)
}

func TestAccountMapper_NormalizesLegacyDocuments(t *testing.T) {
	accountM := &model.AccountModel{
		ID:      bson.NewObjectID(),
		Devices: []model.DeviceModel{{DeviceID: "d1"}},
	}

	account := toAccountDomain(accountM)
	require.NotNil(t, account)
	assert.Equal(t, entity.RoleUser, account.Role)
	assert.NotNil(t, account.FavoriteLines)
	assert.NotNil(t, account.FavoriteStops)
	assert.NotNil(t, account.Notifications)
}

func TestAccountMapper_EmptyIDIsLeftForTheStore(t *testing.T) {
	accountM := fromAccountDomain(entity.NewAccountForDevice("d1"))
	assert.True(t, accountM.ID.IsZero())
	assert.Equal(t, []string{}, accountM.FavoriteLines)
}
