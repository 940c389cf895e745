package mongo

import (
	"slices"

	"accounts/internal/domain/entity"
	"accounts/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func toAccountDomain(data *model.AccountModel) *entity.Account {
	devices := make([]entity.Device, 0, len(data.Devices))
	for _, d := range data.Devices {
		devices = append(devices, entity.Device{DeviceID: d.DeviceID, Name: d.Name, Type: d.Type})
	}

	notifications := make([]entity.Notification, 0, len(data.Notifications))
	for i := range data.Notifications {
		notifications = append(notifications, toNotificationDomain(&data.Notifications[i]))
	}

	account := &entity.Account{
		ID:            data.ID.Hex(),
		Devices:       devices,
		FavoriteLines: slices.Clone(data.FavoriteLines),
		FavoriteStops: slices.Clone(data.FavoriteStops),
		Email:         data.Email,
		FirstName:     data.FirstName,
		LastName:      data.LastName,
		Avatar:        data.Avatar,
		Gender:        data.Gender,
		BirthDate:     data.BirthDate,
		Role:          entity.Role(data.Role),
		Notifications: notifications,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
	account.Normalize()

	return account
}

func fromAccountDomain(data *entity.Account) *model.AccountModel {
	devices := make([]model.DeviceModel, 0, len(data.Devices))
	for _, d := range data.Devices {
		devices = append(devices, model.DeviceModel{DeviceID: d.DeviceID, Name: d.Name, Type: d.Type})
	}

	notifications := make([]model.NotificationModel, 0, len(data.Notifications))
	for i := range data.Notifications {
		notifications = append(notifications, *fromNotificationDomain(&data.Notifications[i]))
	}

	accountM := &model.AccountModel{
		Devices:       devices,
		FavoriteLines: nonNil(data.FavoriteLines),
		FavoriteStops: nonNil(data.FavoriteStops),
		Email:         data.Email,
		FirstName:     data.FirstName,
		LastName:      data.LastName,
		Avatar:        data.Avatar,
		Gender:        data.Gender,
		BirthDate:     data.BirthDate,
		Role:          data.Role.String(),
		Notifications: notifications,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
	if id, err := bson.ObjectIDFromHex(data.ID); err == nil {
		accountM.ID = id
	}

	return accountM
}

func toNotificationDomain(data *model.NotificationModel) entity.Notification {
	return entity.Notification{
		ID:           data.ID,
		LineID:       data.LineID,
		StopID:       data.StopID,
		Distance:     data.Distance,
		DistanceUnit: entity.DistanceUnit(data.DistanceUnit),
		StartTime:    data.StartTime,
		EndTime:      data.EndTime,
		WeekDays:     slices.Clone(data.WeekDays),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	return &model.NotificationModel{
		ID:           data.ID,
		LineID:       data.LineID,
		StopID:       data.StopID,
		Distance:     data.Distance,
		DistanceUnit: string(data.DistanceUnit),
		StartTime:    data.StartTime,
		EndTime:      data.EndTime,
		WeekDays:     nonNil(data.WeekDays),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// nonNil keeps empty arrays from being stored as null, which $push rejects.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}
