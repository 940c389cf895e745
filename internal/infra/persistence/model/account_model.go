// Package model holds the document shapes persisted by the storage layer.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// AccountCollection is the default collection holding account documents.
const AccountCollection = "accounts"

// AccountModel is the stored shape of an account document. Devices and
// notifications are embedded arrays.
type AccountModel struct {
	ID            bson.ObjectID       `bson:"_id,omitempty"`
	Devices       []DeviceModel       `bson:"devices"`
	FavoriteLines []string            `bson:"favorite_lines"`
	FavoriteStops []string            `bson:"favorite_stops"`
	Email         string              `bson:"email,omitempty"`
	FirstName     string              `bson:"first_name,omitempty"`
	LastName      string              `bson:"last_name,omitempty"`
	Avatar        string              `bson:"avatar,omitempty"`
	Gender        string              `bson:"gender,omitempty"`
	BirthDate     string              `bson:"birth_date,omitempty"`
	Role          string              `bson:"role"`
	Notifications []NotificationModel `bson:"notifications"`
	CreatedAt     time.Time           `bson:"created_at"`
	UpdatedAt     time.Time           `bson:"updated_at"`
}
