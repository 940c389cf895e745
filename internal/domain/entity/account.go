// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"
)

// Account is the root aggregate: it owns one or more devices, the favorite lines and stops,
// and the smart notification subscriptions of a rider.
type Account struct {
	ID            string         `json:"id"`                                                  // Store assigned identifier.
	Devices       []Device       `json:"devices" validate:"required,min=1,unique=DeviceID,dive"` // At least one device; device ids are unique.
	FavoriteLines []string       `json:"favorite_lines"`                                      // Favorite line identifiers.
	FavoriteStops []string       `json:"favorite_stops"`                                      // Favorite stop identifiers.
	Email         string         `json:"email,omitempty" validate:"omitempty,email"`
	FirstName     string         `json:"first_name,omitempty"`
	LastName      string         `json:"last_name,omitempty"`
	Avatar        string         `json:"avatar,omitempty"`
	Gender        string         `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	BirthDate     string         `json:"birth_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Role          Role           `json:"role" validate:"omitempty,oneof=owner admin user"`
	Notifications []Notification `json:"notifications"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// NewAccountForDevice builds a fresh single-device account for a device that has no account yet.
func NewAccountForDevice(deviceID string) *Account {
	return &Account{
		Devices:       []Device{{DeviceID: deviceID}},
		FavoriteLines: []string{},
		FavoriteStops: []string{},
		Role:          RoleUser,
		Notifications: []Notification{},
	}
}

// Validate checks the structural invariants of the account.
func (a *Account) Validate() error {
	return validateStruct(a)
}

// DeviceIDs returns the identifiers of all devices bound to the account.
func (a *Account) DeviceIDs() []string {
	return DeviceIDs(a.Devices)
}

// HasDevice reports whether the device is bound to the account.
func (a *Account) HasDevice(deviceID string) bool {
	return slices.ContainsFunc(a.Devices, func(d Device) bool { return d.DeviceID == deviceID })
}

// Favorites returns the favorite collection selected by kind.
func (a *Account) Favorites(kind FavoriteKind) []string {
	if kind == FavoriteStops {
		return a.FavoriteStops
	}

	return a.FavoriteLines
}

// HasFavorite reports whether itemID is in the favorite collection selected by kind.
func (a *Account) HasFavorite(kind FavoriteKind, itemID string) bool {
	return slices.Contains(a.Favorites(kind), itemID)
}

// FindNotification returns the notification with the given id, if any.
func (a *Account) FindNotification(notificationID string) (*Notification, bool) {
	for i := range a.Notifications {
		if a.Notifications[i].ID == notificationID {
			return &a.Notifications[i], true
		}
	}

	return nil, false
}

// Normalize replaces nil collections with empty ones and applies the default role.
func (a *Account) Normalize() {
	if a.FavoriteLines == nil {
		a.FavoriteLines = []string{}
	}
	if a.FavoriteStops == nil {
		a.FavoriteStops = []string{}
	}
	if a.Notifications == nil {
		a.Notifications = []Notification{}
	}
	if a.Role == "" {
		a.Role = RoleUser
	}
}

// Clone returns a deep copy of the account.
func (a *Account) Clone() *Account {
	if a == nil {
		return nil
	}

	clone := *a
	clone.Devices = slices.Clone(a.Devices)
	clone.FavoriteLines = slices.Clone(a.FavoriteLines)
	clone.FavoriteStops = slices.Clone(a.FavoriteStops)
	clone.Notifications = make([]Notification, len(a.Notifications))
	for i, n := range a.Notifications {
		clone.Notifications[i] = n.Clone()
	}

	return &clone
}

// AccountPatch holds the profile fields of an account update. Nil fields are left untouched.
type AccountPatch struct {
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Avatar    *string `json:"avatar,omitempty"`
	Gender    *string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	BirthDate *string `json:"birth_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Role      *Role   `json:"role,omitempty" validate:"omitempty,oneof=owner admin user"`
}

// Validate checks the patch field formats.
func (p *AccountPatch) Validate() error {
	return validateStruct(p)
}

// IsEmpty reports whether the patch changes nothing.
func (p *AccountPatch) IsEmpty() bool {
	return p.Email == nil && p.FirstName == nil && p.LastName == nil && p.Avatar == nil &&
		p.Gender == nil && p.BirthDate == nil && p.Role == nil
}

// Apply copies the non-nil patch fields onto the account.
func (p *AccountPatch) Apply(a *Account) {
	if p.Email != nil {
		a.Email = *p.Email
	}
	if p.FirstName != nil {
		a.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		a.LastName = *p.LastName
	}
	if p.Avatar != nil {
		a.Avatar = *p.Avatar
	}
	if p.Gender != nil {
		a.Gender = *p.Gender
	}
	if p.BirthDate != nil {
		a.BirthDate = *p.BirthDate
	}
	if p.Role != nil {
		a.Role = *p.Role
	}
}
