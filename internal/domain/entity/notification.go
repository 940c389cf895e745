// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"
)

// SecondsPerDay bounds the active window of a notification.
const SecondsPerDay = 86400

// DistanceUnit is the unit of a notification proximity threshold.
type DistanceUnit string

const (
	DistanceKilometers DistanceUnit = "km"
	DistanceMeters     DistanceUnit = "m"
	DistanceMinutes    DistanceUnit = "min"
)

// WeekDays lists the accepted week day names.
//
//nolint:gochecknoglobals
var WeekDays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// Notification is a smart notification subscription owned by an account. It fires when a vehicle of
// LineID is within Distance of StopID during [StartTime, EndTime) on one of WeekDays.
type Notification struct {
	ID           string       `json:"id"`                                                                        // Notification identifier (uuid).
	LineID       string       `json:"line_id" validate:"required"`                                               // Target line or pattern.
	StopID       string       `json:"stop_id" validate:"required"`                                               // Target stop.
	Distance     float64      `json:"distance" validate:"gt=0"`                                                  // Proximity threshold.
	DistanceUnit DistanceUnit `json:"distance_unit" validate:"required,oneof=km m min"`                          // Unit of Distance.
	StartTime    int          `json:"start_time" validate:"min=0,max=86400"`                                     // Window start, seconds of day.
	EndTime      int          `json:"end_time" validate:"min=0,max=86400,gtfield=StartTime"`                     // Window end, seconds of day.
	WeekDays     []string     `json:"week_days" validate:"required,min=1,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Validate checks the notification ranges, enums and the window ordering.
func (n *Notification) Validate() error {
	return validateStruct(n)
}

// Clone returns a deep copy of the notification.
func (n Notification) Clone() Notification {
	n.WeekDays = slices.Clone(n.WeekDays)

	return n
}

// SyncKey is the key of the notification mirror on the external subscription service.
func SyncKey(accountID, notificationID string) string {
	return accountID + ":" + notificationID
}
