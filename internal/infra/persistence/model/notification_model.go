package model

import "time"

// NotificationModel is a smart notification subscription embedded in an account document.
type NotificationModel struct {
	ID           string    `bson:"id"`
	LineID       string    `bson:"line_id"`
	StopID       string    `bson:"stop_id"`
	Distance     float64   `bson:"distance"`
	DistanceUnit string    `bson:"distance_unit"`
	StartTime    int       `bson:"start_time"`
	EndTime      int       `bson:"end_time"`
	WeekDays     []string  `bson:"week_days"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}
