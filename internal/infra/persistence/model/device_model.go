package model

// DeviceModel is a device embedded in an account document.
// devices.device_id carries a unique multikey index.
type DeviceModel struct {
	DeviceID string `bson:"device_id"`
	Name     string `bson:"name,omitempty"`
	Type     string `bson:"type,omitempty"`
}
