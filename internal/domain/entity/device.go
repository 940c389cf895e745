// Package entity contains the core business objects of the project.
package entity

// Device is a client identifier bound to exactly one account.
// Devices are only ever persisted embedded in their owning Account.
type Device struct {
	DeviceID string `json:"device_id" validate:"required"` // Identifier reported by the client app.
	Name     string `json:"name,omitempty"`                 // Human readable device name.
	Type     string `json:"type,omitempty"`                 // Device kind, e.g. "ios", "android", "web".
}

// DeviceIDs returns the identifiers of the given devices in order.
func DeviceIDs(devices []Device) []string {
	ids := make([]string, 0, len(devices))
	for _, d := range devices {
		ids = append(ids, d.DeviceID)
	}

	return ids
}
