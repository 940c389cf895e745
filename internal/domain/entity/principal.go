package entity

// Principal is the authenticated caller of a request, decoded from its bearer token.
type Principal struct {
	DeviceID string
	Role     Role
}

// IsSelf reports whether the principal addresses its own account.
func (p Principal) IsSelf(deviceID string) bool {
	return p.DeviceID != "" && p.DeviceID == deviceID
}

// CanManage reports whether the principal may read or modify the account addressed by deviceID.
func (p Principal) CanManage(deviceID string) bool {
	return p.IsSelf(deviceID) || p.Role.IsPrivileged()
}
