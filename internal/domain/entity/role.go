// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role an account can have in the system.
type Role string

const (
	// RoleOwner can manage every account, including role changes.
	RoleOwner Role = "owner"
	// RoleAdmin can manage every account except role changes.
	RoleAdmin Role = "admin"
	// RoleUser can only manage its own account.
	RoleUser Role = "user"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleUser:
		return true
	default:
		return false
	}
}

// IsPrivileged reports whether the role may act on accounts it does not own.
func (r Role) IsPrivileged() bool {
	return r == RoleOwner || r == RoleAdmin
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// RoleFromString converts a string to a Role, falling back to RoleUser for unknown values.
func RoleFromString(s string) Role {
	role := Role(s)
	if role.IsValid() {
		return role
	}

	return RoleUser
}
