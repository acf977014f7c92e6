// Copyright (c) 2026 Herbario. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
type UserRole string

const (
	// Unrestricted system access
	RoleAdmin UserRole = "admin"

	// Determines taxa and moves classifications through their lifecycle
	RoleLaboratorista UserRole = "laboratorista"

	// Registers incoming packages and samples
	RoleRecepcionista UserRole = "recepcionista"

	// Read-only access to dashboards
	RoleConsulta UserRole = "consulta"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {
	switch r {
	case RoleAdmin:
		return 40
	case RoleLaboratorista:
		return 30
	case RoleRecepcionista:
		return 20
	case RoleConsulta:
		return 10
	default:
		return 0
	}
}
