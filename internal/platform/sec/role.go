// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
type UserRole string

const (
	// Store back-office access
	RoleAdmin UserRole = "admin"

	// Default role for shoppers created through registration
	RoleCliente UserRole = "cliente"
)

// Valid reports whether r is a known role.
func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleCliente
}
