// Package entity contains the core business objects of the coffee shop.
package entity

import "slices"

// Role is the access level carried in an access token.
type Role string

const (
	// RoleManager may run management operations: menu, inventory, tables, refunds.
	RoleManager Role = "manager"
	// RoleCashier may take orders and payments.
	RoleCashier Role = "cashier"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a known value.
func (r Role) IsValid() bool {
	return r == RoleManager || r == RoleCashier
}

// Roles is a slice of Role.
type Roles []Role

// Contains checks if rs holds role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for token claims.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts claim values to Roles, dropping unknown ones.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		if role := Role(s); role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
