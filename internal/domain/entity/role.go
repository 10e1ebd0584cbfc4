// Package entity contains the core business objects of the storefront.
package entity

import "slices"

// Role is a permission carried in an access token.
type Role string

const (
	RoleCustomer Role = "customer"
	// RoleAdmin may edit prices, stock and settings, and move orders between statuses.
	RoleAdmin Role = "admin"
)

var knownRoles = []Role{RoleCustomer, RoleAdmin}

func (r Role) String() string {
	return string(r)
}

// Roles is the set of roles granted to one caller.
type Roles []Role

// Contains reports whether role was granted.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// RolesFromStrings keeps only the token claims that name a known role.
func RolesFromStrings(claims []string) Roles {
	var granted Roles
	for _, claim := range claims {
		if role := Role(claim); slices.Contains(knownRoles, role) && !granted.Contains(role) {
			granted = append(granted, role)
		}
	}

	return granted
}
