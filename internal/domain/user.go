package domain

import "time"

// Role enumerates account roles.
type Role string

const (
	RoleTenant   Role = "tenant"
	RoleLandlord Role = "landlord"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleTenant || r == RoleLandlord
}

// User is the domain model for tenant and landlord accounts.
// Emails are unique with exact-match (case-sensitive) comparison.
// IsApproved is meaningful only for tenants; landlords are approved on creation.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	IsApproved   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
