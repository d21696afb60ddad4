package model

import "time"

// Role determines which screens and API endpoints a user can reach.
type Role string

const (
	// RoleCustomer is a regular GetWay rider logging journeys and posting.
	RoleCustomer Role = "customer"
	// RoleScientist accesses the analytics dashboard once approved.
	RoleScientist Role = "scientist"
	// RoleOwner administers an organization and approves scientists.
	RoleOwner Role = "owner"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleScientist, RoleOwner:
		return true
	}
	return false
}

// User is a GetWay account record as returned by the API.
type User struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Role           Role       `json:"role"`
	OrganizationID string     `json:"organization_id,omitempty"`
	IsApproved     bool       `json:"is_approved"`
	LastLogin      *time.Time `json:"last_login,omitempty"`
}

// IsOwner reports whether the user has the owner role.
func (u *User) IsOwner() bool {
	return u.Role == RoleOwner
}

// CanAccessData reports whether the user may reach the analytics data
// endpoints. Scientists need owner approval first; owners always can.
func (u *User) CanAccessData() bool {
	if u.Role == RoleOwner {
		return true
	}
	return u.Role == RoleScientist && u.IsApproved
}
