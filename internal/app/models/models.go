// Package models contains the database entities of the placement portal.
package models

// RoleType represents the authorization role of a user
type RoleType string

const (
	RoleStudent RoleType = "STUDENT"
	RoleAdmin   RoleType = "ADMIN"
)

// IsValid checks whether the role is one of the known values
func (r RoleType) IsValid() bool {
	return r == RoleStudent || r == RoleAdmin
}
