package models

import "time"

// User represents a portal account. Students start with a minimal profile
// and fill in the academic fields later, so those are nullable.
type User struct {
	ID                    int64
	Username              string
	Password              string
	Name                  string
	Email                 string
	Year                  string
	Branch                string
	Division              string
	PRN                   string
	TenthPercentage       *float64
	TwelfthPercentage     *float64
	EngineeringPercentage *float64
	ActiveBacklogs        *int
	ResumePath            *string
	RoleType              RoleType
	ProfileComplete       bool
	Placed                bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// HasResume reports whether the user has uploaded a resume
func (u *User) HasResume() bool {
	return u.ResumePath != nil && *u.ResumePath != ""
}

// IsProfileComplete recomputes completeness from the current field values.
// Every field the application snapshot needs must be present, including the
// three academic percentages, the backlog count and an uploaded resume.
func (u *User) IsProfileComplete() bool {
	if u.Name == "" || u.Email == "" || u.Year == "" || u.Division == "" || u.Branch == "" {
		return false
	}
	if u.TenthPercentage == nil || u.TwelfthPercentage == nil || u.EngineeringPercentage == nil {
		return false
	}
	if u.ActiveBacklogs == nil {
		return false
	}
	return u.HasResume()
}
