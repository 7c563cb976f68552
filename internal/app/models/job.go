package models

import "time"

// Job represents a placement posting created by an admin
type Job struct {
	ID               int64
	Title            string
	JobCode          string
	Company          string
	AboutCompany     string
	Description      string
	Location         string
	Compensation     string
	EligibleBranches []string
	MinTenth         float64
	MinTwelfth       float64
	MinEngineering   float64
	MaxBacklogs      int
	CreatedAt        time.Time
	ExpiresAt        time.Time
}

// IsExpired reports whether the posting has passed its expiration date
func (j *Job) IsExpired(now time.Time) bool {
	return !j.ExpiresAt.After(now)
}
