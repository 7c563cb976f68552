package models

import "time"

// Application records a student applying to a job. The applicant fields are
// copied from the profile at apply time so that later profile edits do not
// rewrite what was submitted.
type Application struct {
	ID             int64
	JobID          int64
	UserID         int64
	JobTitle       string
	ApplicantName  string
	ApplicantEmail string
	ApplicantPRN   string
	ResumePath     string
	ExtraFilePath  *string
	AppliedAt      time.Time
}
