package models

import "time"

// Feedback is a placed student's write-up of their interview experience.
// Each student may submit at most one entry.
type Feedback struct {
	ID                 int64
	StudentID          int64
	StudentName        string
	Company            string
	Compensation       string
	Feedback           string
	InterviewQuestions string
	SubmittedAt        time.Time
}
