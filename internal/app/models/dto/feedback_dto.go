package dto

import (
	"time"

	"github.com/campushq/placement/internal/app/models"
)

// SubmitFeedbackRequest represents a placed student's interview write-up
type SubmitFeedbackRequest struct {
	Company            string `json:"company" binding:"required"`
	Compensation       string `json:"compensation" binding:"required"`
	Feedback           string `json:"feedback" binding:"required"`
	InterviewQuestions string `json:"interviewQuestions" binding:"required"`
}

// FeedbackResponse represents a single feedback entry
type FeedbackResponse struct {
	ID                 int64     `json:"id"`
	StudentName        string    `json:"studentName"`
	Company            string    `json:"company"`
	Compensation       string    `json:"compensation"`
	Feedback           string    `json:"feedback"`
	InterviewQuestions string    `json:"interviewQuestions"`
	SubmittedAt        time.Time `json:"submittedAt"`
}

// CompanyFeedbackResponse groups feedback entries by company
type CompanyFeedbackResponse struct {
	Company string             `json:"company"`
	Entries []FeedbackResponse `json:"entries"`
}

// MapFeedbackToResponse converts a feedback model to its response DTO
func MapFeedbackToResponse(fb *models.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:                 fb.ID,
		StudentName:        fb.StudentName,
		Company:            fb.Company,
		Compensation:       fb.Compensation,
		Feedback:           fb.Feedback,
		InterviewQuestions: fb.InterviewQuestions,
		SubmittedAt:        fb.SubmittedAt,
	}
}

// GroupFeedbackByCompany builds the grouped listing, preserving the order
// in which companies first appear
func GroupFeedbackByCompany(entries []*models.Feedback) []CompanyFeedbackResponse {
	index := make(map[string]int)
	grouped := make([]CompanyFeedbackResponse, 0)
	for _, fb := range entries {
		i, ok := index[fb.Company]
		if !ok {
			i = len(grouped)
			index[fb.Company] = i
			grouped = append(grouped, CompanyFeedbackResponse{Company: fb.Company})
		}
		grouped[i].Entries = append(grouped[i].Entries, MapFeedbackToResponse(fb))
	}
	return grouped
}
