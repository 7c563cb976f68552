package dto

import (
	"time"

	"github.com/campushq/placement/internal/app/models"
)

// ApplicationResponse represents a submitted application
type ApplicationResponse struct {
	ID             int64     `json:"id"`
	JobID          int64     `json:"jobId"`
	JobTitle       string    `json:"jobTitle"`
	ApplicantName  string    `json:"applicantName"`
	ApplicantEmail string    `json:"applicantEmail"`
	ApplicantPRN   string    `json:"applicantPrn"`
	ResumePath     string    `json:"resumePath"`
	AppliedAt      time.Time `json:"appliedAt"`
}

// ApplicationListResponse wraps a list of applications
type ApplicationListResponse struct {
	Applications []ApplicationResponse `json:"applications"`
}

// MapApplicationToResponse converts an application model to its response DTO
func MapApplicationToResponse(app *models.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:             app.ID,
		JobID:          app.JobID,
		JobTitle:       app.JobTitle,
		ApplicantName:  app.ApplicantName,
		ApplicantEmail: app.ApplicantEmail,
		ApplicantPRN:   app.ApplicantPRN,
		ResumePath:     app.ResumePath,
		AppliedAt:      app.AppliedAt,
	}
}

// MapApplicationsToResponse converts a slice of application models
func MapApplicationsToResponse(apps []*models.Application) ApplicationListResponse {
	responses := make([]ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		responses = append(responses, MapApplicationToResponse(app))
	}
	return ApplicationListResponse{Applications: responses}
}
