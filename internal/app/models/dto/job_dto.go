package dto

import (
	"time"

	"github.com/campushq/placement/internal/app/models"
)

// CreateJobRequest represents a new posting submitted by an admin
type CreateJobRequest struct {
	Title            string   `json:"title" binding:"required"`
	JobCode          string   `json:"jobCode" binding:"required"`
	Company          string   `json:"company" binding:"required"`
	AboutCompany     string   `json:"aboutCompany" binding:"required"`
	Description      string   `json:"description" binding:"required"`
	Location         string   `json:"location" binding:"required"`
	Compensation     string   `json:"compensation" binding:"required"`
	EligibleBranches []string `json:"eligibleBranches" binding:"required,min=1"`
	MinTenth         float64  `json:"minTenth" binding:"min=0,max=100"`
	MinTwelfth       float64  `json:"minTwelfth" binding:"min=0,max=100"`
	MinEngineering   float64  `json:"minEngineering" binding:"min=0,max=100"`
	MaxBacklogs      int      `json:"maxBacklogs" binding:"min=0"`
	// ExpiresAt is optional; postings without one expire after the
	// configured default window.
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// JobResponse represents a posting in API responses
type JobResponse struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	JobCode          string    `json:"jobCode"`
	Company          string    `json:"company"`
	AboutCompany     string    `json:"aboutCompany"`
	Description      string    `json:"description"`
	Location         string    `json:"location"`
	Compensation     string    `json:"compensation"`
	EligibleBranches []string  `json:"eligibleBranches"`
	MinTenth         float64   `json:"minTenth"`
	MinTwelfth       float64   `json:"minTwelfth"`
	MinEngineering   float64   `json:"minEngineering"`
	MaxBacklogs      int       `json:"maxBacklogs"`
	CreatedAt        time.Time `json:"createdAt"`
	ExpiresAt        time.Time `json:"expiresAt"`
}

// JobListResponse wraps the job feed
type JobListResponse struct {
	Jobs []JobResponse `json:"jobs"`
}

// MapJobToResponse converts a job model to its response DTO
func MapJobToResponse(job *models.Job) JobResponse {
	return JobResponse{
		ID:               job.ID,
		Title:            job.Title,
		JobCode:          job.JobCode,
		Company:          job.Company,
		AboutCompany:     job.AboutCompany,
		Description:      job.Description,
		Location:         job.Location,
		Compensation:     job.Compensation,
		EligibleBranches: job.EligibleBranches,
		MinTenth:         job.MinTenth,
		MinTwelfth:       job.MinTwelfth,
		MinEngineering:   job.MinEngineering,
		MaxBacklogs:      job.MaxBacklogs,
		CreatedAt:        job.CreatedAt,
		ExpiresAt:        job.ExpiresAt,
	}
}

// MapJobsToResponse converts a slice of job models
func MapJobsToResponse(jobs []*models.Job) JobListResponse {
	responses := make([]JobResponse, 0, len(jobs))
	for _, job := range jobs {
		responses = append(responses, MapJobToResponse(job))
	}
	return JobListResponse{Jobs: responses}
}
