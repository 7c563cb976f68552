package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushq/placement/internal/app/eligibility"
	"github.com/campushq/placement/internal/app/models"
	"github.com/campushq/placement/internal/app/models/dto"
	"github.com/campushq/placement/internal/pkg/apperrors"
)

// JobService handles job posting operations
type JobService struct {
	jobRepo       JobStore
	appRepo       ApplicationStore
	defaultExpiry time.Duration
	logger        zerolog.Logger
}

// NewJobService creates a new JobService
func NewJobService(jobRepo JobStore, appRepo ApplicationStore, defaultExpiry time.Duration, logger zerolog.Logger) *JobService {
	return &JobService{
		jobRepo:       jobRepo,
		appRepo:       appRepo,
		defaultExpiry: defaultExpiry,
		logger:        logger,
	}
}

// CreateJob creates a new posting. Postings without an explicit expiration
// get the configured default window.
func (s *JobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	expiresAt := time.Now().Add(s.defaultExpiry)
	if req.ExpiresAt != nil {
		if req.ExpiresAt.Before(time.Now()) {
			return nil, apperrors.NewValidationError("expiration date must be in the future")
		}
		expiresAt = *req.ExpiresAt
	}

	job := &models.Job{
		Title:            req.Title,
		JobCode:          req.JobCode,
		Company:          req.Company,
		AboutCompany:     req.AboutCompany,
		Description:      req.Description,
		Location:         req.Location,
		Compensation:     req.Compensation,
		EligibleBranches: req.EligibleBranches,
		MinTenth:         req.MinTenth,
		MinTwelfth:       req.MinTwelfth,
		MinEngineering:   req.MinEngineering,
		MaxBacklogs:      req.MaxBacklogs,
		ExpiresAt:        expiresAt,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("jobID", job.ID).Str("company", job.Company).Msg("Job created")
	return job, nil
}

// GetJob retrieves a posting. Students only see unexpired postings; the
// admin view passes includeExpired.
func (s *JobService) GetJob(ctx context.Context, id int64, includeExpired bool) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !includeExpired && job.IsExpired(time.Now()) {
		return nil, apperrors.ErrJobNotFound
	}

	return job, nil
}

// ListJobsForStudent builds the feed: active postings minus the ones the
// student already applied to. Ineligible postings stay visible; the student
// learns the reason on apply. Incomplete profiles and placed students get an
// empty feed at the handler level, before this runs.
func (s *JobService) ListJobsForStudent(ctx context.Context, student *models.User) ([]*models.Job, error) {
	jobs, err := s.jobRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	appliedIDs, err := s.appRepo.ListJobIDsByUser(ctx, student.ID)
	if err != nil {
		return nil, err
	}
	applied := make(map[int64]struct{}, len(appliedIDs))
	for _, id := range appliedIDs {
		applied[id] = struct{}{}
	}

	feed := make([]*models.Job, 0, len(jobs))
	for _, job := range jobs {
		if _, ok := applied[job.ID]; ok {
			continue
		}
		feed = append(feed, job)
	}

	return feed, nil
}

// ListAllJobs retrieves every posting for the admin view
func (s *JobService) ListAllJobs(ctx context.Context) ([]*models.Job, error) {
	return s.jobRepo.ListAll(ctx)
}

// StartExpirySweeper runs a background loop purging expired postings until
// the context is cancelled. Applications are untouched; they carry their own
// snapshot of the posting.
func (s *JobService) StartExpirySweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				deleted, err := s.jobRepo.DeleteExpired(ctx)
				if err != nil {
					s.logger.Error().Err(err).Msg("Expired job sweep failed")
					continue
				}
				if deleted > 0 {
					s.logger.Info().Int64("deleted", deleted).Msg("Purged expired jobs")
				}
			}
		}
	}()
}

// CandidateFromUser builds an eligibility candidate from a complete profile.
// Callers must check profile completeness first; missing fields count as zero.
func CandidateFromUser(user *models.User) eligibility.Candidate {
	c := eligibility.Candidate{Branch: user.Branch}
	if user.TenthPercentage != nil {
		c.TenthPercentage = *user.TenthPercentage
	}
	if user.TwelfthPercentage != nil {
		c.TwelfthPercentage = *user.TwelfthPercentage
	}
	if user.EngineeringPercentage != nil {
		c.EngineeringPercentage = *user.EngineeringPercentage
	}
	if user.ActiveBacklogs != nil {
		c.ActiveBacklogs = *user.ActiveBacklogs
	}
	return c
}

// RequirementsFromJob builds eligibility requirements from a posting
func RequirementsFromJob(job *models.Job) eligibility.Requirements {
	return eligibility.Requirements{
		EligibleBranches: job.EligibleBranches,
		MinTenth:         job.MinTenth,
		MinTwelfth:       job.MinTwelfth,
		MinEngineering:   job.MinEngineering,
		MaxBacklogs:      job.MaxBacklogs,
	}
}
