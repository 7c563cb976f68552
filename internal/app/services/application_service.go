package services

import (
	"context"
	"errors"
	"mime/multipart"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushq/placement/internal/app/eligibility"
	"github.com/campushq/placement/internal/app/models"
	"github.com/campushq/placement/internal/pkg/apperrors"
	"github.com/campushq/placement/internal/pkg/filestorage"
)

// ApplicationService handles job applications
type ApplicationService struct {
	appRepo     ApplicationStore
	jobRepo     JobStore
	userRepo    UserStore
	fileStorage filestorage.FileStorage
	logger      zerolog.Logger
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(appRepo ApplicationStore, jobRepo JobStore, userRepo UserStore, fileStorage filestorage.FileStorage, logger zerolog.Logger) *ApplicationService {
	return &ApplicationService{
		appRepo:     appRepo,
		jobRepo:     jobRepo,
		userRepo:    userRepo,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

// Apply submits an application. Checks run in order: the posting must be
// active, the profile complete, the student unplaced and eligible, and not
// already applied. The duplicate pre-check is advisory; the unique
// constraint on the insert decides races. extraFile is an optional PDF
// stored alongside the resume snapshot.
func (s *ApplicationService) Apply(ctx context.Context, userID, jobID int64, extraFile *multipart.FileHeader) (*models.Application, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.IsExpired(time.Now()) {
		return nil, apperrors.ErrJobNotFound
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !user.IsProfileComplete() {
		return nil, apperrors.ErrProfileIncomplete
	}

	if user.Placed {
		return nil, apperrors.ErrAlreadyPlaced
	}

	result := eligibility.Check(CandidateFromUser(user), RequirementsFromJob(job))
	if !result.Eligible {
		return nil, apperrors.NewIneligibleError(result.Reason)
	}

	applied, err := s.appRepo.ExistsByJobAndUser(ctx, jobID, userID)
	if err != nil {
		return nil, err
	}
	if applied {
		return nil, apperrors.ErrDuplicateApplication
	}

	app := &models.Application{
		JobID:          jobID,
		UserID:         userID,
		JobTitle:       job.Title,
		ApplicantName:  user.Name,
		ApplicantEmail: user.Email,
		ApplicantPRN:   user.PRN,
		ResumePath:     *user.ResumePath,
	}

	if extraFile != nil {
		if !filestorage.IsPDF(extraFile) {
			return nil, apperrors.NewCustomError(apperrors.ErrUnsupportedFileType, "additional file must be a PDF")
		}
		path, err := s.fileStorage.SaveFile(extraFile)
		if err != nil {
			return nil, apperrors.NewCustomError(apperrors.ErrStorageFailure, "failed to store additional file")
		}
		app.ExtraFilePath = &path
	}

	if err := s.appRepo.Create(ctx, app); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateApplication) {
			// Lost a race with a concurrent apply for the same job.
			s.logger.Warn().Int64("jobID", jobID).Int64("userID", userID).Msg("Concurrent duplicate application rejected")
		}
		return nil, err
	}

	s.logger.Info().Int64("applicationID", app.ID).Int64("jobID", jobID).Int64("userID", userID).Msg("Application submitted")
	return app, nil
}

// ListMine retrieves the student's own applications
func (s *ApplicationService) ListMine(ctx context.Context, userID int64) ([]*models.Application, error) {
	return s.appRepo.ListByUser(ctx, userID)
}

// ListApplicants retrieves the applicants for a posting
func (s *ApplicationService) ListApplicants(ctx context.Context, jobID int64) ([]*models.Application, error) {
	if _, err := s.jobRepo.GetByID(ctx, jobID); err != nil {
		return nil, err
	}
	return s.appRepo.ListByJob(ctx, jobID)
}

// ListApplicantsForExport retrieves the applicants for the spreadsheet
// export. A posting nobody applied to yields not-found rather than an
// empty workbook.
func (s *ApplicationService) ListApplicantsForExport(ctx context.Context, jobID int64) ([]*models.Application, error) {
	apps, err := s.ListApplicants(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if len(apps) == 0 {
		return nil, apperrors.ErrResourceNotFound
	}
	return apps, nil
}
