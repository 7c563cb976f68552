package services

import (
	"context"
	"mime/multipart"

	"github.com/rs/zerolog"

	"github.com/campushq/placement/internal/app/models"
	"github.com/campushq/placement/internal/app/models/dto"
	"github.com/campushq/placement/internal/pkg/apperrors"
	"github.com/campushq/placement/internal/pkg/filestorage"
)

// UserService handles profile operations
type UserService struct {
	userRepo    UserStore
	fileStorage filestorage.FileStorage
	logger      zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo UserStore, fileStorage filestorage.FileStorage, logger zerolog.Logger) *UserService {
	return &UserService{
		userRepo:    userRepo,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

// GetProfile retrieves a user's profile
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile applies profile edits, stores an optional resume upload and
// recomputes the completeness flag from the resulting state
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest, resume *multipart.FileHeader) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Year = req.Year
	user.Branch = req.Branch
	user.Division = req.Division
	user.TenthPercentage = req.TenthPercentage
	user.TwelfthPercentage = req.TwelfthPercentage
	user.EngineeringPercentage = req.EngineeringPercentage
	user.ActiveBacklogs = req.ActiveBacklogs

	if resume != nil {
		if !filestorage.IsPDF(resume) {
			return nil, apperrors.NewCustomError(apperrors.ErrUnsupportedFileType, "resume must be a PDF file")
		}

		oldResume := user.ResumePath

		path, err := s.fileStorage.SaveFile(resume)
		if err != nil {
			return nil, apperrors.NewCustomError(apperrors.ErrStorageFailure, "failed to store resume")
		}
		user.ResumePath = &path

		if oldResume != nil && *oldResume != path {
			if err := s.fileStorage.DeleteFile(*oldResume); err != nil {
				// The new resume is already saved, losing the old file is acceptable.
				s.logger.Warn().Err(err).Str("path", *oldResume).Msg("Failed to delete replaced resume")
			}
		}
	}

	user.ProfileComplete = user.IsProfileComplete()

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", userID).Bool("profileComplete", user.ProfileComplete).Msg("Profile updated")
	return user, nil
}

// GetResumeFile returns the filesystem path of the user's stored resume
func (s *UserService) GetResumeFile(ctx context.Context, userID int64) (string, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	if !user.HasResume() {
		return "", apperrors.ErrResumeNotFound
	}

	return s.fileStorage.GetFullPath(*user.ResumePath), nil
}

// ListStudents retrieves all student accounts for the admin view
func (s *UserService) ListStudents(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.ListStudents(ctx)
}

// SetPlaced toggles a student's placed status
func (s *UserService) SetPlaced(ctx context.Context, userID int64, placed bool) error {
	if err := s.userRepo.SetPlaced(ctx, userID, placed); err != nil {
		return err
	}

	s.logger.Info().Int64("userID", userID).Bool("placed", placed).Msg("Placed status updated")
	return nil
}
