package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campushq/placement/internal/app/models"
	"github.com/campushq/placement/internal/app/models/dto"
	"github.com/campushq/placement/internal/pkg/apperrors"
)

// FeedbackService handles interview feedback from placed students
type FeedbackService struct {
	feedbackRepo FeedbackStore
	userRepo     UserStore
	logger       zerolog.Logger
}

// NewFeedbackService creates a new FeedbackService
func NewFeedbackService(feedbackRepo FeedbackStore, userRepo UserStore, logger zerolog.Logger) *FeedbackService {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

// Submit records a placed student's feedback. One entry per student; the
// unique constraint backs the pre-check under concurrency.
func (s *FeedbackService) Submit(ctx context.Context, userID int64, req *dto.SubmitFeedbackRequest) (*models.Feedback, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !user.Placed {
		return nil, apperrors.ErrNotPlaced
	}

	fb := &models.Feedback{
		StudentID:          userID,
		StudentName:        user.Name,
		Company:            req.Company,
		Compensation:       req.Compensation,
		Feedback:           req.Feedback,
		InterviewQuestions: req.InterviewQuestions,
	}

	if err := s.feedbackRepo.Create(ctx, fb); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentID", userID).Str("company", fb.Company).Msg("Feedback submitted")
	return fb, nil
}

// GetMine retrieves the student's own feedback entry
func (s *FeedbackService) GetMine(ctx context.Context, userID int64) (*models.Feedback, error) {
	return s.feedbackRepo.GetByStudent(ctx, userID)
}

// ListAll retrieves every feedback entry
func (s *FeedbackService) ListAll(ctx context.Context) ([]*models.Feedback, error) {
	return s.feedbackRepo.ListAll(ctx)
}
