package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/placement/internal/app/models"
	"github.com/campushq/placement/internal/pkg/apperrors"
	"github.com/campushq/placement/internal/pkg/dberrors"
	"github.com/campushq/placement/internal/pkg/logger"
)

const feedbackColumns = `id, student_id, student_name, company, compensation,
	feedback, interview_questions, submitted_at`

// FeedbackRepository handles feedback database operations
type FeedbackRepository struct {
	db *pgxpool.Pool
}

// NewFeedbackRepository creates a new FeedbackRepository
func NewFeedbackRepository(db *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func scanFeedback(row pgx.Row) (*models.Feedback, error) {
	var fb models.Feedback
	err := row.Scan(
		&fb.ID, &fb.StudentID, &fb.StudentName, &fb.Company, &fb.Compensation,
		&fb.Feedback, &fb.InterviewQuestions, &fb.SubmittedAt,
	)
	if err != nil {
		return nil, err
	}
	return &fb, nil
}

// Create inserts a feedback entry. The unique constraint on student_id
// enforces one entry per student even under concurrent submissions.
func (r *FeedbackRepository) Create(ctx context.Context, fb *models.Feedback) error {
	query := `
		INSERT INTO feedback (student_id, student_name, company, compensation,
			feedback, interview_questions)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, submitted_at`

	err := r.db.QueryRow(ctx, query,
		fb.StudentID, fb.StudentName, fb.Company, fb.Compensation,
		fb.Feedback, fb.InterviewQuestions,
	).Scan(&fb.ID, &fb.SubmittedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "feedback_student_id_key") {
			return apperrors.ErrDuplicateFeedback
		}
		logger.Error().Err(err).Int64("studentID", fb.StudentID).Msg("Error creating feedback")
		return fmt.Errorf("error creating feedback: %w", err)
	}

	return nil
}

// GetByStudent retrieves a student's own feedback entry
func (r *FeedbackRepository) GetByStudent(ctx context.Context, studentID int64) (*models.Feedback, error) {
	query := fmt.Sprintf(`SELECT %s FROM feedback WHERE student_id = $1`, feedbackColumns)

	fb, err := scanFeedback(r.db.QueryRow(ctx, query, studentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error retrieving feedback")
		return nil, fmt.Errorf("error retrieving feedback: %w", err)
	}

	return fb, nil
}

// ListAll retrieves all feedback entries ordered by company then recency
func (r *FeedbackRepository) ListAll(ctx context.Context) ([]*models.Feedback, error) {
	query := fmt.Sprintf(`SELECT %s FROM feedback ORDER BY company, submitted_at DESC`, feedbackColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing feedback")
		return nil, fmt.Errorf("error listing feedback: %w", err)
	}
	defer rows.Close()

	var entries []*models.Feedback
	for rows.Next() {
		fb, err := scanFeedback(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning feedback row")
			return nil, fmt.Errorf("error scanning feedback: %w", err)
		}
		entries = append(entries, fb)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating feedback: %w", err)
	}

	return entries, nil
}
