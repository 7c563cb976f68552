package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/placement/internal/app/models"
	"github.com/campushq/placement/internal/pkg/apperrors"
	"github.com/campushq/placement/internal/pkg/dberrors"
	"github.com/campushq/placement/internal/pkg/logger"
)

const applicationColumns = `id, job_id, user_id, job_title, applicant_name,
	applicant_email, applicant_prn, resume_path, extra_file_path, applied_at`

// ApplicationRepository handles application database operations
type ApplicationRepository struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func scanApplication(row pgx.Row) (*models.Application, error) {
	var app models.Application
	err := row.Scan(
		&app.ID, &app.JobID, &app.UserID, &app.JobTitle, &app.ApplicantName,
		&app.ApplicantEmail, &app.ApplicantPRN, &app.ResumePath,
		&app.ExtraFilePath, &app.AppliedAt,
	)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// Create inserts a new application. The unique constraint on
// (job_id, user_id) is the source of truth for duplicates, so two
// concurrent applies cannot both succeed.
func (r *ApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	query := `
		INSERT INTO applications (job_id, user_id, job_title, applicant_name,
			applicant_email, applicant_prn, resume_path, extra_file_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, applied_at`

	err := r.db.QueryRow(ctx, query,
		app.JobID, app.UserID, app.JobTitle, app.ApplicantName,
		app.ApplicantEmail, app.ApplicantPRN, app.ResumePath, app.ExtraFilePath,
	).Scan(&app.ID, &app.AppliedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "applications_job_id_user_id_key") {
			return apperrors.ErrDuplicateApplication
		}
		logger.Error().Err(err).Int64("jobID", app.JobID).Int64("userID", app.UserID).Msg("Error creating application")
		return fmt.Errorf("error creating application: %w", err)
	}

	return nil
}

// ExistsByJobAndUser checks whether the user already applied to the job.
// Used for the fast path; the insert constraint remains authoritative.
func (r *ApplicationRepository) ExistsByJobAndUser(ctx context.Context, jobID, userID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND user_id = $2)`

	err := r.db.QueryRow(ctx, query, jobID, userID).Scan(&exists)
	if err != nil {
		logger.Error().Err(err).Int64("jobID", jobID).Int64("userID", userID).Msg("Error checking application existence")
		return false, fmt.Errorf("error checking application: %w", err)
	}

	return exists, nil
}

// ListByUser retrieves a student's applications, newest first
func (r *ApplicationRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Application, error) {
	query := fmt.Sprintf(`SELECT %s FROM applications WHERE user_id = $1 ORDER BY applied_at DESC`, applicationColumns)

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error listing user applications")
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	return collectApplications(rows)
}

// ListJobIDsByUser retrieves the IDs of the postings a student applied to,
// for the feed's set-difference filter
func (r *ApplicationRepository) ListJobIDsByUser(ctx context.Context, userID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT job_id FROM applications WHERE user_id = $1`, userID)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error listing applied job IDs")
		return nil, fmt.Errorf("error listing applied job IDs: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning applied job ID: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating applied job IDs: %w", err)
	}

	return ids, nil
}

// ListByJob retrieves the applicants for a posting, earliest first
func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID int64) ([]*models.Application, error) {
	query := fmt.Sprintf(`SELECT %s FROM applications WHERE job_id = $1 ORDER BY applied_at`, applicationColumns)

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		logger.Error().Err(err).Int64("jobID", jobID).Msg("Error listing job applications")
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	return collectApplications(rows)
}

func collectApplications(rows pgx.Rows) ([]*models.Application, error) {
	var apps []*models.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning application row")
			return nil, fmt.Errorf("error scanning application: %w", err)
		}
		apps = append(apps, app)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating applications: %w", err)
	}

	return apps, nil
}
