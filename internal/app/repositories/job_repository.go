package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/placement/internal/app/models"
	"github.com/campushq/placement/internal/pkg/apperrors"
	"github.com/campushq/placement/internal/pkg/logger"
)

const jobColumns = `id, title, job_code, company, about_company, description, location,
	compensation, eligible_branches, min_tenth, min_twelfth, min_engineering,
	max_backlogs, created_at, expires_at`

// JobRepository handles job posting database operations
type JobRepository struct {
	db *pgxpool.Pool
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *pgxpool.Pool) *JobRepository {
	return &JobRepository{db: db}
}

func scanJob(row pgx.Row) (*models.Job, error) {
	var job models.Job
	err := row.Scan(
		&job.ID, &job.Title, &job.JobCode, &job.Company, &job.AboutCompany,
		&job.Description, &job.Location, &job.Compensation, &job.EligibleBranches,
		&job.MinTenth, &job.MinTwelfth, &job.MinEngineering, &job.MaxBacklogs,
		&job.CreatedAt, &job.ExpiresAt,
	)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// Create inserts a new posting and fills in the generated ID
func (r *JobRepository) Create(ctx context.Context, job *models.Job) error {
	query := `
		INSERT INTO jobs (title, job_code, company, about_company, description, location,
			compensation, eligible_branches, min_tenth, min_twelfth, min_engineering,
			max_backlogs, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query,
		job.Title, job.JobCode, job.Company, job.AboutCompany, job.Description,
		job.Location, job.Compensation, job.EligibleBranches,
		job.MinTenth, job.MinTwelfth, job.MinEngineering, job.MaxBacklogs,
		job.ExpiresAt,
	).Scan(&job.ID, &job.CreatedAt)

	if err != nil {
		logger.Error().Err(err).Str("title", job.Title).Msg("Error creating job")
		return fmt.Errorf("error creating job: %w", err)
	}

	return nil
}

// GetByID retrieves a posting by ID regardless of expiration
func (r *JobRepository) GetByID(ctx context.Context, id int64) (*models.Job, error) {
	query := fmt.Sprintf(`SELECT %s FROM jobs WHERE id = $1`, jobColumns)

	job, err := scanJob(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrJobNotFound
		}
		logger.Error().Err(err).Int64("jobID", id).Msg("Error retrieving job by ID")
		return nil, fmt.Errorf("error retrieving job: %w", err)
	}

	return job, nil
}

// ListActive retrieves postings that have not yet expired, newest first
func (r *JobRepository) ListActive(ctx context.Context) ([]*models.Job, error) {
	query := fmt.Sprintf(`SELECT %s FROM jobs WHERE expires_at > NOW() ORDER BY created_at DESC`, jobColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing active jobs")
		return nil, fmt.Errorf("error listing jobs: %w", err)
	}
	defer rows.Close()

	return collectJobs(rows)
}

// ListAll retrieves every posting for the admin view, newest first
func (r *JobRepository) ListAll(ctx context.Context) ([]*models.Job, error) {
	query := fmt.Sprintf(`SELECT %s FROM jobs ORDER BY created_at DESC`, jobColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing jobs")
		return nil, fmt.Errorf("error listing jobs: %w", err)
	}
	defer rows.Close()

	return collectJobs(rows)
}

func collectJobs(rows pgx.Rows) ([]*models.Job, error) {
	var jobs []*models.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning job row")
			return nil, fmt.Errorf("error scanning job: %w", err)
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating jobs: %w", err)
	}

	return jobs, nil
}

// DeleteExpired removes postings past their expiration date. Application
// rows reference deleted postings by bare ID and stay behind.
func (r *JobRepository) DeleteExpired(ctx context.Context) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE expires_at <= NOW()`)
	if err != nil {
		logger.Error().Err(err).Msg("Error deleting expired jobs")
		return 0, fmt.Errorf("error deleting expired jobs: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}
