package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/placement/internal/app/models"
	"github.com/campushq/placement/internal/pkg/apperrors"
	"github.com/campushq/placement/internal/pkg/dberrors"
	"github.com/campushq/placement/internal/pkg/logger"
)

const userColumns = `id, username, password, name, email, year, branch, division, prn,
	tenth_percentage, twelfth_percentage, engineering_percentage, active_backlogs,
	resume_path, role_type, profile_complete, placed, created_at, updated_at`

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID, &user.Username, &user.Password, &user.Name, &user.Email,
		&user.Year, &user.Branch, &user.Division, &user.PRN,
		&user.TenthPercentage, &user.TwelfthPercentage, &user.EngineeringPercentage,
		&user.ActiveBacklogs, &user.ResumePath, &user.RoleType,
		&user.ProfileComplete, &user.Placed, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user and fills in the generated ID
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, password, name, email, year, branch, division, prn,
			role_type, profile_complete, placed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		user.Username, user.Password, user.Name, user.Email, user.Year,
		user.Branch, user.Division, user.PRN, user.RoleType,
		user.ProfileComplete, user.Placed, time.Now(),
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_username_key") {
			return apperrors.ErrUsernameExists
		}
		logger.Error().Err(err).Str("username", user.Username).Msg("Error creating user")
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", id).Msg("Error retrieving user by ID")
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE username = $1`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("username", username).Msg("Error retrieving user by username")
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// ExistsByUsername checks whether a username is already taken
func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`

	err := r.db.QueryRow(ctx, query, username).Scan(&exists)
	if err != nil {
		logger.Error().Err(err).Str("username", username).Msg("Error checking username existence")
		return false, fmt.Errorf("error checking username: %w", err)
	}

	return exists, nil
}

// UpdateProfile persists the editable profile fields along with the
// recomputed completeness flag
func (r *UserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users SET
			name = $1, email = $2, year = $3, branch = $4, division = $5,
			tenth_percentage = $6, twelfth_percentage = $7, engineering_percentage = $8,
			active_backlogs = $9, resume_path = $10, profile_complete = $11,
			updated_at = $12
		WHERE id = $13`

	cmdTag, err := r.db.Exec(ctx, query,
		user.Name, user.Email, user.Year, user.Branch, user.Division,
		user.TenthPercentage, user.TwelfthPercentage, user.EngineeringPercentage,
		user.ActiveBacklogs, user.ResumePath, user.ProfileComplete,
		time.Now(), user.ID,
	)
	if err != nil {
		logger.Error().Err(err).Int64("userID", user.ID).Msg("Error updating user profile")
		return fmt.Errorf("error updating profile: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// SetPlaced toggles a student's placed status
func (r *UserRepository) SetPlaced(ctx context.Context, userID int64, placed bool) error {
	query := `UPDATE users SET placed = $1, updated_at = $2 WHERE id = $3 AND role_type = $4`

	cmdTag, err := r.db.Exec(ctx, query, placed, time.Now(), userID, models.RoleStudent)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error updating placed status")
		return fmt.Errorf("error updating placed status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// ListStudents retrieves all student accounts ordered by name
func (r *UserRepository) ListStudents(ctx context.Context) ([]*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE role_type = $1 ORDER BY name`, userColumns)

	rows, err := r.db.Query(ctx, query, models.RoleStudent)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing students")
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning student row")
			return nil, fmt.Errorf("error scanning student: %w", err)
		}
		students = append(students, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating students: %w", err)
	}

	return students, nil
}
