// Package services contains the business logic of the placement portal.
package services

import (
	"context"
	"time"

	"github.com/campushq/placement/internal/app/models"
)

// The repository interfaces below list just the operations each service
// needs, so tests can substitute in-memory fakes.

// UserStore is the user persistence surface used by services
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	SetPlaced(ctx context.Context, userID int64, placed bool) error
	ListStudents(ctx context.Context) ([]*models.User, error)
}

// JobStore is the job persistence surface used by services
type JobStore interface {
	Create(ctx context.Context, job *models.Job) error
	GetByID(ctx context.Context, id int64) (*models.Job, error)
	ListActive(ctx context.Context) ([]*models.Job, error)
	ListAll(ctx context.Context) ([]*models.Job, error)
	DeleteExpired(ctx context.Context) (int64, error)
}

// ApplicationStore is the application persistence surface used by services
type ApplicationStore interface {
	Create(ctx context.Context, app *models.Application) error
	ExistsByJobAndUser(ctx context.Context, jobID, userID int64) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Application, error)
	ListByJob(ctx context.Context, jobID int64) ([]*models.Application, error)
	ListJobIDsByUser(ctx context.Context, userID int64) ([]int64, error)
}

// FeedbackStore is the feedback persistence surface used by services
type FeedbackStore interface {
	Create(ctx context.Context, fb *models.Feedback) error
	GetByStudent(ctx context.Context, studentID int64) (*models.Feedback, error)
	ListAll(ctx context.Context) ([]*models.Feedback, error)
}

// TokenStore is the refresh token persistence surface used by services
type TokenStore interface {
	CreateToken(ctx context.Context, token string, userID int64, expiryDate time.Time) error
	GetTokenByValue(ctx context.Context, token string) (int64, time.Time, error)
	RevokeToken(ctx context.Context, token string) error
	RevokeAllUserTokens(ctx context.Context, userID int64) error
	CleanupExpiredTokens(ctx context.Context) (int64, error)
}

// Services holds all the service instances
type Services struct {
	AuthService        *AuthService
	UserService        *UserService
	JobService         *JobService
	ApplicationService *ApplicationService
	FeedbackService    *FeedbackService
}
