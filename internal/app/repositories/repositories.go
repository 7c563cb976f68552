package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	JobRepository         *JobRepository
	ApplicationRepository *ApplicationRepository
	FeedbackRepository    *FeedbackRepository
	TokenRepository       *TokenRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		JobRepository:         NewJobRepository(db),
		ApplicationRepository: NewApplicationRepository(db),
		FeedbackRepository:    NewFeedbackRepository(db),
		TokenRepository:       NewTokenRepository(db),
	}
}
