package seed

import (
	"context"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/campushq/placement/internal/app/models"
	appRepos "github.com/campushq/placement/internal/app/repositories"
	"github.com/campushq/placement/internal/pkg/auth"
)

// CreateDefaultData creates the default admin account if it doesn't exist.
// Students can't self-register, so a fresh database needs at least one admin.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	exists, err := userRepo.ExistsByUsername(ctx, "admin")
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		return err
	}
	if exists {
		lgr.Info().Msg("Admin user already exists, skipping creation")
		return nil
	}

	lgr.Info().Msg("Creating default admin user...")

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "Admin123!"
		lgr.Warn().Msg("ADMIN_PASSWORD not set, using default admin password")
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return err
	}

	admin := &appModels.User{
		Username: "admin",
		Password: hashedPassword,
		Name:     "Placement Cell Admin",
		Email:    "placements@campus.edu",
		Year:     "N/A",
		Branch:   "N/A",
		Division: "N/A",
		PRN:      "ADMIN",
		RoleType: appModels.RoleAdmin,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		lgr.Error().Err(err).Msg("Error creating admin user")
		return err
	}

	lgr.Info().Int64("adminID", admin.ID).Msg("Default admin user created successfully")
	return nil
}
