// Package bootstrap wires configuration, database, dependencies and routes.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/campushq/placement/internal/app/controllers"
	appMigrations "github.com/campushq/placement/internal/app/migrations"
	appRepos "github.com/campushq/placement/internal/app/repositories"
	appRoutes "github.com/campushq/placement/internal/app/routes"
	appServices "github.com/campushq/placement/internal/app/services"
	"github.com/campushq/placement/internal/config"
	"github.com/campushq/placement/internal/db"
	appMiddleware "github.com/campushq/placement/internal/middleware"
	pkgAuth "github.com/campushq/placement/internal/pkg/auth"
	"github.com/campushq/placement/internal/pkg/filestorage"
	"github.com/campushq/placement/internal/pkg/helpers"
	"github.com/campushq/placement/internal/pkg/logger"
	"github.com/campushq/placement/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService           *appServices.AuthService
	UserService           *appServices.UserService
	JobService            *appServices.JobService
	ApplicationService    *appServices.ApplicationService
	FeedbackService       *appServices.FeedbackService
	AuthController        *appControllers.AuthController
	UserController        *appControllers.UserController
	JobController         *appControllers.JobController
	ApplicationController *appControllers.ApplicationController
	FeedbackController    *appControllers.FeedbackController
	AuthMiddleware        *appMiddleware.AuthMiddleware
	Repos                 *appRepos.Repositories
	JWTService            *pkgAuth.JWTService
	FileStorage           *filestorage.LocalStorage
	Logger                zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default admin account.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// A missing admin is recoverable; one can be created manually.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	baseURL := "http://localhost:" + cfg.Server.Port
	fileStorageBaseURL := baseURL + "/uploads"
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 2*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	defaultExpiry := helpers.ParseDuration(cfg.Jobs.DefaultExpiry, 14*24*time.Hour)

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
		lgr,
	)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, deps.FileStorage, lgr)
	deps.JobService = appServices.NewJobService(deps.Repos.JobRepository, deps.Repos.ApplicationRepository, defaultExpiry, lgr)
	deps.ApplicationService = appServices.NewApplicationService(
		deps.Repos.ApplicationRepository,
		deps.Repos.JobRepository,
		deps.Repos.UserRepository,
		deps.FileStorage,
		lgr,
	)
	deps.FeedbackService = appServices.NewFeedbackService(deps.Repos.FeedbackRepository, deps.Repos.UserRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.UserController = appControllers.NewUserController(deps.UserService, lgr)
	deps.JobController = appControllers.NewJobController(deps.JobService, deps.UserService, lgr)
	deps.ApplicationController = appControllers.NewApplicationController(deps.ApplicationService, lgr)
	deps.FeedbackController = appControllers.NewFeedbackController(deps.FeedbackService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	requestTimeout := helpers.ParseDuration(cfg.Server.RequestTimeout, 15*time.Second)
	router.Use(appMiddleware.RequestTimeout(requestTimeout))
	router.Use(appMiddleware.Metrics())

	if cfg.Server.RateLimitPerMin > 0 {
		limiter := appMiddleware.NewTokenBucket(cfg.Server.RateLimitPerMin, cfg.Server.RateLimitPerMin)
		router.Use(limiter.GinMiddleware())
	}

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.JobController,
		deps.ApplicationController,
		deps.FeedbackController,
		deps.AuthMiddleware,
	)

	return router
}

// StartBackgroundJobs launches the expired posting sweeper and the token
// cleanup loop. The returned cancel stops them on shutdown.
func StartBackgroundJobs(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) context.CancelFunc {
	ctx, cancel := context.WithCancel(context.Background())

	sweepInterval := helpers.ParseDuration(cfg.Jobs.SweepInterval, time.Hour)
	deps.JobService.StartExpirySweeper(ctx, sweepInterval)
	lgr.Info().Dur("interval", sweepInterval).Msg("Job expiry sweeper started")

	go func() {
		ticker := time.NewTicker(12 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := deps.Repos.TokenRepository.CleanupExpiredTokens(ctx); err != nil {
					lgr.Error().Err(err).Msg("Token cleanup failed")
				}
			}
		}
	}()

	return cancel
}
