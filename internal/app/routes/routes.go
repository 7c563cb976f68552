package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/campushq/placement/internal/app/controllers"
	"github.com/campushq/placement/internal/app/models"
	"github.com/campushq/placement/internal/app/models/dto"
	"github.com/campushq/placement/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	jobController *controllers.JobController,
	applicationController *controllers.ApplicationController,
	feedbackController *controllers.FeedbackController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.Refresh)
		// Account registration lives under /auth but only admins may call it.
		auth.POST("/register",
			authMiddleware.JWTAuth(),
			authMiddleware.RoleRequired(models.RoleAdmin),
			authController.Register)
	}

	// Feedback wall, readable without an account
	v1.GET("/feedback/all", feedbackController.ListAll)

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)

		// Profile routes
		users := authenticated.Group("/users")
		{
			users.GET("/me", userController.GetMe)
			users.PUT("/me/profile", userController.UpdateProfile)
			users.GET("/me/resume", userController.DownloadResume)
		}

		// Job feed and applications (student facing)
		jobs := authenticated.Group("/jobs")
		{
			jobs.GET("", jobController.ListFeed)
			jobs.GET("/:id", jobController.GetJob)
			jobs.POST("/:id/apply", applicationController.Apply)
		}

		authenticated.GET("/applications/mine", applicationController.ListMine)

		// Feedback routes (student facing)
		feedback := authenticated.Group("/feedback")
		{
			feedback.POST("", feedbackController.Submit)
			feedback.GET("/mine", feedbackController.GetMine)
		}

		// Admin routes
		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			admin.GET("/students", userController.ListStudents)
			admin.PUT("/students/:id/placed", userController.SetPlaced)
			admin.GET("/students/:id/resume", userController.DownloadStudentResume)

			admin.POST("/jobs", jobController.CreateJob)
			admin.GET("/jobs", jobController.ListAllJobs)
			admin.GET("/jobs/:id/applicants", applicationController.ListApplicants)
			admin.GET("/jobs/:id/applicants/export", applicationController.ExportApplicants)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewAPIResponse(gin.H{"status": "ok"}))
	})

	// Prometheus metrics (public)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
