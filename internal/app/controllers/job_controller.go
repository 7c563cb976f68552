package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushq/placement/internal/app/models"
	"github.com/campushq/placement/internal/app/models/dto"
	"github.com/campushq/placement/internal/app/services"
	"github.com/campushq/placement/internal/middleware"
)

// JobController handles job posting operations
type JobController struct {
	jobService  *services.JobService
	userService *services.UserService
	logger      zerolog.Logger
}

// NewJobController creates a new JobController
func NewJobController(jobService *services.JobService, userService *services.UserService, logger zerolog.Logger) *JobController {
	return &JobController{
		jobService:  jobService,
		userService: userService,
		logger:      logger,
	}
}

// ListFeed returns the student's personalized job feed
// @Summary List jobs for the current student
// @Description Returns active postings the student has not yet applied to. Incomplete profiles and placed students get an empty feed.
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.JobListResponse} "Job feed"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /jobs [get]
func (c *JobController) ListFeed(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	student, err := c.userService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	// Incomplete profiles and placed students see nothing to apply to.
	if !student.IsProfileComplete() || student.Placed {
		ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.JobListResponse{Jobs: []dto.JobResponse{}}))
		return
	}

	jobs, err := c.jobService.ListJobsForStudent(ctx.Request.Context(), student)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.MapJobsToResponse(jobs)))
}

// GetJob returns a single active posting
// @Summary Get job details
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} dto.APIResponse{data=dto.JobResponse} "Job details"
// @Failure 404 {object} dto.ErrorResponse "Job not found or expired"
// @Router /jobs/{id} [get]
func (c *JobController) GetJob(ctx *gin.Context) {
	jobID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid job ID")))
		return
	}

	role, _ := ctx.Get(middleware.ContextRoleType)
	includeExpired := role == string(models.RoleAdmin)

	job, err := c.jobService.GetJob(ctx.Request.Context(), jobID, includeExpired)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.MapJobToResponse(job)))
}

// CreateJob creates a new posting
// @Summary Create a job posting
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateJobRequest true "Posting details"
// @Success 201 {object} dto.APIResponse{data=dto.JobResponse} "Posting created"
// @Failure 400 {object} dto.ErrorResponse "Invalid posting data"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /admin/jobs [post]
func (c *JobController) CreateJob(ctx *gin.Context) {
	var req dto.CreateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	job, err := c.jobService.CreateJob(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Error().Err(err).Str("company", req.Company).Msg("Failed to create job")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.MapJobToResponse(job)))
}

// ListAllJobs returns every posting for the admin view
// @Summary List all job postings
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.JobListResponse} "All postings"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /admin/jobs [get]
func (c *JobController) ListAllJobs(ctx *gin.Context) {
	jobs, err := c.jobService.ListAllJobs(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.MapJobsToResponse(jobs)))
}
