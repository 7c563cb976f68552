package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushq/placement/internal/app/models/dto"
	"github.com/campushq/placement/internal/app/services"
	"github.com/campushq/placement/internal/middleware"
	"github.com/campushq/placement/internal/pkg/export"
)

// ApplicationController handles application operations
type ApplicationController struct {
	applicationService *services.ApplicationService
	logger             zerolog.Logger
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService *services.ApplicationService, logger zerolog.Logger) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
		logger:             logger,
	}
}

// Apply submits an application to a posting
// @Summary Apply to a job
// @Description Submits an application. The profile must be complete, the student unplaced and eligible, and not already applied. An optional additional PDF can travel with the request.
// @Tags applications
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Param extraFile formData file false "Additional PDF"
// @Success 201 {object} dto.APIResponse{data=dto.ApplicationResponse} "Application submitted"
// @Failure 400 {object} dto.ErrorResponse "Incomplete profile, placed student, eligibility failure or non-PDF file"
// @Failure 404 {object} dto.ErrorResponse "Job not found or expired"
// @Failure 409 {object} dto.ErrorResponse "Already applied"
// @Router /jobs/{id}/apply [post]
func (c *ApplicationController) Apply(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	jobID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid job ID")))
		return
	}

	// The additional file is optional; a bare POST works too.
	extraFile, err := ctx.FormFile("extraFile")
	if err != nil {
		extraFile = nil
	}

	app, err := c.applicationService.Apply(ctx.Request.Context(), userID, jobID, extraFile)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.MapApplicationToResponse(app)))
}

// ListMine returns the student's own applications
// @Summary List own applications
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ApplicationListResponse} "Applications"
// @Router /applications/mine [get]
func (c *ApplicationController) ListMine(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	apps, err := c.applicationService.ListMine(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.MapApplicationsToResponse(apps)))
}

// ListApplicants returns the applicants for a posting
// @Summary List applicants for a job
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} dto.APIResponse{data=dto.ApplicationListResponse} "Applicants"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /admin/jobs/{id}/applicants [get]
func (c *ApplicationController) ListApplicants(ctx *gin.Context) {
	jobID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid job ID")))
		return
	}

	apps, err := c.applicationService.ListApplicants(ctx.Request.Context(), jobID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.MapApplicationsToResponse(apps)))
}

// ExportApplicants streams the applicants for a posting as an xlsx workbook
// @Summary Export applicants as a spreadsheet
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {file} file "Applicants workbook"
// @Failure 404 {object} dto.ErrorResponse "Job not found or no applicants"
// @Router /admin/jobs/{id}/applicants/export [get]
func (c *ApplicationController) ExportApplicants(ctx *gin.Context) {
	jobID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid job ID")))
		return
	}

	apps, err := c.applicationService.ListApplicantsForExport(ctx.Request.Context(), jobID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	rows := make([]export.ApplicantRow, 0, len(apps))
	for _, app := range apps {
		rows = append(rows, export.ApplicantRow{
			Email:         app.ApplicantEmail,
			Name:          app.ApplicantName,
			PRN:           app.ApplicantPRN,
			ResumePath:    app.ResumePath,
			ApplicationID: app.ID,
			AppliedAt:     app.AppliedAt,
		})
	}

	filename := fmt.Sprintf("applicants_job_%d_%s.xlsx", jobID, time.Now().Format("20060102"))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := export.WriteApplicants(ctx.Writer, rows); err != nil {
		c.logger.Error().Err(err).Int64("jobID", jobID).Msg("Failed to write applicants workbook")
		middleware.HandleAPIError(ctx, err)
		return
	}
}
