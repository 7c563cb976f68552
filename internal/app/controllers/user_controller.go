package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushq/placement/internal/app/models/dto"
	"github.com/campushq/placement/internal/app/services"
	"github.com/campushq/placement/internal/middleware"
)

// UserController handles profile and admin student operations
type UserController struct {
	userService *services.UserService
	logger      zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService, logger zerolog.Logger) *UserController {
	return &UserController{
		userService: userService,
		logger:      logger,
	}
}

// GetMe returns the authenticated user's profile
// @Summary Get own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "Profile"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /users/me [get]
func (c *UserController) GetMe(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	user, err := c.userService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resumeURL := ""
	if user.HasResume() {
		resumeURL = "/" + *user.ResumePath
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.MapUserToResponse(user, resumeURL)))
}

// UpdateProfile updates the authenticated user's profile. The request is a
// multipart form so the resume PDF can travel with the fields.
// @Summary Update own profile
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Full name"
// @Param email formData string true "Email"
// @Param year formData string true "Year of study"
// @Param branch formData string true "Branch"
// @Param division formData string true "Division"
// @Param tenthPercentage formData number false "Tenth percentage"
// @Param twelfthPercentage formData number false "Twelfth percentage"
// @Param engineeringPercentage formData number false "Engineering percentage"
// @Param activeBacklogs formData integer false "Active backlogs"
// @Param resume formData file false "Resume PDF"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "Updated profile"
// @Failure 400 {object} dto.ErrorResponse "Invalid form data or non-PDF resume"
// @Router /users/me/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid form data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	// Absent file is fine, profile fields can be updated on their own.
	resume, err := ctx.FormFile("resume")
	if err != nil {
		resume = nil
	}

	user, err := c.userService.UpdateProfile(ctx.Request.Context(), userID, &req, resume)
	if err != nil {
		c.logger.Warn().Err(err).Int64("userID", userID).Msg("Profile update failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	resumeURL := ""
	if user.HasResume() {
		resumeURL = "/" + *user.ResumePath
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.MapUserToResponse(user, resumeURL)))
}

// DownloadResume streams the authenticated user's stored resume
// @Summary Download own resume
// @Tags users
// @Produce application/pdf
// @Security BearerAuth
// @Success 200 {file} file "Resume PDF"
// @Failure 404 {object} dto.ErrorResponse "No resume uploaded"
// @Router /users/me/resume [get]
func (c *UserController) DownloadResume(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	path, err := c.userService.GetResumeFile(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.FileAttachment(path, "resume.pdf")
}

// ListStudents returns every student account for the admin view
// @Summary List students
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentListResponse} "Students"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /admin/students [get]
func (c *UserController) ListStudents(ctx *gin.Context) {
	students, err := c.userService.ListStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	rows := make([]dto.StudentListResponse, 0, len(students))
	for _, s := range students {
		rows = append(rows, dto.StudentListResponse{
			ID:              s.ID,
			Name:            s.Name,
			Email:           s.Email,
			Branch:          s.Branch,
			Division:        s.Division,
			PRN:             s.PRN,
			ProfileComplete: s.ProfileComplete,
			Placed:          s.Placed,
		})
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(rows))
}

// SetPlaced toggles a student's placed status
// @Summary Set student placed status
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body dto.SetPlacedRequest true "Placed flag"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Status updated"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /admin/students/{id}/placed [put]
func (c *UserController) SetPlaced(ctx *gin.Context) {
	studentID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")))
		return
	}

	var req dto.SetPlacedRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.userService.SetPlaced(ctx.Request.Context(), studentID, req.Placed); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Placed status updated"}))
}

// DownloadStudentResume streams a student's resume for admin review
// @Summary Download a student's resume
// @Tags admin
// @Produce application/pdf
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {file} file "Resume PDF"
// @Failure 404 {object} dto.ErrorResponse "Student or resume not found"
// @Router /admin/students/{id}/resume [get]
func (c *UserController) DownloadStudentResume(ctx *gin.Context) {
	studentID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")))
		return
	}

	path, err := c.userService.GetResumeFile(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.FileAttachment(path, "resume.pdf")
}
