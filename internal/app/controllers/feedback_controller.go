package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushq/placement/internal/app/models/dto"
	"github.com/campushq/placement/internal/app/services"
	"github.com/campushq/placement/internal/middleware"
)

// FeedbackController handles interview feedback operations
type FeedbackController struct {
	feedbackService *services.FeedbackService
	logger          zerolog.Logger
}

// NewFeedbackController creates a new FeedbackController
func NewFeedbackController(feedbackService *services.FeedbackService, logger zerolog.Logger) *FeedbackController {
	return &FeedbackController{
		feedbackService: feedbackService,
		logger:          logger,
	}
}

// Submit records a placed student's interview feedback
// @Summary Submit interview feedback
// @Description Placed students record their interview experience, once per student.
// @Tags feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitFeedbackRequest true "Feedback"
// @Success 201 {object} dto.APIResponse{data=dto.FeedbackResponse} "Feedback recorded"
// @Failure 400 {object} dto.ErrorResponse "Student not placed"
// @Failure 409 {object} dto.ErrorResponse "Feedback already submitted"
// @Router /feedback [post]
func (c *FeedbackController) Submit(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.SubmitFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	fb, err := c.feedbackService.Submit(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.MapFeedbackToResponse(fb)))
}

// GetMine returns the student's own feedback entry
// @Summary Get own feedback
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.FeedbackResponse} "Feedback"
// @Failure 404 {object} dto.ErrorResponse "No feedback submitted"
// @Router /feedback/mine [get]
func (c *FeedbackController) GetMine(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	fb, err := c.feedbackService.GetMine(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.MapFeedbackToResponse(fb)))
}

// ListAll returns every feedback entry grouped by company. Mounted without
// authentication; the wall is public.
// @Summary List all feedback grouped by company
// @Tags feedback
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.CompanyFeedbackResponse} "Feedback by company"
// @Router /feedback/all [get]
func (c *FeedbackController) ListAll(ctx *gin.Context) {
	entries, err := c.feedbackService.ListAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.GroupFeedbackByCompany(entries)))
}
