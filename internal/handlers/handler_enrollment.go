package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wishzy/wishzy-backend/internal/apperrors"
	"github.com/wishzy/wishzy-backend/internal/core/domain"
	portssvc "github.com/wishzy/wishzy-backend/internal/core/ports/services"
	"github.com/wishzy/wishzy-backend/internal/dto"
	"github.com/wishzy/wishzy-backend/internal/middleware"
)

// EnrollmentHandler handles enrollment requests.
type EnrollmentHandler struct {
	enrollmentService portssvc.EnrollmentSvcFacade
}

// NewEnrollmentHandler creates a new EnrollmentHandler.
func NewEnrollmentHandler(enrollmentService portssvc.EnrollmentSvcFacade) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentService: enrollmentService}
}

// registerEnrollmentRoutes sets up the authenticated enrollment routes.
func registerEnrollmentRoutes(rg *gin.RouterGroup, enrollmentService portssvc.EnrollmentSvcFacade) {
	h := NewEnrollmentHandler(enrollmentService)

	enrollments := rg.Group("/enrollments")
	{
		enrollments.POST("", h.Enroll)
		enrollments.GET("/mine", h.ListMyEnrollments)
		enrollments.GET("/:id", h.GetEnrollment)
		enrollments.PUT("/:id/progress", h.UpdateProgress)
		enrollments.GET("", middleware.RequireRoles(domain.RoleAdmin), h.ListUserEnrollments)
	}
}

// Enroll godoc
// @Summary Enroll in a free course
// @Description Paid courses enroll through the order and payment flow.
// @Tags enrollments
// @Accept json
// @Produce json
// @Param enrollment body dto.EnrollRequest true "Course to enroll in"
// @Success 201 {object} dto.APIResponse{data=domain.Enrollment}
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Security BearerAuth
// @Router /enrollments [post]
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.APIResponse{Success: false, Message: "Authentication required", URL: c.Request.URL.Path})
		return
	}

	var req dto.EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	enrollment, err := h.enrollmentService.EnrollUser(c.Request.Context(), userID, req.CourseID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, enrollment, "Enrolled successfully")
}

// ListMyEnrollments godoc
// @Summary List own enrollments
// @Tags enrollments
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]domain.Enrollment}
// @Security BearerAuth
// @Router /enrollments/mine [get]
func (h *EnrollmentHandler) ListMyEnrollments(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.APIResponse{Success: false, Message: "Authentication required", URL: c.Request.URL.Path})
		return
	}

	enrollments, err := h.enrollmentService.ListUserEnrollments(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, enrollments, "")
}

// GetEnrollment godoc
// @Summary Get an enrollment
// @Description Learners can read their own enrollments; administrators any.
// @Tags enrollments
// @Produce json
// @Param id path string true "Enrollment ID"
// @Success 200 {object} dto.APIResponse{data=domain.Enrollment}
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /enrollments/{id} [get]
func (h *EnrollmentHandler) GetEnrollment(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.APIResponse{Success: false, Message: "Authentication required", URL: c.Request.URL.Path})
		return
	}

	enrollment, err := h.enrollmentService.GetEnrollmentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	role, _ := middleware.GetUserRoleFromContext(c)
	if enrollment.UserID != userID && domain.UserRole(role) != domain.RoleAdmin {
		respondError(c, apperrors.ErrNotFound)
		return
	}

	respondSuccess(c, http.StatusOK, enrollment, "")
}

// ListUserEnrollments godoc
// @Summary List a user's enrollments (admin)
// @Tags enrollments
// @Produce json
// @Param userId query string true "User ID"
// @Success 200 {object} dto.APIResponse{data=[]domain.Enrollment}
// @Failure 403 {object} dto.APIResponse
// @Security BearerAuth
// @Router /enrollments [get]
func (h *EnrollmentHandler) ListUserEnrollments(c *gin.Context) {
	targetUserID := c.Query("userId")
	if targetUserID == "" {
		c.JSON(http.StatusBadRequest, dto.APIResponse{Success: false, Message: "userId query parameter is required", URL: c.Request.URL.Path})
		return
	}

	enrollments, err := h.enrollmentService.ListUserEnrollments(c.Request.Context(), targetUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, enrollments, "")
}

// UpdateProgress godoc
// @Summary Update learning progress
// @Tags enrollments
// @Accept json
// @Produce json
// @Param id path string true "Enrollment ID"
// @Param progress body dto.UpdateProgressRequest true "Completion percentage"
// @Success 200 {object} dto.APIResponse{data=domain.Enrollment}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /enrollments/{id}/progress [put]
func (h *EnrollmentHandler) UpdateProgress(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.APIResponse{Success: false, Message: "Authentication required", URL: c.Request.URL.Path})
		return
	}

	var req dto.UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	// Progress belongs to the learner; confirm ownership before writing.
	enrollmentID := c.Param("id")
	existing, err := h.enrollmentService.GetEnrollmentByID(c.Request.Context(), enrollmentID)
	if err != nil {
		respondError(c, err)
		return
	}
	if existing.UserID != userID {
		respondError(c, apperrors.ErrNotFound)
		return
	}

	enrollment, err := h.enrollmentService.UpdateProgress(c.Request.Context(), enrollmentID, req.Progress)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, enrollment, "Progress updated")
}
