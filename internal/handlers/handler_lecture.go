package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wishzy/wishzy-backend/internal/core/domain"
	portssvc "github.com/wishzy/wishzy-backend/internal/core/ports/services"
	"github.com/wishzy/wishzy-backend/internal/dto"
	"github.com/wishzy/wishzy-backend/internal/middleware"
)

// LectureHandler handles lecture management requests.
type LectureHandler struct {
	lectureService portssvc.LectureSvcFacade
}

// NewLectureHandler creates a new LectureHandler.
func NewLectureHandler(lectureService portssvc.LectureSvcFacade) *LectureHandler {
	return &LectureHandler{lectureService: lectureService}
}

// registerPublicLectureRoutes sets up unauthenticated lecture reads.
func registerPublicLectureRoutes(rg *gin.RouterGroup, lectureService portssvc.LectureSvcFacade) {
	h := NewLectureHandler(lectureService)

	lectures := rg.Group("/lectures")
	{
		lectures.GET("", h.ListLectures)
		lectures.GET("/:id", h.GetLecture)
	}
}

// registerLectureRoutes sets up the authenticated lecture writes.
func registerLectureRoutes(rg *gin.RouterGroup, lectureService portssvc.LectureSvcFacade) {
	h := NewLectureHandler(lectureService)

	owned := middleware.RequireOwnership("lecture", func(ctx context.Context, id string) (domain.Ownable, error) {
		return lectureService.GetLectureByID(ctx, id)
	})

	lectures := rg.Group("/lectures", middleware.RequireRoles(domain.RoleInstructor, domain.RoleAdmin))
	{
		lectures.POST("", h.CreateLecture)
		lectures.PUT("/:id", owned, h.UpdateLecture)
		lectures.DELETE("/:id", owned, h.DeleteLecture)
	}
}

// CreateLecture godoc
// @Summary Create lecture (instructor)
// @Tags lectures
// @Accept json
// @Produce json
// @Param lecture body dto.CreateLectureRequest true "Lecture info"
// @Success 201 {object} dto.APIResponse{data=domain.Lecture}
// @Failure 400 {object} dto.APIResponse
// @Security BearerAuth
// @Router /lectures [post]
func (h *LectureHandler) CreateLecture(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.APIResponse{Success: false, Message: "Authentication required", URL: c.Request.URL.Path})
		return
	}

	var req dto.CreateLectureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	lecture, err := h.lectureService.CreateLecture(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, lecture, "Lecture created")
}

// GetLecture godoc
// @Summary Get lecture by ID
// @Tags lectures
// @Produce json
// @Param id path string true "Lecture ID"
// @Success 200 {object} dto.APIResponse{data=domain.Lecture}
// @Failure 404 {object} dto.APIResponse
// @Router /lectures/{id} [get]
func (h *LectureHandler) GetLecture(c *gin.Context) {
	lecture, err := h.lectureService.GetLectureByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, lecture, "")
}

// ListLectures godoc
// @Summary List lectures of a chapter
// @Tags lectures
// @Produce json
// @Param chapterId query string false "Chapter ID"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} dto.APIResponse{data=dto.ListLecturesResponse}
// @Router /lectures [get]
func (h *LectureHandler) ListLectures(c *gin.Context) {
	var params dto.ListLecturesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBadRequest(c, err)
		return
	}
	params.Normalize()

	lectures, total, err := h.lectureService.ListLectures(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.ListLecturesResponse{
		Items:      lectures,
		Pagination: dto.NewPagination(total, params.Page, params.Limit),
	}, "")
}

// UpdateLecture godoc
// @Summary Update lecture (owner)
// @Tags lectures
// @Accept json
// @Produce json
// @Param id path string true "Lecture ID"
// @Param lecture body dto.UpdateLectureRequest true "Lecture fields"
// @Success 200 {object} dto.APIResponse{data=domain.Lecture}
// @Failure 403 {object} dto.APIResponse
// @Security BearerAuth
// @Router /lectures/{id} [put]
func (h *LectureHandler) UpdateLecture(c *gin.Context) {
	var req dto.UpdateLectureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	lecture, err := h.lectureService.UpdateLecture(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, lecture, "Lecture updated")
}

// DeleteLecture godoc
// @Summary Delete lecture (owner)
// @Tags lectures
// @Produce json
// @Param id path string true "Lecture ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Security BearerAuth
// @Router /lectures/{id} [delete]
func (h *LectureHandler) DeleteLecture(c *gin.Context) {
	if err := h.lectureService.DeleteLecture(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, nil, "Lecture deleted")
}
