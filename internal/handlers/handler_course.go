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

// CourseHandler handles course catalog requests.
type CourseHandler struct {
	courseService portssvc.CourseSvcFacade
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(courseService portssvc.CourseSvcFacade) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// registerPublicCourseRoutes sets up unauthenticated course reads.
func registerPublicCourseRoutes(rg *gin.RouterGroup, courseService portssvc.CourseSvcFacade) {
	h := NewCourseHandler(courseService)

	courses := rg.Group("/courses")
	{
		courses.GET("", h.ListCourses)
		courses.GET("/hot", h.ListHotCourses)
		courses.GET("/:id", h.GetCourse)
	}
}

// registerCourseRoutes sets up the authenticated course writes. Mutations on
// an existing course require ownership (or admin).
func registerCourseRoutes(rg *gin.RouterGroup, courseService portssvc.CourseSvcFacade) {
	h := NewCourseHandler(courseService)

	owned := middleware.RequireOwnership("course", func(ctx context.Context, id string) (domain.Ownable, error) {
		return courseService.GetCourseByID(ctx, id)
	})

	courses := rg.Group("/courses")
	{
		courses.GET("/mine", h.ListMyCourses)
		instructor := courses.Group("", middleware.RequireRoles(domain.RoleInstructor, domain.RoleAdmin))
		{
			instructor.POST("", h.CreateCourse)
			instructor.PUT("/:id", owned, h.UpdateCourse)
			instructor.PUT("/:id/status", owned, h.ToggleCourseStatus)
			instructor.DELETE("/:id", owned, h.DeleteCourse)
		}
	}
}

// CreateCourse godoc
// @Summary Create course (instructor)
// @Tags courses
// @Accept json
// @Produce json
// @Param course body dto.CreateCourseRequest true "Course info"
// @Success 201 {object} dto.APIResponse{data=domain.Course}
// @Failure 400 {object} dto.APIResponse
// @Security BearerAuth
// @Router /courses [post]
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.APIResponse{Success: false, Message: "Authentication required", URL: c.Request.URL.Path})
		return
	}

	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	course, err := h.courseService.CreateCourse(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, course, "Course created")
}

// GetCourse godoc
// @Summary Get course by ID
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} dto.APIResponse{data=domain.Course}
// @Failure 404 {object} dto.APIResponse
// @Router /courses/{id} [get]
func (h *CourseHandler) GetCourse(c *gin.Context) {
	course, err := h.courseService.GetCourseByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, course, "")
}

// ListCourses godoc
// @Summary List courses
// @Tags courses
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param name query string false "Filter by name"
// @Param categoryId query string false "Filter by category"
// @Param rating query int false "Minimum average rating"
// @Param level query string false "Filter by level"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Success 200 {object} dto.APIResponse{data=dto.ListCoursesResponse}
// @Router /courses [get]
func (h *CourseHandler) ListCourses(c *gin.Context) {
	var params dto.ListCoursesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBadRequest(c, err)
		return
	}
	params.Normalize()

	courses, total, err := h.courseService.ListCourses(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.ListCoursesResponse{
		Items:      courses,
		Pagination: dto.NewPagination(total, params.Page, params.Limit),
	}, "")
}

// ListHotCourses godoc
// @Summary List hot courses
// @Description Published courses ranked by rating and enrollment count.
// @Tags courses
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} dto.APIResponse{data=dto.ListCoursesResponse}
// @Router /courses/hot [get]
func (h *CourseHandler) ListHotCourses(c *gin.Context) {
	var params dto.PageParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBadRequest(c, err)
		return
	}
	params.Normalize()

	courses, total, err := h.courseService.ListHotCourses(c.Request.Context(), params.Limit, params.Offset())
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.ListCoursesResponse{
		Items:      courses,
		Pagination: dto.NewPagination(total, params.Page, params.Limit),
	}, "")
}

// ListMyCourses godoc
// @Summary List own courses (instructor)
// @Tags courses
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} dto.APIResponse{data=dto.ListCoursesResponse}
// @Security BearerAuth
// @Router /courses/mine [get]
func (h *CourseHandler) ListMyCourses(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.APIResponse{Success: false, Message: "Authentication required", URL: c.Request.URL.Path})
		return
	}

	var params dto.PageParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBadRequest(c, err)
		return
	}
	params.Normalize()

	courses, total, err := h.courseService.ListInstructorCourses(c.Request.Context(), userID, params.Limit, params.Offset())
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.ListCoursesResponse{
		Items:      courses,
		Pagination: dto.NewPagination(total, params.Page, params.Limit),
	}, "")
}

// UpdateCourse godoc
// @Summary Update course (owner)
// @Tags courses
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Param course body dto.UpdateCourseRequest true "Course fields"
// @Success 200 {object} dto.APIResponse{data=domain.Course}
// @Failure 403 {object} dto.APIResponse
// @Security BearerAuth
// @Router /courses/{id} [put]
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	var req dto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	course, err := h.courseService.UpdateCourse(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, course, "Course updated")
}

// ToggleCourseStatus godoc
// @Summary Publish or unpublish course (owner)
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} dto.APIResponse{data=domain.Course}
// @Failure 403 {object} dto.APIResponse
// @Security BearerAuth
// @Router /courses/{id}/status [put]
func (h *CourseHandler) ToggleCourseStatus(c *gin.Context) {
	course, err := h.courseService.ToggleCourseStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, course, "Course status updated")
}

// DeleteCourse godoc
// @Summary Delete course (owner)
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Security BearerAuth
// @Router /courses/{id} [delete]
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	if err := h.courseService.DeleteCourse(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, nil, "Course deleted")
}
