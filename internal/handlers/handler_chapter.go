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

// ChapterHandler handles chapter management requests.
type ChapterHandler struct {
	chapterService portssvc.ChapterSvcFacade
}

// NewChapterHandler creates a new ChapterHandler.
func NewChapterHandler(chapterService portssvc.ChapterSvcFacade) *ChapterHandler {
	return &ChapterHandler{chapterService: chapterService}
}

// registerPublicChapterRoutes sets up unauthenticated chapter reads.
func registerPublicChapterRoutes(rg *gin.RouterGroup, chapterService portssvc.ChapterSvcFacade) {
	h := NewChapterHandler(chapterService)

	chapters := rg.Group("/chapters")
	{
		chapters.GET("", h.ListChapters)
		chapters.GET("/:id", h.GetChapter)
	}
}

// registerChapterRoutes sets up the authenticated chapter writes.
func registerChapterRoutes(rg *gin.RouterGroup, chapterService portssvc.ChapterSvcFacade) {
	h := NewChapterHandler(chapterService)

	owned := middleware.RequireOwnership("chapter", func(ctx context.Context, id string) (domain.Ownable, error) {
		return chapterService.GetChapterByID(ctx, id)
	})

	chapters := rg.Group("/chapters", middleware.RequireRoles(domain.RoleInstructor, domain.RoleAdmin))
	{
		chapters.POST("", h.CreateChapter)
		chapters.PUT("/:id", owned, h.UpdateChapter)
		chapters.DELETE("/:id", owned, h.DeleteChapter)
	}
}

// CreateChapter godoc
// @Summary Create chapter (instructor)
// @Tags chapters
// @Accept json
// @Produce json
// @Param chapter body dto.CreateChapterRequest true "Chapter info"
// @Success 201 {object} dto.APIResponse{data=domain.Chapter}
// @Failure 400 {object} dto.APIResponse
// @Security BearerAuth
// @Router /chapters [post]
func (h *ChapterHandler) CreateChapter(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.APIResponse{Success: false, Message: "Authentication required", URL: c.Request.URL.Path})
		return
	}

	var req dto.CreateChapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	chapter, err := h.chapterService.CreateChapter(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, chapter, "Chapter created")
}

// GetChapter godoc
// @Summary Get chapter by ID
// @Tags chapters
// @Produce json
// @Param id path string true "Chapter ID"
// @Success 200 {object} dto.APIResponse{data=domain.Chapter}
// @Failure 404 {object} dto.APIResponse
// @Router /chapters/{id} [get]
func (h *ChapterHandler) GetChapter(c *gin.Context) {
	chapter, err := h.chapterService.GetChapterByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, chapter, "")
}

// ListChapters godoc
// @Summary List chapters of a course
// @Tags chapters
// @Produce json
// @Param courseId query string false "Course ID"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} dto.APIResponse{data=dto.ListChaptersResponse}
// @Router /chapters [get]
func (h *ChapterHandler) ListChapters(c *gin.Context) {
	var params dto.ListChaptersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBadRequest(c, err)
		return
	}
	params.Normalize()

	chapters, total, err := h.chapterService.ListChapters(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.ListChaptersResponse{
		Items:      chapters,
		Pagination: dto.NewPagination(total, params.Page, params.Limit),
	}, "")
}

// UpdateChapter godoc
// @Summary Update chapter (owner)
// @Tags chapters
// @Accept json
// @Produce json
// @Param id path string true "Chapter ID"
// @Param chapter body dto.UpdateChapterRequest true "Chapter fields"
// @Success 200 {object} dto.APIResponse{data=domain.Chapter}
// @Failure 403 {object} dto.APIResponse
// @Security BearerAuth
// @Router /chapters/{id} [put]
func (h *ChapterHandler) UpdateChapter(c *gin.Context) {
	var req dto.UpdateChapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	chapter, err := h.chapterService.UpdateChapter(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, chapter, "Chapter updated")
}

// DeleteChapter godoc
// @Summary Delete chapter (owner)
// @Tags chapters
// @Produce json
// @Param id path string true "Chapter ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Security BearerAuth
// @Router /chapters/{id} [delete]
func (h *ChapterHandler) DeleteChapter(c *gin.Context) {
	if err := h.chapterService.DeleteChapter(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, nil, "Chapter deleted")
}
