package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wishzy/wishzy-backend/internal/core/domain"
	portssvc "github.com/wishzy/wishzy-backend/internal/core/ports/services"
	"github.com/wishzy/wishzy-backend/internal/dto"
	"github.com/wishzy/wishzy-backend/internal/middleware"
)

// CategoryHandler handles category management requests.
type CategoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService portssvc.CategorySvcFacade) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// registerPublicCategoryRoutes sets up unauthenticated category reads.
func registerPublicCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvcFacade) {
	h := NewCategoryHandler(categoryService)

	categories := rg.Group("/categories")
	{
		categories.GET("", h.ListCategories)
		categories.GET("/:id", h.GetCategory)
	}
}

// registerCategoryRoutes sets up the admin-only category writes.
func registerCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvcFacade) {
	h := NewCategoryHandler(categoryService)

	categories := rg.Group("/categories", middleware.RequireRoles(domain.RoleAdmin))
	{
		categories.POST("", h.CreateCategory)
		categories.PUT("/:id", h.UpdateCategory)
		categories.DELETE("/:id", h.DeleteCategory)
		categories.PUT("/:id/restore", h.RestoreCategory)
		categories.DELETE("/:id/permanent", h.HardDeleteCategory)
	}
}

// CreateCategory godoc
// @Summary Create category (admin)
// @Tags categories
// @Accept json
// @Produce json
// @Param category body dto.CreateCategoryRequest true "Category info"
// @Success 201 {object} dto.APIResponse{data=domain.Category}
// @Failure 400 {object} dto.APIResponse
// @Security BearerAuth
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, category, "Category created")
}

// GetCategory godoc
// @Summary Get category by ID
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} dto.APIResponse{data=domain.Category}
// @Failure 404 {object} dto.APIResponse
// @Router /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	category, err := h.categoryService.GetCategoryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, category, "")
}

// ListCategories godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param name query string false "Filter by name"
// @Param parentId query string false "Filter by parent category"
// @Param isSubCategory query bool false "Only sub or top-level categories"
// @Success 200 {object} dto.APIResponse{data=dto.ListCategoriesResponse}
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	var params dto.ListCategoriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBadRequest(c, err)
		return
	}
	params.Normalize()

	categories, total, err := h.categoryService.ListCategories(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.ListCategoriesResponse{
		Items:      categories,
		Pagination: dto.NewPagination(total, params.Page, params.Limit),
	}, "")
}

// UpdateCategory godoc
// @Summary Update category (admin)
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body dto.UpdateCategoryRequest true "Category fields"
// @Success 200 {object} dto.APIResponse{data=domain.Category}
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, category, "Category updated")
}

// DeleteCategory godoc
// @Summary Soft delete category and descendants (admin)
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.categoryService.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, nil, "Category deleted")
}

// RestoreCategory godoc
// @Summary Restore soft-deleted category and descendants (admin)
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse
// @Security BearerAuth
// @Router /categories/{id}/restore [put]
func (h *CategoryHandler) RestoreCategory(c *gin.Context) {
	if err := h.categoryService.RestoreCategory(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, nil, "Category restored")
}

// HardDeleteCategory godoc
// @Summary Permanently delete category and descendants (admin)
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /categories/{id}/permanent [delete]
func (h *CategoryHandler) HardDeleteCategory(c *gin.Context) {
	if err := h.categoryService.HardDeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, nil, "Category permanently deleted")
}
