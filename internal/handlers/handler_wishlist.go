package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/wishzy/wishzy-backend/internal/core/ports/services"
	"github.com/wishzy/wishzy-backend/internal/dto"
	"github.com/wishzy/wishzy-backend/internal/middleware"
)

// WishlistHandler handles wishlist requests.
type WishlistHandler struct {
	wishlistService portssvc.WishlistSvcFacade
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(wishlistService portssvc.WishlistSvcFacade) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService}
}

// registerWishlistRoutes sets up the authenticated wishlist routes.
func registerWishlistRoutes(rg *gin.RouterGroup, wishlistService portssvc.WishlistSvcFacade) {
	h := NewWishlistHandler(wishlistService)

	wishlist := rg.Group("/wishlist")
	{
		wishlist.GET("", h.GetWishlist)
		wishlist.POST("", h.AddCourse)
		wishlist.DELETE("/:courseId", h.RemoveCourse)
	}
}

// GetWishlist godoc
// @Summary Get own wishlist
// @Tags wishlist
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.WishlistResponse}
// @Security BearerAuth
// @Router /wishlist [get]
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.APIResponse{Success: false, Message: "Authentication required", URL: c.Request.URL.Path})
		return
	}

	wishlist, courses, err := h.wishlistService.GetWishlist(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.WishlistResponse{
		Wishlist:      *wishlist,
		CourseDetails: courses,
	}, "")
}

// AddCourse godoc
// @Summary Add course to wishlist
// @Tags wishlist
// @Accept json
// @Produce json
// @Param course body dto.AddToWishlistRequest true "Course to save"
// @Success 200 {object} dto.APIResponse{data=domain.Wishlist}
// @Failure 409 {object} dto.APIResponse
// @Security BearerAuth
// @Router /wishlist [post]
func (h *WishlistHandler) AddCourse(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.APIResponse{Success: false, Message: "Authentication required", URL: c.Request.URL.Path})
		return
	}

	var req dto.AddToWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	wishlist, err := h.wishlistService.AddCourse(c.Request.Context(), userID, req.CourseID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, wishlist, "Course added to wishlist")
}

// RemoveCourse godoc
// @Summary Remove course from wishlist
// @Tags wishlist
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} dto.APIResponse{data=domain.Wishlist}
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /wishlist/{courseId} [delete]
func (h *WishlistHandler) RemoveCourse(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.APIResponse{Success: false, Message: "Authentication required", URL: c.Request.URL.Path})
		return
	}

	wishlist, err := h.wishlistService.RemoveCourse(c.Request.Context(), userID, c.Param("courseId"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, wishlist, "Course removed from wishlist")
}
