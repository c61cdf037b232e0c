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

// CommentHandler handles comment requests on courses and lectures.
type CommentHandler struct {
	commentService portssvc.CommentSvcFacade
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService portssvc.CommentSvcFacade) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// registerPublicCommentRoutes sets up unauthenticated comment reads.
func registerPublicCommentRoutes(rg *gin.RouterGroup, commentService portssvc.CommentSvcFacade) {
	h := NewCommentHandler(commentService)

	comments := rg.Group("/comments")
	{
		comments.GET("", h.ListComments)
		comments.GET("/:id", h.GetComment)
		comments.GET("/:id/replies", h.ListReplies)
	}
}

// registerCommentRoutes sets up the authenticated comment writes. Editing and
// deleting require authorship (or admin).
func registerCommentRoutes(rg *gin.RouterGroup, commentService portssvc.CommentSvcFacade) {
	h := NewCommentHandler(commentService)

	owned := middleware.RequireOwnership("comment", func(ctx context.Context, id string) (domain.Ownable, error) {
		return commentService.GetCommentByID(ctx, id)
	})

	comments := rg.Group("/comments")
	{
		comments.POST("", h.CreateComment)
		comments.PUT("/:id", owned, h.UpdateComment)
		comments.DELETE("/:id", owned, h.DeleteComment)
		comments.PUT("/:id/like", h.LikeComment)
		comments.PUT("/:id/dislike", h.DislikeComment)
	}
}

// CreateComment godoc
// @Summary Create comment or reply
// @Description Targets exactly one of courseId/lectureId; parentId makes it a
// @Description reply. Replies cannot be nested.
// @Tags comments
// @Accept json
// @Produce json
// @Param comment body dto.CreateCommentRequest true "Comment info"
// @Success 201 {object} dto.APIResponse{data=domain.Comment}
// @Failure 400 {object} dto.APIResponse
// @Security BearerAuth
// @Router /comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.APIResponse{Success: false, Message: "Authentication required", URL: c.Request.URL.Path})
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, comment, "Comment created")
}

// GetComment godoc
// @Summary Get comment by ID
// @Tags comments
// @Produce json
// @Param id path string true "Comment ID"
// @Success 200 {object} dto.APIResponse{data=domain.Comment}
// @Failure 404 {object} dto.APIResponse
// @Router /comments/{id} [get]
func (h *CommentHandler) GetComment(c *gin.Context) {
	comment, err := h.commentService.GetCommentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, comment, "")
}

// ListComments godoc
// @Summary List top-level comments
// @Tags comments
// @Produce json
// @Param courseId query string false "Filter by course"
// @Param lectureId query string false "Filter by lecture"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} dto.APIResponse{data=dto.ListCommentsResponse}
// @Router /comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	var params dto.ListCommentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBadRequest(c, err)
		return
	}
	params.Normalize()

	comments, total, err := h.commentService.ListComments(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.ListCommentsResponse{
		Items:      comments,
		Pagination: dto.NewPagination(total, params.Page, params.Limit),
	}, "")
}

// ListReplies godoc
// @Summary List replies of a comment
// @Tags comments
// @Produce json
// @Param id path string true "Parent comment ID"
// @Success 200 {object} dto.APIResponse{data=[]domain.Comment}
// @Router /comments/{id}/replies [get]
func (h *CommentHandler) ListReplies(c *gin.Context) {
	replies, err := h.commentService.ListReplies(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, replies, "")
}

// UpdateComment godoc
// @Summary Update comment (author)
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Comment ID"
// @Param comment body dto.UpdateCommentRequest true "New content"
// @Success 200 {object} dto.APIResponse{data=domain.Comment}
// @Failure 403 {object} dto.APIResponse
// @Security BearerAuth
// @Router /comments/{id} [put]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	comment, err := h.commentService.UpdateComment(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, comment, "Comment updated")
}

// LikeComment godoc
// @Summary Like comment
// @Tags comments
// @Produce json
// @Param id path string true "Comment ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /comments/{id}/like [put]
func (h *CommentHandler) LikeComment(c *gin.Context) {
	if err := h.commentService.LikeComment(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, nil, "Comment liked")
}

// DislikeComment godoc
// @Summary Dislike comment
// @Tags comments
// @Produce json
// @Param id path string true "Comment ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /comments/{id}/dislike [put]
func (h *CommentHandler) DislikeComment(c *gin.Context) {
	if err := h.commentService.DislikeComment(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, nil, "Comment disliked")
}

// DeleteComment godoc
// @Summary Delete comment (author)
// @Tags comments
// @Produce json
// @Param id path string true "Comment ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Security BearerAuth
// @Router /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	if err := h.commentService.DeleteComment(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, nil, "Comment deleted")
}
