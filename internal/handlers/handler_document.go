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

// DocumentHandler handles supplementary document requests.
type DocumentHandler struct {
	documentService portssvc.DocumentSvcFacade
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(documentService portssvc.DocumentSvcFacade) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// registerPublicDocumentRoutes sets up unauthenticated document reads.
func registerPublicDocumentRoutes(rg *gin.RouterGroup, documentService portssvc.DocumentSvcFacade) {
	h := NewDocumentHandler(documentService)

	documents := rg.Group("/documents")
	{
		documents.GET("", h.ListDocuments)
		documents.GET("/:id", h.GetDocument)
	}
}

// registerDocumentRoutes sets up the authenticated document writes.
func registerDocumentRoutes(rg *gin.RouterGroup, documentService portssvc.DocumentSvcFacade) {
	h := NewDocumentHandler(documentService)

	owned := middleware.RequireOwnership("document", func(ctx context.Context, id string) (domain.Ownable, error) {
		return documentService.GetDocumentByID(ctx, id)
	})

	documents := rg.Group("/documents", middleware.RequireRoles(domain.RoleInstructor, domain.RoleAdmin))
	{
		documents.POST("", h.CreateDocument)
		documents.PUT("/:id", owned, h.UpdateDocument)
		documents.DELETE("/:id", owned, h.DeleteDocument)
	}
}

// CreateDocument godoc
// @Summary Attach document to a course, chapter or lecture (instructor)
// @Tags documents
// @Accept json
// @Produce json
// @Param document body dto.CreateDocumentRequest true "Document info"
// @Success 201 {object} dto.APIResponse{data=domain.Document}
// @Failure 400 {object} dto.APIResponse
// @Security BearerAuth
// @Router /documents [post]
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.APIResponse{Success: false, Message: "Authentication required", URL: c.Request.URL.Path})
		return
	}

	var req dto.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	document, err := h.documentService.CreateDocument(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, document, "Document created")
}

// GetDocument godoc
// @Summary Get document by ID
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} dto.APIResponse{data=domain.Document}
// @Failure 404 {object} dto.APIResponse
// @Router /documents/{id} [get]
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	document, err := h.documentService.GetDocumentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, document, "")
}

// ListDocuments godoc
// @Summary List documents of an entity
// @Tags documents
// @Produce json
// @Param entityId query string false "Owning entity ID"
// @Param entityType query string false "Owning entity type (course, chapter, lecture)"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} dto.APIResponse{data=dto.ListDocumentsResponse}
// @Router /documents [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	var params dto.ListDocumentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBadRequest(c, err)
		return
	}
	params.Normalize()

	documents, total, err := h.documentService.ListDocuments(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.ListDocumentsResponse{
		Items:      documents,
		Pagination: dto.NewPagination(total, params.Page, params.Limit),
	}, "")
}

// UpdateDocument godoc
// @Summary Update document (owner)
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param document body dto.UpdateDocumentRequest true "Document fields"
// @Success 200 {object} dto.APIResponse{data=domain.Document}
// @Failure 403 {object} dto.APIResponse
// @Security BearerAuth
// @Router /documents/{id} [put]
func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	var req dto.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	document, err := h.documentService.UpdateDocument(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, document, "Document updated")
}

// DeleteDocument godoc
// @Summary Delete document (owner)
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Security BearerAuth
// @Router /documents/{id} [delete]
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	if err := h.documentService.DeleteDocument(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, nil, "Document deleted")
}
