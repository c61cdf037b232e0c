package dto

import "github.com/wishzy/wishzy-backend/internal/core/domain"

// CreateDocumentRequest is the body for POST /documents.
type CreateDocumentRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description *string `json:"description"`
	Notes       *string `json:"notes"`
	FileURL     *string `json:"fileUrl" binding:"omitempty,max=500"`
	EntityID    string  `json:"entityId" binding:"required,uuid"`
	EntityType  string  `json:"entityType" binding:"required,oneof=course chapter lecture"`
}

// UpdateDocumentRequest is the body for PUT /documents/:id.
type UpdateDocumentRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Notes       *string `json:"notes"`
	FileURL     *string `json:"fileUrl" binding:"omitempty,max=500"`
}

// ListDocumentsParams are the query parameters for GET /documents.
type ListDocumentsParams struct {
	PageParams
	EntityID   string `form:"entityId"`
	EntityType string `form:"entityType"`
}

// ListDocumentsResponse wraps a paginated document listing.
type ListDocumentsResponse struct {
	Items      []domain.Document `json:"items"`
	Pagination Pagination        `json:"pagination"`
}
