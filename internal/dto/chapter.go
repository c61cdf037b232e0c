package dto

import "github.com/wishzy/wishzy-backend/internal/core/domain"

// CreateChapterRequest is the body for POST /chapters.
type CreateChapterRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description *string `json:"description"`
	OrderIndex  int     `json:"orderIndex"`
	CourseID    string  `json:"courseId" binding:"required,uuid"`
}

// UpdateChapterRequest is the body for PUT /chapters/:id.
type UpdateChapterRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	OrderIndex  *int    `json:"orderIndex"`
}

// ListChaptersParams are the query parameters for GET /chapters.
type ListChaptersParams struct {
	PageParams
	CourseID string `form:"courseId"`
}

// ListChaptersResponse wraps a paginated chapter listing.
type ListChaptersResponse struct {
	Items      []domain.Chapter `json:"items"`
	Pagination Pagination       `json:"pagination"`
}
