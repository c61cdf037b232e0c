package dto

import "github.com/wishzy/wishzy-backend/internal/core/domain"

// CreateLectureRequest is the body for POST /lectures.
type CreateLectureRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description *string `json:"description"`
	FileURL     string  `json:"fileUrl" binding:"required,max=500"`
	Duration    int     `json:"duration" binding:"required,min=1"`
	IsPreview   bool    `json:"isPreview"`
	OrderIndex  int     `json:"orderIndex"`
	ChapterID   string  `json:"chapterId" binding:"required,uuid"`
}

// UpdateLectureRequest is the body for PUT /lectures/:id.
type UpdateLectureRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	FileURL     *string `json:"fileUrl"`
	Duration    *int    `json:"duration" binding:"omitempty,min=1"`
	IsPreview   *bool   `json:"isPreview"`
	OrderIndex  *int    `json:"orderIndex"`
}

// ListLecturesParams are the query parameters for GET /lectures.
type ListLecturesParams struct {
	PageParams
	ChapterID string `form:"chapterId"`
}

// ListLecturesResponse wraps a paginated lecture listing.
type ListLecturesResponse struct {
	Items      []domain.Lecture `json:"items"`
	Pagination Pagination       `json:"pagination"`
}
