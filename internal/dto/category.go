package dto

import "github.com/wishzy/wishzy-backend/internal/core/domain"

// CreateCategoryRequest is the body for POST /categories.
type CreateCategoryRequest struct {
	Name     string  `json:"name" binding:"required,max=255"`
	Notes    *string `json:"notes"`
	ParentID *string `json:"parentId"`
}

// UpdateCategoryRequest is the body for PUT /categories/:id.
type UpdateCategoryRequest struct {
	Name     *string `json:"name"`
	Notes    *string `json:"notes"`
	ParentID *string `json:"parentId"`
}

// ListCategoriesParams are the query parameters for GET /categories.
type ListCategoriesParams struct {
	PageParams
	Name          string `form:"name"`
	ParentID      string `form:"parentId"`
	IsSubCategory *bool  `form:"isSubCategory"`
}

// ListCategoriesResponse wraps a paginated category listing.
type ListCategoriesResponse struct {
	Items      []domain.Category `json:"items"`
	Pagination Pagination        `json:"pagination"`
}
