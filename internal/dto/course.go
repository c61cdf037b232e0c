package dto

import (
	"github.com/shopspring/decimal"
	"github.com/wishzy/wishzy-backend/internal/core/domain"
)

// CreateCourseRequest is the body for POST /courses.
type CreateCourseRequest struct {
	Name        string           `json:"name" binding:"required,max=255"`
	Description *string          `json:"description"`
	Notes       *string          `json:"notes"`
	Thumbnail   *string          `json:"thumbnail"`
	Price       decimal.Decimal  `json:"price" binding:"required"`
	SaleInfo    *domain.SaleInfo `json:"saleInfo"`
	Level       string           `json:"level" binding:"omitempty,oneof=beginner intermediate advanced"`
	CategoryID  string           `json:"categoryId" binding:"required,uuid"`
}

// UpdateCourseRequest is the body for PUT /courses/:id.
type UpdateCourseRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Notes       *string          `json:"notes"`
	Thumbnail   *string          `json:"thumbnail"`
	Price       *decimal.Decimal `json:"price"`
	SaleInfo    *domain.SaleInfo `json:"saleInfo"`
	Level       *string          `json:"level" binding:"omitempty,oneof=beginner intermediate advanced"`
	CategoryID  *string          `json:"categoryId" binding:"omitempty,uuid"`
}

// ListCoursesParams are the query parameters for GET /courses.
type ListCoursesParams struct {
	PageParams
	Name       string           `form:"name"`
	CategoryID string           `form:"categoryId"`
	CreatedBy  string           `form:"createdBy"`
	Rating     *int             `form:"rating"`
	Level      string           `form:"level"`
	MinPrice   *decimal.Decimal `form:"minPrice"`
	MaxPrice   *decimal.Decimal `form:"maxPrice"`
	Status     *bool            `form:"status"`
}

// ListCoursesResponse wraps a paginated course listing.
type ListCoursesResponse struct {
	Items      []domain.Course `json:"items"`
	Pagination Pagination      `json:"pagination"`
}
