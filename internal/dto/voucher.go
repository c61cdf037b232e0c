package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wishzy/wishzy-backend/internal/core/domain"
)

// CreateVoucherRequest is the body for POST /vouchers.
type CreateVoucherRequest struct {
	Code              string           `json:"code" binding:"required,max=100"`
	Name              string           `json:"name" binding:"required,max=100"`
	DiscountValue     decimal.Decimal  `json:"discountValue" binding:"required"`
	DiscountType      string           `json:"discountType" binding:"required,oneof=fixed percent"`
	MaxDiscountAmount *decimal.Decimal `json:"maxDiscountAmount"`
	MinOrderAmount    *decimal.Decimal `json:"minOrderAmount"`
	PerUserLimit      *int             `json:"perUserLimit"`
	TotalLimit        *int             `json:"totalLimit"`
	ApplyScope        string           `json:"applyScope" binding:"required,oneof=all category course"`
	CategoryID        *string          `json:"categoryId" binding:"omitempty,uuid"`
	CourseID          *string          `json:"courseId" binding:"omitempty,uuid"`
	IsActive          *bool            `json:"isActive"`
	StartDate         time.Time        `json:"startDate" binding:"required"`
	EndDate           time.Time        `json:"endDate" binding:"required"`
}

// UpdateVoucherRequest is the body for PUT /vouchers/:id.
type UpdateVoucherRequest struct {
	Name              *string          `json:"name"`
	DiscountValue     *decimal.Decimal `json:"discountValue"`
	DiscountType      *string          `json:"discountType" binding:"omitempty,oneof=fixed percent"`
	MaxDiscountAmount *decimal.Decimal `json:"maxDiscountAmount"`
	MinOrderAmount    *decimal.Decimal `json:"minOrderAmount"`
	PerUserLimit      *int             `json:"perUserLimit"`
	TotalLimit        *int             `json:"totalLimit"`
	IsActive          *bool            `json:"isActive"`
	StartDate         *time.Time       `json:"startDate"`
	EndDate           *time.Time       `json:"endDate"`
}

// ListVouchersParams are the query parameters for GET /vouchers.
type ListVouchersParams struct {
	PageParams
	Name         string `form:"name"`
	Code         string `form:"code"`
	DiscountType string `form:"discountType"`
	ApplyScope   string `form:"applyScope"`
	CategoryID   string `form:"categoryId"`
	CourseID     string `form:"courseId"`
	IsActive     *bool  `form:"isActive"`
}

// ListVouchersResponse wraps a paginated voucher listing.
type ListVouchersResponse struct {
	Items      []domain.Voucher `json:"items"`
	Pagination Pagination       `json:"pagination"`
}
