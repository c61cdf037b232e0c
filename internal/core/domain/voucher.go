package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wishzy/wishzy-backend/internal/apperrors"
)

// DiscountType enumerates voucher discount kinds.
type DiscountType string

const (
	DiscountFixed   DiscountType = "fixed"
	DiscountPercent DiscountType = "percent"
)

// ApplyScope enumerates what a voucher applies to.
type ApplyScope string

const (
	ScopeAll      ApplyScope = "all"
	ScopeCategory ApplyScope = "category"
	ScopeCourse   ApplyScope = "course"
)

// Voucher is a discount code created by an instructor or administrator.
type Voucher struct {
	ID                string           `json:"id"`
	Code              string           `json:"code"`
	Name              string           `json:"name"`
	DiscountValue     decimal.Decimal  `json:"discountValue"`
	DiscountType      DiscountType     `json:"discountType"`
	MaxDiscountAmount *decimal.Decimal `json:"maxDiscountAmount,omitempty"`
	MinOrderAmount    *decimal.Decimal `json:"minOrderAmount,omitempty"`
	PerUserLimit      *int             `json:"perUserLimit,omitempty"`
	TotalLimit        *int             `json:"totalLimit,omitempty"`
	ApplyScope        ApplyScope       `json:"applyScope"`
	CategoryID        *string          `json:"categoryId,omitempty"`
	CourseID          *string          `json:"courseId,omitempty"`
	IsActive          bool             `json:"isActive"`
	StartDate         time.Time        `json:"startDate"`
	EndDate           time.Time        `json:"endDate"`
	CreatedBy         string           `json:"createdBy"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
}

func (v *Voucher) GetID() string        { return v.ID }
func (v *Voucher) GetCreatedBy() string { return v.CreatedBy }

var hundredPercent = decimal.NewFromInt(100)

// Validate enforces the voucher invariants. Called explicitly by the voucher
// service before persisting.
func (v *Voucher) Validate() error {
	if v.DiscountType == DiscountPercent && v.DiscountValue.GreaterThan(hundredPercent) {
		return fmt.Errorf("%w: discount percentage cannot exceed 100%%", apperrors.ErrValidation)
	}
	if !v.DiscountValue.IsPositive() {
		return fmt.Errorf("%w: discount value must be greater than 0", apperrors.ErrValidation)
	}
	if !v.StartDate.Before(v.EndDate) {
		return fmt.Errorf("%w: start date must be before end date", apperrors.ErrValidation)
	}
	if v.ApplyScope == ScopeCategory && v.CategoryID == nil {
		return fmt.Errorf("%w: category ID is required when apply scope is category", apperrors.ErrValidation)
	}
	if v.ApplyScope == ScopeCourse && v.CourseID == nil {
		return fmt.Errorf("%w: course ID is required when apply scope is course", apperrors.ErrValidation)
	}
	if v.PerUserLimit != nil && *v.PerUserLimit <= 0 {
		return fmt.Errorf("%w: per user limit must be greater than 0", apperrors.ErrValidation)
	}
	if v.TotalLimit != nil && *v.TotalLimit <= 0 {
		return fmt.Errorf("%w: total limit must be greater than 0", apperrors.ErrValidation)
	}
	if v.MinOrderAmount != nil && v.MaxDiscountAmount != nil && v.MinOrderAmount.GreaterThan(*v.MaxDiscountAmount) {
		return fmt.Errorf("%w: minimum order amount cannot exceed maximum discount amount", apperrors.ErrValidation)
	}
	return nil
}
