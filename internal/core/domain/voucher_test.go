package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/wishzy/wishzy-backend/internal/apperrors"
	"github.com/wishzy/wishzy-backend/internal/core/domain"
)

func validVoucher() *domain.Voucher {
	return &domain.Voucher{
		Code:          "SUMMER10",
		Name:          "Summer promo",
		DiscountValue: decimal.NewFromInt(10),
		DiscountType:  domain.DiscountPercent,
		ApplyScope:    domain.ScopeAll,
		IsActive:      true,
		StartDate:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestVoucherValidate(t *testing.T) {
	t.Run("valid voucher", func(t *testing.T) {
		assert.NoError(t, validVoucher().Validate())
	})

	t.Run("percent above 100", func(t *testing.T) {
		voucher := validVoucher()
		voucher.DiscountValue = decimal.NewFromInt(120)
		assert.ErrorIs(t, voucher.Validate(), apperrors.ErrValidation)
	})

	t.Run("fixed value above 100 is fine", func(t *testing.T) {
		voucher := validVoucher()
		voucher.DiscountType = domain.DiscountFixed
		voucher.DiscountValue = decimal.NewFromInt(50000)
		assert.NoError(t, voucher.Validate())
	})

	t.Run("non-positive discount value", func(t *testing.T) {
		voucher := validVoucher()
		voucher.DiscountValue = decimal.Zero
		assert.ErrorIs(t, voucher.Validate(), apperrors.ErrValidation)
	})

	t.Run("start date not before end date", func(t *testing.T) {
		voucher := validVoucher()
		voucher.EndDate = voucher.StartDate
		assert.ErrorIs(t, voucher.Validate(), apperrors.ErrValidation)
	})

	t.Run("category scope without category", func(t *testing.T) {
		voucher := validVoucher()
		voucher.ApplyScope = domain.ScopeCategory
		assert.ErrorIs(t, voucher.Validate(), apperrors.ErrValidation)
	})

	t.Run("course scope without course", func(t *testing.T) {
		voucher := validVoucher()
		voucher.ApplyScope = domain.ScopeCourse
		assert.ErrorIs(t, voucher.Validate(), apperrors.ErrValidation)
	})

	t.Run("per user limit must be positive", func(t *testing.T) {
		limit := 0
		voucher := validVoucher()
		voucher.PerUserLimit = &limit
		assert.ErrorIs(t, voucher.Validate(), apperrors.ErrValidation)
	})

	t.Run("total limit must be positive", func(t *testing.T) {
		limit := -1
		voucher := validVoucher()
		voucher.TotalLimit = &limit
		assert.ErrorIs(t, voucher.Validate(), apperrors.ErrValidation)
	})

	t.Run("min order amount above max discount amount", func(t *testing.T) {
		minAmount := decimal.NewFromInt(100000)
		maxAmount := decimal.NewFromInt(50000)
		voucher := validVoucher()
		voucher.MinOrderAmount = &minAmount
		voucher.MaxDiscountAmount = &maxAmount
		assert.ErrorIs(t, voucher.Validate(), apperrors.ErrValidation)
	})
}
