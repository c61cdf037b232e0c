package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wishzy/wishzy-backend/internal/apperrors"
	"github.com/wishzy/wishzy-backend/internal/core/domain"
)

var pricingNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func saleWindow(start, end time.Time) (*time.Time, *time.Time) {
	return &start, &end
}

func TestEffectiveCoursePrice(t *testing.T) {
	base := decimal.NewFromInt(200000)

	t.Run("no sale", func(t *testing.T) {
		course := &domain.Course{Price: base}
		assert.True(t, effectiveCoursePrice(course, pricingNow).Equal(base))
	})

	t.Run("percent sale in window", func(t *testing.T) {
		start, end := saleWindow(pricingNow.Add(-time.Hour), pricingNow.Add(time.Hour))
		course := &domain.Course{
			Price: base,
			SaleInfo: &domain.SaleInfo{
				SaleType:      domain.SalePercent,
				Value:         decimal.NewFromInt(25),
				SaleStartDate: start,
				SaleEndDate:   end,
			},
		}
		assert.True(t, effectiveCoursePrice(course, pricingNow).Equal(decimal.NewFromInt(150000)))
	})

	t.Run("fixed sale in window", func(t *testing.T) {
		start, end := saleWindow(pricingNow.Add(-time.Hour), pricingNow.Add(time.Hour))
		course := &domain.Course{
			Price: base,
			SaleInfo: &domain.SaleInfo{
				SaleType:      domain.SaleFixed,
				Value:         decimal.NewFromInt(50000),
				SaleStartDate: start,
				SaleEndDate:   end,
			},
		}
		assert.True(t, effectiveCoursePrice(course, pricingNow).Equal(decimal.NewFromInt(150000)))
	})

	t.Run("sale not yet started", func(t *testing.T) {
		start, end := saleWindow(pricingNow.Add(time.Hour), pricingNow.Add(2*time.Hour))
		course := &domain.Course{
			Price: base,
			SaleInfo: &domain.SaleInfo{
				SaleType:      domain.SalePercent,
				Value:         decimal.NewFromInt(25),
				SaleStartDate: start,
				SaleEndDate:   end,
			},
		}
		assert.True(t, effectiveCoursePrice(course, pricingNow).Equal(base))
	})

	t.Run("sale already over", func(t *testing.T) {
		start, end := saleWindow(pricingNow.Add(-2*time.Hour), pricingNow.Add(-time.Hour))
		course := &domain.Course{
			Price: base,
			SaleInfo: &domain.SaleInfo{
				SaleType:      domain.SaleFixed,
				Value:         decimal.NewFromInt(50000),
				SaleStartDate: start,
				SaleEndDate:   end,
			},
		}
		assert.True(t, effectiveCoursePrice(course, pricingNow).Equal(base))
	})

	t.Run("fixed sale larger than price floors at zero", func(t *testing.T) {
		course := &domain.Course{
			Price: decimal.NewFromInt(10000),
			SaleInfo: &domain.SaleInfo{
				SaleType: domain.SaleFixed,
				Value:    decimal.NewFromInt(99999),
			},
		}
		assert.True(t, effectiveCoursePrice(course, pricingNow).IsZero())
	})
}

func TestVoucherDiscount(t *testing.T) {
	categoryID := "cat-1"
	courseID := "course-1"
	course := &domain.Course{ID: courseID, CategoryID: categoryID}
	amount := decimal.NewFromInt(100000)

	activeVoucher := func() *domain.Voucher {
		return &domain.Voucher{
			DiscountValue: decimal.NewFromInt(10),
			DiscountType:  domain.DiscountPercent,
			ApplyScope:    domain.ScopeAll,
			IsActive:      true,
			StartDate:     pricingNow.Add(-time.Hour),
			EndDate:       pricingNow.Add(time.Hour),
		}
	}

	t.Run("percent discount", func(t *testing.T) {
		discount, err := voucherDiscount(activeVoucher(), course, amount, pricingNow)
		require.NoError(t, err)
		assert.True(t, discount.Equal(decimal.NewFromInt(10000)))
	})

	t.Run("fixed discount", func(t *testing.T) {
		voucher := activeVoucher()
		voucher.DiscountType = domain.DiscountFixed
		voucher.DiscountValue = decimal.NewFromInt(30000)
		discount, err := voucherDiscount(voucher, course, amount, pricingNow)
		require.NoError(t, err)
		assert.True(t, discount.Equal(decimal.NewFromInt(30000)))
	})

	t.Run("inactive voucher", func(t *testing.T) {
		voucher := activeVoucher()
		voucher.IsActive = false
		_, err := voucherDiscount(voucher, course, amount, pricingNow)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("outside validity window", func(t *testing.T) {
		voucher := activeVoucher()
		voucher.EndDate = pricingNow.Add(-time.Minute)
		_, err := voucherDiscount(voucher, course, amount, pricingNow)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("category scope mismatch", func(t *testing.T) {
		other := "cat-2"
		voucher := activeVoucher()
		voucher.ApplyScope = domain.ScopeCategory
		voucher.CategoryID = &other
		_, err := voucherDiscount(voucher, course, amount, pricingNow)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("category scope match", func(t *testing.T) {
		voucher := activeVoucher()
		voucher.ApplyScope = domain.ScopeCategory
		voucher.CategoryID = &categoryID
		discount, err := voucherDiscount(voucher, course, amount, pricingNow)
		require.NoError(t, err)
		assert.True(t, discount.Equal(decimal.NewFromInt(10000)))
	})

	t.Run("course scope mismatch", func(t *testing.T) {
		other := "course-2"
		voucher := activeVoucher()
		voucher.ApplyScope = domain.ScopeCourse
		voucher.CourseID = &other
		_, err := voucherDiscount(voucher, course, amount, pricingNow)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("below minimum order amount", func(t *testing.T) {
		minAmount := decimal.NewFromInt(500000)
		voucher := activeVoucher()
		voucher.MinOrderAmount = &minAmount
		_, err := voucherDiscount(voucher, course, amount, pricingNow)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("max discount cap", func(t *testing.T) {
		maxDiscount := decimal.NewFromInt(5000)
		voucher := activeVoucher()
		voucher.MaxDiscountAmount = &maxDiscount
		discount, err := voucherDiscount(voucher, course, amount, pricingNow)
		require.NoError(t, err)
		assert.True(t, discount.Equal(maxDiscount))
	})

	t.Run("discount never exceeds order amount", func(t *testing.T) {
		voucher := activeVoucher()
		voucher.DiscountType = domain.DiscountFixed
		voucher.DiscountValue = decimal.NewFromInt(999999)
		discount, err := voucherDiscount(voucher, course, amount, pricingNow)
		require.NoError(t, err)
		assert.True(t, discount.Equal(amount))
	})
}
