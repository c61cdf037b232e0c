package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/wishzy/wishzy-backend/internal/apperrors"
	"github.com/wishzy/wishzy-backend/internal/core/domain"
)

func TestCourseValidateSale(t *testing.T) {
	t.Run("no sale info", func(t *testing.T) {
		course := &domain.Course{Price: decimal.NewFromInt(100000)}
		assert.NoError(t, course.ValidateSale())
	})

	t.Run("percent within limit", func(t *testing.T) {
		course := &domain.Course{
			Price:    decimal.NewFromInt(100000),
			SaleInfo: &domain.SaleInfo{SaleType: domain.SalePercent, Value: decimal.NewFromInt(50)},
		}
		assert.NoError(t, course.ValidateSale())
	})

	t.Run("percent above limit", func(t *testing.T) {
		course := &domain.Course{
			Price:    decimal.NewFromInt(100000),
			SaleInfo: &domain.SaleInfo{SaleType: domain.SalePercent, Value: decimal.NewFromInt(51)},
		}
		assert.ErrorIs(t, course.ValidateSale(), apperrors.ErrValidation)
	})

	t.Run("fixed sale above 50 is fine", func(t *testing.T) {
		course := &domain.Course{
			Price:    decimal.NewFromInt(100000),
			SaleInfo: &domain.SaleInfo{SaleType: domain.SaleFixed, Value: decimal.NewFromInt(90000)},
		}
		assert.NoError(t, course.ValidateSale())
	})
}
