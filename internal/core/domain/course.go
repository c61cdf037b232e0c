package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wishzy/wishzy-backend/internal/apperrors"
)

// CourseLevel enumerates course difficulty levels.
type CourseLevel string

const (
	LevelBeginner     CourseLevel = "beginner"
	LevelIntermediate CourseLevel = "intermediate"
	LevelAdvanced     CourseLevel = "advanced"
)

// SaleType enumerates course sale discount kinds.
type SaleType string

const (
	SalePercent SaleType = "percent"
	SaleFixed   SaleType = "fixed"
)

// SaleInfo describes an optional time-boxed discount on a course.
type SaleInfo struct {
	SaleType      SaleType        `json:"saleType,omitempty"`
	Value         decimal.Decimal `json:"value"`
	SaleStartDate *time.Time      `json:"saleStartDate,omitempty"`
	SaleEndDate   *time.Time      `json:"saleEndDate,omitempty"`
}

// Course is the top of the course/chapter/lecture hierarchy.
type Course struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Slug             string          `json:"slug"`
	Description      *string         `json:"description,omitempty"`
	Notes            *string         `json:"notes,omitempty"`
	Thumbnail        *string         `json:"thumbnail,omitempty"`
	Price            decimal.Decimal `json:"price"`
	SaleInfo         *SaleInfo       `json:"saleInfo,omitempty"`
	Rating           int             `json:"rating"`
	Status           bool            `json:"status"`
	AverageRating    decimal.Decimal `json:"averageRating"`
	NumberOfStudents int             `json:"numberOfStudents"`
	Level            CourseLevel     `json:"level"`
	TotalDuration    int             `json:"totalDuration"`
	CategoryID       string          `json:"categoryId"`
	CreatedBy        string          `json:"createdBy"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
	DeletedAt        *time.Time      `json:"deletedAt,omitempty"`

	Creator  *User     `json:"creator,omitempty"`
	Category *Category `json:"category,omitempty"`
	Chapters []Chapter `json:"chapters,omitempty"`
}

func (c *Course) GetID() string        { return c.ID }
func (c *Course) GetCreatedBy() string { return c.CreatedBy }

// maxSalePercent caps percentage sales on a course.
var maxSalePercent = decimal.NewFromInt(50)

// ValidateSale enforces the sale invariants. Called explicitly by the course
// service before persisting; there are no implicit lifecycle hooks.
func (c *Course) ValidateSale() error {
	if c.SaleInfo == nil {
		return nil
	}
	if c.SaleInfo.SaleType == SalePercent && c.SaleInfo.Value.GreaterThan(maxSalePercent) {
		return fmt.Errorf("%w: sale percentage cannot exceed 50%%", apperrors.ErrValidation)
	}
	return nil
}
