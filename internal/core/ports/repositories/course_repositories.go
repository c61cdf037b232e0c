package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wishzy/wishzy-backend/internal/core/domain"
)

// CourseFilter narrows course listings.
type CourseFilter struct {
	Name       string
	CategoryID string
	CreatedBy  string
	Rating     *int
	Level      string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Status     *bool
	Limit      int
	Offset     int
}

// CourseRepositoryFacade combines all course repository operations.
type CourseRepositoryFacade interface {
	// SaveCourse persists a new course.
	SaveCourse(ctx context.Context, course domain.Course) error

	// FindCourseByID retrieves a course by ID.
	FindCourseByID(ctx context.Context, courseID string) (*domain.Course, error)

	// FindCourses retrieves a filtered page of courses and the total count.
	FindCourses(ctx context.Context, filter CourseFilter) ([]domain.Course, int, error)

	// FindHotCourses retrieves published courses ordered by average rating
	// then student count.
	FindHotCourses(ctx context.Context, limit, offset int) ([]domain.Course, int, error)

	// FindCoursesByIDs retrieves course summaries for the given ids.
	FindCoursesByIDs(ctx context.Context, courseIDs []string) ([]domain.Course, error)

	// UpdateCourse updates an existing course.
	UpdateCourse(ctx context.Context, course domain.Course) error

	// MarkCourseDeleted soft deletes a course.
	MarkCourseDeleted(ctx context.Context, courseID string, deletedAt time.Time) error
}
