package services

import (
	"context"

	"github.com/wishzy/wishzy-backend/internal/core/domain"
	"github.com/wishzy/wishzy-backend/internal/dto"
)

// CategorySvcFacade defines category management operations.
type CategorySvcFacade interface {
	// CreateCategory creates a category, deriving its slug from the name.
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)

	// GetCategoryByID retrieves a live category by ID.
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategories retrieves a filtered page of categories and the total count.
	ListCategories(ctx context.Context, params dto.ListCategoriesParams) ([]domain.Category, int, error)

	// UpdateCategory updates name, description or parent of a category.
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)

	// DeleteCategory soft deletes a category and all of its descendants.
	DeleteCategory(ctx context.Context, categoryID string) error

	// RestoreCategory restores a soft-deleted category and its descendants.
	RestoreCategory(ctx context.Context, categoryID string) error

	// HardDeleteCategory permanently removes a category and its descendants.
	HardDeleteCategory(ctx context.Context, categoryID string) error
}

// CourseReaderSvc defines read operations for courses.
type CourseReaderSvc interface {
	// GetCourseByID retrieves a course with its creator and category.
	GetCourseByID(ctx context.Context, courseID string) (*domain.Course, error)

	// ListCourses retrieves a filtered page of courses and the total count.
	ListCourses(ctx context.Context, params dto.ListCoursesParams) ([]domain.Course, int, error)

	// ListHotCourses retrieves published courses ranked by rating and popularity.
	ListHotCourses(ctx context.Context, limit, offset int) ([]domain.Course, int, error)

	// ListInstructorCourses retrieves the courses created by an instructor.
	ListInstructorCourses(ctx context.Context, instructorID string, limit, offset int) ([]domain.Course, int, error)
}

// CourseWriterSvc defines write operations for courses.
type CourseWriterSvc interface {
	// CreateCourse creates a course owned by the requesting instructor.
	CreateCourse(ctx context.Context, creatorID string, req dto.CreateCourseRequest) (*domain.Course, error)

	// UpdateCourse updates an existing course.
	UpdateCourse(ctx context.Context, courseID string, req dto.UpdateCourseRequest) (*domain.Course, error)

	// ToggleCourseStatus flips a course between draft and published.
	ToggleCourseStatus(ctx context.Context, courseID string) (*domain.Course, error)

	// DeleteCourse soft deletes a course.
	DeleteCourse(ctx context.Context, courseID string) error
}

// CourseSvcFacade combines all course-related service interfaces.
type CourseSvcFacade interface {
	CourseReaderSvc
	CourseWriterSvc
}
