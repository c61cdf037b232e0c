package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/wishzy/wishzy-backend/internal/apperrors"
	"github.com/wishzy/wishzy-backend/internal/core/domain"
	portsrepo "github.com/wishzy/wishzy-backend/internal/core/ports/repositories"
	portssvc "github.com/wishzy/wishzy-backend/internal/core/ports/services"
	"github.com/wishzy/wishzy-backend/internal/dto"
	"github.com/wishzy/wishzy-backend/internal/middleware"
)

// courseService handles course management.
type courseService struct {
	courseRepo   portsrepo.CourseRepositoryFacade
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCourseService creates a new courseService.
func NewCourseService(courseRepo portsrepo.CourseRepositoryFacade, categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CourseSvcFacade {
	return &courseService{courseRepo: courseRepo, categoryRepo: categoryRepo}
}

var _ portssvc.CourseSvcFacade = (*courseService)(nil)

// CreateCourse creates a draft course owned by the requesting instructor.
func (s *courseService) CreateCourse(ctx context.Context, creatorID string, req dto.CreateCourseRequest) (*domain.Course, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	category, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate category: %w", err)
	}
	if category == nil {
		return nil, fmt.Errorf("%w: category not found", apperrors.ErrValidation)
	}

	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price cannot be negative", apperrors.ErrValidation)
	}

	level := domain.CourseLevel(req.Level)
	if req.Level == "" {
		level = domain.LevelBeginner
	}

	now := time.Now()
	course := domain.Course{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Slug:        slug.Make(req.Name),
		Description: req.Description,
		Notes:       req.Notes,
		Thumbnail:   req.Thumbnail,
		Price:       req.Price,
		SaleInfo:    req.SaleInfo,
		Status:      false,
		Level:       level,
		CategoryID:  req.CategoryID,
		CreatedBy:   creatorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := course.ValidateSale(); err != nil {
		return nil, err
	}

	if err := s.courseRepo.SaveCourse(ctx, course); err != nil {
		logger.Error("Failed to save course", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	logger.Info("Course created", slog.String("course_id", course.ID), slog.String("creator_id", creatorID))
	return &course, nil
}

// GetCourseByID retrieves a course with its creator and category.
func (s *courseService) GetCourseByID(ctx context.Context, courseID string) (*domain.Course, error) {
	course, err := s.courseRepo.FindCourseByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	if course == nil {
		return nil, fmt.Errorf("%w: course %s", apperrors.ErrNotFound, courseID)
	}
	return course, nil
}

// ListCourses retrieves a filtered page of courses and the total count.
func (s *courseService) ListCourses(ctx context.Context, params dto.ListCoursesParams) ([]domain.Course, int, error) {
	params.Normalize()
	filter := portsrepo.CourseFilter{
		Name:       params.Name,
		CategoryID: params.CategoryID,
		CreatedBy:  params.CreatedBy,
		Rating:     params.Rating,
		Level:      params.Level,
		MinPrice:   params.MinPrice,
		MaxPrice:   params.MaxPrice,
		Status:     params.Status,
		Limit:      params.Limit,
		Offset:     params.Offset(),
	}
	courses, total, err := s.courseRepo.FindCourses(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list courses: %w", err)
	}
	if courses == nil {
		courses = []domain.Course{}
	}
	return courses, total, nil
}

// ListHotCourses retrieves published courses ranked by rating then popularity.
func (s *courseService) ListHotCourses(ctx context.Context, limit, offset int) ([]domain.Course, int, error) {
	courses, total, err := s.courseRepo.FindHotCourses(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list hot courses: %w", err)
	}
	if courses == nil {
		courses = []domain.Course{}
	}
	return courses, total, nil
}

// ListInstructorCourses retrieves the courses created by an instructor.
func (s *courseService) ListInstructorCourses(ctx context.Context, instructorID string, limit, offset int) ([]domain.Course, int, error) {
	filter := portsrepo.CourseFilter{
		CreatedBy: instructorID,
		Limit:     limit,
		Offset:    offset,
	}
	courses, total, err := s.courseRepo.FindCourses(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list instructor courses: %w", err)
	}
	if courses == nil {
		courses = []domain.Course{}
	}
	return courses, total, nil
}

// UpdateCourse updates an existing course. A name change re-derives the slug.
func (s *courseService) UpdateCourse(ctx context.Context, courseID string, req dto.UpdateCourseRequest) (*domain.Course, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	course, err := s.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		course.Name = *req.Name
		course.Slug = slug.Make(*req.Name)
	}
	if req.Description != nil {
		course.Description = req.Description
	}
	if req.Notes != nil {
		course.Notes = req.Notes
	}
	if req.Thumbnail != nil {
		course.Thumbnail = req.Thumbnail
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, fmt.Errorf("%w: price cannot be negative", apperrors.ErrValidation)
		}
		course.Price = *req.Price
	}
	if req.SaleInfo != nil {
		course.SaleInfo = req.SaleInfo
	}
	if req.Level != nil {
		course.Level = domain.CourseLevel(*req.Level)
	}
	if req.CategoryID != nil {
		category, err := s.categoryRepo.FindCategoryByID(ctx, *req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to validate category: %w", err)
		}
		if category == nil {
			return nil, fmt.Errorf("%w: category not found", apperrors.ErrValidation)
		}
		course.CategoryID = *req.CategoryID
	}
	course.UpdatedAt = time.Now()

	if err := course.ValidateSale(); err != nil {
		return nil, err
	}

	if err := s.courseRepo.UpdateCourse(ctx, *course); err != nil {
		logger.Error("Failed to update course", slog.String("error", err.Error()), slog.String("course_id", courseID))
		return nil, fmt.Errorf("failed to update course: %w", err)
	}

	return course, nil
}

// ToggleCourseStatus flips a course between draft and published.
func (s *courseService) ToggleCourseStatus(ctx context.Context, courseID string) (*domain.Course, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	course, err := s.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	course.Status = !course.Status
	course.UpdatedAt = time.Now()

	if err := s.courseRepo.UpdateCourse(ctx, *course); err != nil {
		logger.Error("Failed to toggle course status", slog.String("error", err.Error()), slog.String("course_id", courseID))
		return nil, fmt.Errorf("failed to toggle course status: %w", err)
	}

	logger.Info("Course status toggled", slog.String("course_id", courseID), slog.Bool("status", course.Status))
	return course, nil
}

// DeleteCourse soft deletes a course.
func (s *courseService) DeleteCourse(ctx context.Context, courseID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.GetCourseByID(ctx, courseID); err != nil {
		return err
	}

	if err := s.courseRepo.MarkCourseDeleted(ctx, courseID, time.Now()); err != nil {
		logger.Error("Failed to delete course", slog.String("error", err.Error()), slog.String("course_id", courseID))
		return fmt.Errorf("failed to delete course: %w", err)
	}

	logger.Info("Course deleted", slog.String("course_id", courseID))
	return nil
}
