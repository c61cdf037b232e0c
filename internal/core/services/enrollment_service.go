package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/wishzy/wishzy-backend/internal/apperrors"
	"github.com/wishzy/wishzy-backend/internal/core/domain"
	portsrepo "github.com/wishzy/wishzy-backend/internal/core/ports/repositories"
	portssvc "github.com/wishzy/wishzy-backend/internal/core/ports/services"
	"github.com/wishzy/wishzy-backend/internal/middleware"
)

// enrollmentService handles course enrollments and learning progress.
type enrollmentService struct {
	enrollmentRepo portsrepo.EnrollmentRepositoryFacade
	courseRepo     portsrepo.CourseRepositoryFacade
}

// NewEnrollmentService creates a new enrollmentService.
func NewEnrollmentService(enrollmentRepo portsrepo.EnrollmentRepositoryFacade, courseRepo portsrepo.CourseRepositoryFacade) portssvc.EnrollmentSvcFacade {
	return &enrollmentService{enrollmentRepo: enrollmentRepo, courseRepo: courseRepo}
}

var _ portssvc.EnrollmentSvcFacade = (*enrollmentService)(nil)

// EnrollUser enrolls a user into a course, once. Used for free courses; paid
// enrollments are created by the order flow.
func (s *enrollmentService) EnrollUser(ctx context.Context, userID, courseID string) (*domain.Enrollment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	course, err := s.courseRepo.FindCourseByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	if course == nil {
		return nil, fmt.Errorf("%w: course %s", apperrors.ErrNotFound, courseID)
	}
	if course.Price.IsPositive() {
		return nil, fmt.Errorf("%w: paid courses require an order", apperrors.ErrValidation)
	}

	existing, err := s.enrollmentRepo.FindEnrollmentsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing enrollments: %w", err)
	}
	for _, e := range existing {
		if e.CourseID == courseID {
			return nil, fmt.Errorf("%w: already enrolled in this course", apperrors.ErrDuplicate)
		}
	}

	now := time.Now()
	enrollment := domain.Enrollment{
		ID:        uuid.NewString(),
		UserID:    userID,
		CourseID:  courseID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.enrollmentRepo.SaveEnrollment(ctx, enrollment); err != nil {
		logger.Error("Failed to save enrollment", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create enrollment: %w", err)
	}

	logger.Info("User enrolled", slog.String("user_id", userID), slog.String("course_id", courseID))
	return &enrollment, nil
}

// GetEnrollmentByID retrieves a single enrollment.
func (s *enrollmentService) GetEnrollmentByID(ctx context.Context, enrollmentID string) (*domain.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.FindEnrollmentByID(ctx, enrollmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get enrollment: %w", err)
	}
	if enrollment == nil {
		return nil, fmt.Errorf("%w: enrollment %s", apperrors.ErrNotFound, enrollmentID)
	}
	return enrollment, nil
}

// ListUserEnrollments retrieves all enrollments of a user.
func (s *enrollmentService) ListUserEnrollments(ctx context.Context, userID string) ([]domain.Enrollment, error) {
	enrollments, err := s.enrollmentRepo.FindEnrollmentsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}
	if enrollments == nil {
		enrollments = []domain.Enrollment{}
	}
	return enrollments, nil
}

// UpdateProgress records completion progress for an enrollment.
func (s *enrollmentService) UpdateProgress(ctx context.Context, enrollmentID string, progress int) (*domain.Enrollment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if progress < 0 || progress > 100 {
		return nil, fmt.Errorf("%w: progress must be between 0 and 100", apperrors.ErrValidation)
	}

	enrollment, err := s.enrollmentRepo.FindEnrollmentByID(ctx, enrollmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get enrollment: %w", err)
	}
	if enrollment == nil {
		return nil, fmt.Errorf("%w: enrollment %s", apperrors.ErrNotFound, enrollmentID)
	}

	enrollment.Progress = progress
	enrollment.UpdatedAt = time.Now()

	if err := s.enrollmentRepo.UpdateEnrollment(ctx, *enrollment); err != nil {
		logger.Error("Failed to update enrollment progress", slog.String("error", err.Error()), slog.String("enrollment_id", enrollmentID))
		return nil, fmt.Errorf("failed to update enrollment: %w", err)
	}

	return enrollment, nil
}
