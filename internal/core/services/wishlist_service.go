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

// wishlistService handles the per-user wishlist of saved course IDs.
type wishlistService struct {
	wishlistRepo portsrepo.WishlistRepositoryFacade
	courseRepo   portsrepo.CourseRepositoryFacade
}

// NewWishlistService creates a new wishlistService.
func NewWishlistService(wishlistRepo portsrepo.WishlistRepositoryFacade, courseRepo portsrepo.CourseRepositoryFacade) portssvc.WishlistSvcFacade {
	return &wishlistService{wishlistRepo: wishlistRepo, courseRepo: courseRepo}
}

var _ portssvc.WishlistSvcFacade = (*wishlistService)(nil)

// GetWishlist retrieves the user's wishlist together with course summaries.
func (s *wishlistService) GetWishlist(ctx context.Context, userID string) (*domain.Wishlist, []domain.Course, error) {
	wishlist, err := s.wishlistRepo.FindWishlistByUserID(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get wishlist: %w", err)
	}
	if wishlist == nil {
		// An empty wishlist is not an error; the row is created lazily.
		now := time.Now()
		return &domain.Wishlist{UserID: userID, Courses: []string{}, CreatedAt: now, UpdatedAt: now}, []domain.Course{}, nil
	}

	courses := []domain.Course{}
	if len(wishlist.Courses) > 0 {
		courses, err = s.courseRepo.FindCoursesByIDs(ctx, wishlist.Courses)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load wishlist courses: %w", err)
		}
	}
	return wishlist, courses, nil
}

// AddCourse adds a course to the user's wishlist, creating the row on first use.
func (s *wishlistService) AddCourse(ctx context.Context, userID, courseID string) (*domain.Wishlist, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	course, err := s.courseRepo.FindCourseByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	if course == nil {
		return nil, fmt.Errorf("%w: course %s", apperrors.ErrNotFound, courseID)
	}

	wishlist, err := s.wishlistRepo.FindWishlistByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get wishlist: %w", err)
	}

	now := time.Now()
	if wishlist == nil {
		newWishlist := domain.Wishlist{
			ID:        uuid.NewString(),
			UserID:    userID,
			Courses:   []string{courseID},
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.wishlistRepo.SaveWishlist(ctx, newWishlist); err != nil {
			logger.Error("Failed to create wishlist", slog.String("error", err.Error()), slog.String("user_id", userID))
			return nil, fmt.Errorf("failed to create wishlist: %w", err)
		}
		return &newWishlist, nil
	}

	for _, id := range wishlist.Courses {
		if id == courseID {
			return nil, fmt.Errorf("%w: course already in wishlist", apperrors.ErrDuplicate)
		}
	}

	wishlist.Courses = append(wishlist.Courses, courseID)
	wishlist.UpdatedAt = now

	if err := s.wishlistRepo.UpdateWishlist(ctx, *wishlist); err != nil {
		logger.Error("Failed to update wishlist", slog.String("error", err.Error()), slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to update wishlist: %w", err)
	}
	return wishlist, nil
}

// RemoveCourse removes a course from the user's wishlist.
func (s *wishlistService) RemoveCourse(ctx context.Context, userID, courseID string) (*domain.Wishlist, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	wishlist, err := s.wishlistRepo.FindWishlistByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get wishlist: %w", err)
	}
	if wishlist == nil {
		return nil, fmt.Errorf("%w: wishlist is empty", apperrors.ErrNotFound)
	}

	found := false
	remaining := make([]string, 0, len(wishlist.Courses))
	for _, id := range wishlist.Courses {
		if id == courseID {
			found = true
			continue
		}
		remaining = append(remaining, id)
	}
	if !found {
		return nil, fmt.Errorf("%w: course is not in the wishlist", apperrors.ErrNotFound)
	}

	wishlist.Courses = remaining
	wishlist.UpdatedAt = time.Now()

	if err := s.wishlistRepo.UpdateWishlist(ctx, *wishlist); err != nil {
		logger.Error("Failed to update wishlist", slog.String("error", err.Error()), slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to update wishlist: %w", err)
	}
	return wishlist, nil
}
