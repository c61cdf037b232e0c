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
	"github.com/wishzy/wishzy-backend/internal/dto"
	"github.com/wishzy/wishzy-backend/internal/middleware"
)

// chapterService handles chapters inside courses.
type chapterService struct {
	chapterRepo portsrepo.ChapterRepositoryFacade
	courseRepo  portsrepo.CourseRepositoryFacade
}

// NewChapterService creates a new chapterService.
func NewChapterService(chapterRepo portsrepo.ChapterRepositoryFacade, courseRepo portsrepo.CourseRepositoryFacade) portssvc.ChapterSvcFacade {
	return &chapterService{chapterRepo: chapterRepo, courseRepo: courseRepo}
}

var _ portssvc.ChapterSvcFacade = (*chapterService)(nil)

// CreateChapter creates a chapter after checking the parent course exists.
func (s *chapterService) CreateChapter(ctx context.Context, creatorID string, req dto.CreateChapterRequest) (*domain.Chapter, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	course, err := s.courseRepo.FindCourseByID(ctx, req.CourseID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate course: %w", err)
	}
	if course == nil {
		return nil, fmt.Errorf("%w: course not found", apperrors.ErrValidation)
	}

	now := time.Now()
	chapter := domain.Chapter{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		OrderIndex:  req.OrderIndex,
		CourseID:    req.CourseID,
		CreatedBy:   creatorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.chapterRepo.SaveChapter(ctx, chapter); err != nil {
		logger.Error("Failed to save chapter", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create chapter: %w", err)
	}

	return &chapter, nil
}

// GetChapterByID retrieves a chapter by ID.
func (s *chapterService) GetChapterByID(ctx context.Context, chapterID string) (*domain.Chapter, error) {
	chapter, err := s.chapterRepo.FindChapterByID(ctx, chapterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get chapter: %w", err)
	}
	if chapter == nil {
		return nil, fmt.Errorf("%w: chapter %s", apperrors.ErrNotFound, chapterID)
	}
	return chapter, nil
}

// ListChapters retrieves a filtered page of chapters and the total count.
func (s *chapterService) ListChapters(ctx context.Context, params dto.ListChaptersParams) ([]domain.Chapter, int, error) {
	params.Normalize()
	filter := portsrepo.ChapterFilter{
		CourseID: params.CourseID,
		Limit:    params.Limit,
		Offset:   params.Offset(),
	}
	chapters, total, err := s.chapterRepo.FindChapters(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list chapters: %w", err)
	}
	if chapters == nil {
		chapters = []domain.Chapter{}
	}
	return chapters, total, nil
}

// UpdateChapter updates an existing chapter.
func (s *chapterService) UpdateChapter(ctx context.Context, chapterID string, req dto.UpdateChapterRequest) (*domain.Chapter, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	chapter, err := s.GetChapterByID(ctx, chapterID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		chapter.Name = *req.Name
	}
	if req.Description != nil {
		chapter.Description = req.Description
	}
	if req.OrderIndex != nil {
		chapter.OrderIndex = *req.OrderIndex
	}
	chapter.UpdatedAt = time.Now()

	if err := s.chapterRepo.UpdateChapter(ctx, *chapter); err != nil {
		logger.Error("Failed to update chapter", slog.String("error", err.Error()), slog.String("chapter_id", chapterID))
		return nil, fmt.Errorf("failed to update chapter: %w", err)
	}

	return chapter, nil
}

// DeleteChapter soft deletes a chapter.
func (s *chapterService) DeleteChapter(ctx context.Context, chapterID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.GetChapterByID(ctx, chapterID); err != nil {
		return err
	}

	if err := s.chapterRepo.MarkChapterDeleted(ctx, chapterID, time.Now()); err != nil {
		logger.Error("Failed to delete chapter", slog.String("error", err.Error()), slog.String("chapter_id", chapterID))
		return fmt.Errorf("failed to delete chapter: %w", err)
	}

	return nil
}
