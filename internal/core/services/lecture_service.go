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

// lectureService handles lectures inside chapters.
type lectureService struct {
	lectureRepo portsrepo.LectureRepositoryFacade
	chapterRepo portsrepo.ChapterRepositoryFacade
}

// NewLectureService creates a new lectureService.
func NewLectureService(lectureRepo portsrepo.LectureRepositoryFacade, chapterRepo portsrepo.ChapterRepositoryFacade) portssvc.LectureSvcFacade {
	return &lectureService{lectureRepo: lectureRepo, chapterRepo: chapterRepo}
}

var _ portssvc.LectureSvcFacade = (*lectureService)(nil)

// CreateLecture creates a lecture after checking the parent chapter exists.
func (s *lectureService) CreateLecture(ctx context.Context, creatorID string, req dto.CreateLectureRequest) (*domain.Lecture, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	chapter, err := s.chapterRepo.FindChapterByID(ctx, req.ChapterID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate chapter: %w", err)
	}
	if chapter == nil {
		return nil, fmt.Errorf("%w: chapter not found", apperrors.ErrValidation)
	}

	now := time.Now()
	lecture := domain.Lecture{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		FileURL:     req.FileURL,
		Duration:    req.Duration,
		IsPreview:   req.IsPreview,
		OrderIndex:  req.OrderIndex,
		ChapterID:   req.ChapterID,
		CreatedBy:   creatorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.lectureRepo.SaveLecture(ctx, lecture); err != nil {
		logger.Error("Failed to save lecture", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create lecture: %w", err)
	}

	return &lecture, nil
}

// GetLectureByID retrieves a lecture by ID.
func (s *lectureService) GetLectureByID(ctx context.Context, lectureID string) (*domain.Lecture, error) {
	lecture, err := s.lectureRepo.FindLectureByID(ctx, lectureID)
	if err != nil {
		return nil, fmt.Errorf("failed to get lecture: %w", err)
	}
	if lecture == nil {
		return nil, fmt.Errorf("%w: lecture %s", apperrors.ErrNotFound, lectureID)
	}
	return lecture, nil
}

// ListLectures retrieves a filtered page of lectures and the total count.
func (s *lectureService) ListLectures(ctx context.Context, params dto.ListLecturesParams) ([]domain.Lecture, int, error) {
	params.Normalize()
	filter := portsrepo.LectureFilter{
		ChapterID: params.ChapterID,
		Limit:     params.Limit,
		Offset:    params.Offset(),
	}
	lectures, total, err := s.lectureRepo.FindLectures(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list lectures: %w", err)
	}
	if lectures == nil {
		lectures = []domain.Lecture{}
	}
	return lectures, total, nil
}

// UpdateLecture updates an existing lecture.
func (s *lectureService) UpdateLecture(ctx context.Context, lectureID string, req dto.UpdateLectureRequest) (*domain.Lecture, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	lecture, err := s.GetLectureByID(ctx, lectureID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		lecture.Name = *req.Name
	}
	if req.Description != nil {
		lecture.Description = req.Description
	}
	if req.FileURL != nil {
		lecture.FileURL = *req.FileURL
	}
	if req.Duration != nil {
		lecture.Duration = *req.Duration
	}
	if req.IsPreview != nil {
		lecture.IsPreview = *req.IsPreview
	}
	if req.OrderIndex != nil {
		lecture.OrderIndex = *req.OrderIndex
	}
	lecture.UpdatedAt = time.Now()

	if err := s.lectureRepo.UpdateLecture(ctx, *lecture); err != nil {
		logger.Error("Failed to update lecture", slog.String("error", err.Error()), slog.String("lecture_id", lectureID))
		return nil, fmt.Errorf("failed to update lecture: %w", err)
	}

	return lecture, nil
}

// DeleteLecture soft deletes a lecture.
func (s *lectureService) DeleteLecture(ctx context.Context, lectureID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.GetLectureByID(ctx, lectureID); err != nil {
		return err
	}

	if err := s.lectureRepo.MarkLectureDeleted(ctx, lectureID, time.Now()); err != nil {
		logger.Error("Failed to delete lecture", slog.String("error", err.Error()), slog.String("lecture_id", lectureID))
		return fmt.Errorf("failed to delete lecture: %w", err)
	}

	return nil
}
