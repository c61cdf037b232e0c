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

// documentService handles documents attached to courses, chapters and lectures.
type documentService struct {
	documentRepo portsrepo.DocumentRepositoryFacade
	courseRepo   portsrepo.CourseRepositoryFacade
	chapterRepo  portsrepo.ChapterRepositoryFacade
	lectureRepo  portsrepo.LectureRepositoryFacade
}

// NewDocumentService creates a new documentService.
func NewDocumentService(documentRepo portsrepo.DocumentRepositoryFacade, courseRepo portsrepo.CourseRepositoryFacade, chapterRepo portsrepo.ChapterRepositoryFacade, lectureRepo portsrepo.LectureRepositoryFacade) portssvc.DocumentSvcFacade {
	return &documentService{
		documentRepo: documentRepo,
		courseRepo:   courseRepo,
		chapterRepo:  chapterRepo,
		lectureRepo:  lectureRepo,
	}
}

var _ portssvc.DocumentSvcFacade = (*documentService)(nil)

// CreateDocument creates a document after checking the target entity exists.
func (s *documentService) CreateDocument(ctx context.Context, creatorID string, req dto.CreateDocumentRequest) (*domain.Document, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entityType := domain.DocumentEntityType(req.EntityType)
	if err := s.checkEntityExists(ctx, req.EntityID, entityType); err != nil {
		return nil, err
	}

	now := time.Now()
	document := domain.Document{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Notes:       req.Notes,
		FileURL:     req.FileURL,
		EntityID:    req.EntityID,
		EntityType:  entityType,
		CreatedBy:   creatorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.documentRepo.SaveDocument(ctx, document); err != nil {
		logger.Error("Failed to save document", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	return &document, nil
}

// GetDocumentByID retrieves a document by ID.
func (s *documentService) GetDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	document, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	if document == nil {
		return nil, fmt.Errorf("%w: document %s", apperrors.ErrNotFound, documentID)
	}
	return document, nil
}

// ListDocuments retrieves a filtered page of documents and the total count.
func (s *documentService) ListDocuments(ctx context.Context, params dto.ListDocumentsParams) ([]domain.Document, int, error) {
	params.Normalize()
	filter := portsrepo.DocumentFilter{
		EntityID:   params.EntityID,
		EntityType: params.EntityType,
		Limit:      params.Limit,
		Offset:     params.Offset(),
	}
	documents, total, err := s.documentRepo.FindDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list documents: %w", err)
	}
	if documents == nil {
		documents = []domain.Document{}
	}
	return documents, total, nil
}

// UpdateDocument updates an existing document. The target entity cannot be
// changed after creation.
func (s *documentService) UpdateDocument(ctx context.Context, documentID string, req dto.UpdateDocumentRequest) (*domain.Document, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	document, err := s.GetDocumentByID(ctx, documentID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		document.Name = *req.Name
	}
	if req.Description != nil {
		document.Description = req.Description
	}
	if req.Notes != nil {
		document.Notes = req.Notes
	}
	if req.FileURL != nil {
		document.FileURL = req.FileURL
	}
	document.UpdatedAt = time.Now()

	if err := s.documentRepo.UpdateDocument(ctx, *document); err != nil {
		logger.Error("Failed to update document", slog.String("error", err.Error()), slog.String("document_id", documentID))
		return nil, fmt.Errorf("failed to update document: %w", err)
	}

	return document, nil
}

// DeleteDocument soft deletes a document.
func (s *documentService) DeleteDocument(ctx context.Context, documentID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.GetDocumentByID(ctx, documentID); err != nil {
		return err
	}

	if err := s.documentRepo.MarkDocumentDeleted(ctx, documentID, time.Now()); err != nil {
		logger.Error("Failed to delete document", slog.String("error", err.Error()), slog.String("document_id", documentID))
		return fmt.Errorf("failed to delete document: %w", err)
	}

	return nil
}

func (s *documentService) checkEntityExists(ctx context.Context, entityID string, entityType domain.DocumentEntityType) error {
	switch entityType {
	case domain.DocumentEntityCourse:
		course, err := s.courseRepo.FindCourseByID(ctx, entityID)
		if err != nil {
			return fmt.Errorf("failed to validate course: %w", err)
		}
		if course == nil {
			return fmt.Errorf("%w: course not found", apperrors.ErrValidation)
		}
	case domain.DocumentEntityChapter:
		chapter, err := s.chapterRepo.FindChapterByID(ctx, entityID)
		if err != nil {
			return fmt.Errorf("failed to validate chapter: %w", err)
		}
		if chapter == nil {
			return fmt.Errorf("%w: chapter not found", apperrors.ErrValidation)
		}
	case domain.DocumentEntityLecture:
		lecture, err := s.lectureRepo.FindLectureByID(ctx, entityID)
		if err != nil {
			return fmt.Errorf("failed to validate lecture: %w", err)
		}
		if lecture == nil {
			return fmt.Errorf("%w: lecture not found", apperrors.ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unknown entity type %q", apperrors.ErrValidation, entityType)
	}
	return nil
}
