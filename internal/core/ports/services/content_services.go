package services

import (
	"context"

	"github.com/wishzy/wishzy-backend/internal/core/domain"
	"github.com/wishzy/wishzy-backend/internal/dto"
)

// ChapterSvcFacade defines chapter management operations.
type ChapterSvcFacade interface {
	CreateChapter(ctx context.Context, creatorID string, req dto.CreateChapterRequest) (*domain.Chapter, error)
	GetChapterByID(ctx context.Context, chapterID string) (*domain.Chapter, error)
	ListChapters(ctx context.Context, params dto.ListChaptersParams) ([]domain.Chapter, int, error)
	UpdateChapter(ctx context.Context, chapterID string, req dto.UpdateChapterRequest) (*domain.Chapter, error)
	DeleteChapter(ctx context.Context, chapterID string) error
}

// LectureSvcFacade defines lecture management operations.
type LectureSvcFacade interface {
	CreateLecture(ctx context.Context, creatorID string, req dto.CreateLectureRequest) (*domain.Lecture, error)
	GetLectureByID(ctx context.Context, lectureID string) (*domain.Lecture, error)
	ListLectures(ctx context.Context, params dto.ListLecturesParams) ([]domain.Lecture, int, error)
	UpdateLecture(ctx context.Context, lectureID string, req dto.UpdateLectureRequest) (*domain.Lecture, error)
	DeleteLecture(ctx context.Context, lectureID string) error
}

// DocumentSvcFacade defines document management operations.
type DocumentSvcFacade interface {
	CreateDocument(ctx context.Context, creatorID string, req dto.CreateDocumentRequest) (*domain.Document, error)
	GetDocumentByID(ctx context.Context, documentID string) (*domain.Document, error)
	ListDocuments(ctx context.Context, params dto.ListDocumentsParams) ([]domain.Document, int, error)
	UpdateDocument(ctx context.Context, documentID string, req dto.UpdateDocumentRequest) (*domain.Document, error)
	DeleteDocument(ctx context.Context, documentID string) error
}
