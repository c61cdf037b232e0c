package repositories

import (
	"context"
	"time"

	"github.com/wishzy/wishzy-backend/internal/core/domain"
)

// ChapterFilter narrows chapter listings.
type ChapterFilter struct {
	CourseID string
	Limit    int
	Offset   int
}

// ChapterRepositoryFacade combines all chapter repository operations.
type ChapterRepositoryFacade interface {
	SaveChapter(ctx context.Context, chapter domain.Chapter) error
	FindChapterByID(ctx context.Context, chapterID string) (*domain.Chapter, error)
	FindChapters(ctx context.Context, filter ChapterFilter) ([]domain.Chapter, int, error)
	UpdateChapter(ctx context.Context, chapter domain.Chapter) error
	MarkChapterDeleted(ctx context.Context, chapterID string, deletedAt time.Time) error
}

// LectureFilter narrows lecture listings.
type LectureFilter struct {
	ChapterID string
	Limit     int
	Offset    int
}

// LectureRepositoryFacade combines all lecture repository operations.
type LectureRepositoryFacade interface {
	SaveLecture(ctx context.Context, lecture domain.Lecture) error
	FindLectureByID(ctx context.Context, lectureID string) (*domain.Lecture, error)
	FindLectures(ctx context.Context, filter LectureFilter) ([]domain.Lecture, int, error)
	UpdateLecture(ctx context.Context, lecture domain.Lecture) error
	MarkLectureDeleted(ctx context.Context, lectureID string, deletedAt time.Time) error
}

// DocumentFilter narrows document listings.
type DocumentFilter struct {
	EntityID   string
	EntityType string
	Limit      int
	Offset     int
}

// DocumentRepositoryFacade combines all document repository operations.
type DocumentRepositoryFacade interface {
	SaveDocument(ctx context.Context, document domain.Document) error
	FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error)
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]domain.Document, int, error)
	UpdateDocument(ctx context.Context, document domain.Document) error
	MarkDocumentDeleted(ctx context.Context, documentID string, deletedAt time.Time) error
}
