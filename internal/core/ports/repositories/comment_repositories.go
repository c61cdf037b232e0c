package repositories

import (
	"context"
	"time"

	"github.com/wishzy/wishzy-backend/internal/core/domain"
)

// CommentFilter narrows comment listings.
type CommentFilter struct {
	CourseID  string
	LectureID string
	ParentID  string
	Limit     int
	Offset    int
}

// CommentRepositoryFacade combines all comment repository operations.
type CommentRepositoryFacade interface {
	SaveComment(ctx context.Context, comment domain.Comment) error
	FindCommentByID(ctx context.Context, commentID string) (*domain.Comment, error)
	FindComments(ctx context.Context, filter CommentFilter) ([]domain.Comment, int, error)
	FindReplies(ctx context.Context, parentID string) ([]domain.Comment, error)
	UpdateComment(ctx context.Context, comment domain.Comment) error

	// IncrementLikes / IncrementDislikes bump the respective counter atomically.
	IncrementLikes(ctx context.Context, commentID string) error
	IncrementDislikes(ctx context.Context, commentID string) error

	MarkCommentDeleted(ctx context.Context, commentID string, deletedAt time.Time) error
}
