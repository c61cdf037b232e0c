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

// commentService handles comments on courses and lectures, including replies
// and like/dislike counters.
type commentService struct {
	commentRepo portsrepo.CommentRepositoryFacade
	courseRepo  portsrepo.CourseRepositoryFacade
	lectureRepo portsrepo.LectureRepositoryFacade
}

// NewCommentService creates a new commentService.
func NewCommentService(commentRepo portsrepo.CommentRepositoryFacade, courseRepo portsrepo.CourseRepositoryFacade, lectureRepo portsrepo.LectureRepositoryFacade) portssvc.CommentSvcFacade {
	return &commentService{
		commentRepo: commentRepo,
		courseRepo:  courseRepo,
		lectureRepo: lectureRepo,
	}
}

var _ portssvc.CommentSvcFacade = (*commentService)(nil)

// CreateComment creates a comment or a reply. Exactly one of course/lecture
// identifies the target.
func (s *commentService) CreateComment(ctx context.Context, userID string, req dto.CreateCommentRequest) (*domain.Comment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if (req.CourseID == nil) == (req.LectureID == nil) {
		return nil, fmt.Errorf("%w: exactly one of courseId or lectureId must be set", apperrors.ErrValidation)
	}

	if req.CourseID != nil {
		course, err := s.courseRepo.FindCourseByID(ctx, *req.CourseID)
		if err != nil {
			return nil, fmt.Errorf("failed to validate course: %w", err)
		}
		if course == nil {
			return nil, fmt.Errorf("%w: course not found", apperrors.ErrValidation)
		}
	}
	if req.LectureID != nil {
		lecture, err := s.lectureRepo.FindLectureByID(ctx, *req.LectureID)
		if err != nil {
			return nil, fmt.Errorf("failed to validate lecture: %w", err)
		}
		if lecture == nil {
			return nil, fmt.Errorf("%w: lecture not found", apperrors.ErrValidation)
		}
	}
	if req.ParentID != nil {
		parent, err := s.commentRepo.FindCommentByID(ctx, *req.ParentID)
		if err != nil {
			return nil, fmt.Errorf("failed to validate parent comment: %w", err)
		}
		if parent == nil {
			return nil, fmt.Errorf("%w: parent comment not found", apperrors.ErrValidation)
		}
		if parent.ParentID != nil {
			return nil, fmt.Errorf("%w: replies cannot be nested further", apperrors.ErrValidation)
		}
	}

	now := time.Now()
	comment := domain.Comment{
		ID:        uuid.NewString(),
		Content:   req.Content,
		UserID:    userID,
		CourseID:  req.CourseID,
		LectureID: req.LectureID,
		ParentID:  req.ParentID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.commentRepo.SaveComment(ctx, comment); err != nil {
		logger.Error("Failed to save comment", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return &comment, nil
}

// GetCommentByID retrieves a comment by ID.
func (s *commentService) GetCommentByID(ctx context.Context, commentID string) (*domain.Comment, error) {
	comment, err := s.commentRepo.FindCommentByID(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	if comment == nil {
		return nil, fmt.Errorf("%w: comment %s", apperrors.ErrNotFound, commentID)
	}
	return comment, nil
}

// ListComments retrieves a filtered page of top-level comments and the total
// count.
func (s *commentService) ListComments(ctx context.Context, params dto.ListCommentsParams) ([]domain.Comment, int, error) {
	params.Normalize()
	filter := portsrepo.CommentFilter{
		CourseID:  params.CourseID,
		LectureID: params.LectureID,
		ParentID:  params.ParentID,
		Limit:     params.Limit,
		Offset:    params.Offset(),
	}
	comments, total, err := s.commentRepo.FindComments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list comments: %w", err)
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	return comments, total, nil
}

// ListReplies retrieves the replies to a comment.
func (s *commentService) ListReplies(ctx context.Context, parentID string) ([]domain.Comment, error) {
	if _, err := s.GetCommentByID(ctx, parentID); err != nil {
		return nil, err
	}
	replies, err := s.commentRepo.FindReplies(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list replies: %w", err)
	}
	if replies == nil {
		replies = []domain.Comment{}
	}
	return replies, nil
}

// UpdateComment replaces the content of an existing comment.
func (s *commentService) UpdateComment(ctx context.Context, commentID string, req dto.UpdateCommentRequest) (*domain.Comment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	comment, err := s.GetCommentByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	comment.Content = req.Content
	comment.UpdatedAt = time.Now()

	if err := s.commentRepo.UpdateComment(ctx, *comment); err != nil {
		logger.Error("Failed to update comment", slog.String("error", err.Error()), slog.String("comment_id", commentID))
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	return comment, nil
}

// LikeComment bumps the like counter.
func (s *commentService) LikeComment(ctx context.Context, commentID string) error {
	if _, err := s.GetCommentByID(ctx, commentID); err != nil {
		return err
	}
	if err := s.commentRepo.IncrementLikes(ctx, commentID); err != nil {
		return fmt.Errorf("failed to like comment: %w", err)
	}
	return nil
}

// DislikeComment bumps the dislike counter.
func (s *commentService) DislikeComment(ctx context.Context, commentID string) error {
	if _, err := s.GetCommentByID(ctx, commentID); err != nil {
		return err
	}
	if err := s.commentRepo.IncrementDislikes(ctx, commentID); err != nil {
		return fmt.Errorf("failed to dislike comment: %w", err)
	}
	return nil
}

// DeleteComment soft deletes a comment.
func (s *commentService) DeleteComment(ctx context.Context, commentID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.GetCommentByID(ctx, commentID); err != nil {
		return err
	}

	if err := s.commentRepo.MarkCommentDeleted(ctx, commentID, time.Now()); err != nil {
		logger.Error("Failed to delete comment", slog.String("error", err.Error()), slog.String("comment_id", commentID))
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	return nil
}
