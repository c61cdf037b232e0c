package services

import (
	"context"

	"github.com/wishzy/wishzy-backend/internal/core/domain"
	"github.com/wishzy/wishzy-backend/internal/dto"
)

// WishlistSvcFacade defines wishlist operations. Each user owns exactly one
// wishlist holding a set of course IDs.
type WishlistSvcFacade interface {
	// GetWishlist retrieves the user's wishlist together with course summaries.
	GetWishlist(ctx context.Context, userID string) (*domain.Wishlist, []domain.Course, error)

	// AddCourse adds a course to the user's wishlist, creating it on first use.
	AddCourse(ctx context.Context, userID, courseID string) (*domain.Wishlist, error)

	// RemoveCourse removes a course from the user's wishlist.
	RemoveCourse(ctx context.Context, userID, courseID string) (*domain.Wishlist, error)
}

// CommentSvcFacade defines comment operations on courses and lectures.
type CommentSvcFacade interface {
	CreateComment(ctx context.Context, userID string, req dto.CreateCommentRequest) (*domain.Comment, error)
	GetCommentByID(ctx context.Context, commentID string) (*domain.Comment, error)
	ListComments(ctx context.Context, params dto.ListCommentsParams) ([]domain.Comment, int, error)
	ListReplies(ctx context.Context, parentID string) ([]domain.Comment, error)
	UpdateComment(ctx context.Context, commentID string, req dto.UpdateCommentRequest) (*domain.Comment, error)
	LikeComment(ctx context.Context, commentID string) error
	DislikeComment(ctx context.Context, commentID string) error
	DeleteComment(ctx context.Context, commentID string) error
}
