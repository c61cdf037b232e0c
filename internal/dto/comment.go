package dto

import "github.com/wishzy/wishzy-backend/internal/core/domain"

// CreateCommentRequest is the body for POST /comments. Exactly one of
// courseId/lectureId identifies the target; parentId makes it a reply.
type CreateCommentRequest struct {
	Content   string  `json:"content" binding:"required"`
	CourseID  *string `json:"courseId" binding:"omitempty,uuid"`
	LectureID *string `json:"lectureId" binding:"omitempty,uuid"`
	ParentID  *string `json:"parentId" binding:"omitempty,uuid"`
}

// UpdateCommentRequest is the body for PUT /comments/:id.
type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// ListCommentsParams are the query parameters for GET /comments.
type ListCommentsParams struct {
	PageParams
	CourseID  string `form:"courseId"`
	LectureID string `form:"lectureId"`
	ParentID  string `form:"parentId"`
}

// ListCommentsResponse wraps a paginated comment listing.
type ListCommentsResponse struct {
	Items      []domain.Comment `json:"items"`
	Pagination Pagination       `json:"pagination"`
}
