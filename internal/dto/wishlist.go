package dto

import "github.com/wishzy/wishzy-backend/internal/core/domain"

// AddToWishlistRequest is the body for POST /wishlist.
type AddToWishlistRequest struct {
	CourseID string `json:"courseId" binding:"required,uuid"`
}

// WishlistResponse returns the wishlist row plus summaries of the saved
// courses.
type WishlistResponse struct {
	Wishlist      domain.Wishlist `json:"wishlist"`
	CourseDetails []domain.Course `json:"courseDetails"`
}
