package domain

import "time"

// Wishlist holds one row per user with the course ids they saved.
type Wishlist struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Courses   []string  `json:"courses"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
