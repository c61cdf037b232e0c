package domain

import "time"

// Category is a course grouping. A category with a non-nil ParentID is a
// sub-category; soft deletion cascades from parent to children.
type Category struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Slug      string     `json:"slug"`
	Notes     *string    `json:"notes,omitempty"`
	ParentID  *string    `json:"parentId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`

	// TotalCourses is computed at read time, not stored.
	TotalCourses int `json:"totalCourses"`
}
