package domain

import "time"

// Chapter groups lectures inside a course.
type Chapter struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	OrderIndex  int        `json:"orderIndex"`
	CourseID    string     `json:"courseId"`
	CreatedBy   string     `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	DeletedAt   *time.Time `json:"deletedAt,omitempty"`

	Lectures []Lecture `json:"lectures,omitempty"`
}

func (c *Chapter) GetID() string        { return c.ID }
func (c *Chapter) GetCreatedBy() string { return c.CreatedBy }
