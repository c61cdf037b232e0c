package domain

import "time"

// Comment targets a course or a lecture; a non-nil ParentID makes it a reply.
type Comment struct {
	ID        string     `json:"id"`
	Content   string     `json:"content"`
	UserID    string     `json:"userId"`
	CourseID  *string    `json:"courseId,omitempty"`
	LectureID *string    `json:"lectureId,omitempty"`
	ParentID  *string    `json:"parentId,omitempty"`
	Likes     int        `json:"likes"`
	Dislikes  int        `json:"dislikes"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`

	User    *User     `json:"user,omitempty"`
	Replies []Comment `json:"replies,omitempty"`
}

func (c *Comment) GetID() string        { return c.ID }
func (c *Comment) GetCreatedBy() string { return c.UserID }
