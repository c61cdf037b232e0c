package domain

import "time"

// Lecture is a single playable unit inside a chapter.
type Lecture struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	FileURL     string     `json:"fileUrl"`
	Duration    int        `json:"duration"`
	IsPreview   bool       `json:"isPreview"`
	OrderIndex  int        `json:"orderIndex"`
	ChapterID   string     `json:"chapterId"`
	CreatedBy   string     `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	DeletedAt   *time.Time `json:"deletedAt,omitempty"`
}

func (l *Lecture) GetID() string        { return l.ID }
func (l *Lecture) GetCreatedBy() string { return l.CreatedBy }
