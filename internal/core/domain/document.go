package domain

import "time"

// DocumentEntityType enumerates what a document can be attached to.
type DocumentEntityType string

const (
	DocumentEntityCourse  DocumentEntityType = "course"
	DocumentEntityChapter DocumentEntityType = "chapter"
	DocumentEntityLecture DocumentEntityType = "lecture"
)

// Document is a downloadable resource attached to a course, chapter or lecture.
type Document struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description *string            `json:"description,omitempty"`
	Notes       *string            `json:"notes,omitempty"`
	FileURL     *string            `json:"fileUrl,omitempty"`
	EntityID    string             `json:"entityId"`
	EntityType  DocumentEntityType `json:"entityType"`
	CreatedBy   string             `json:"createdBy"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
	DeletedAt   *time.Time         `json:"deletedAt,omitempty"`
}

func (d *Document) GetID() string        { return d.ID }
func (d *Document) GetCreatedBy() string { return d.CreatedBy }
