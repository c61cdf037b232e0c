package dto

// EnrollRequest is the body for POST /enrollments (free courses only; paid
// courses enroll through the order flow).
type EnrollRequest struct {
	CourseID string `json:"courseId" binding:"required,uuid"`
}

// UpdateProgressRequest is the body for PUT /enrollments/:id/progress.
type UpdateProgressRequest struct {
	Progress int `json:"progress" binding:"min=0,max=100"`
}
