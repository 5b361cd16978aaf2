package dto

// CreateCourseRequest represents course creation data. Credits are
// range-checked (1-6) on creation only.
type CreateCourseRequest struct {
	Title   string `json:"title" example:"Introduction to Computer Science"`
	Credits int    `json:"credits" example:"3"`
}

// UpdateCourseRequest represents a full-field course update. The credits
// range check does not apply here.
type UpdateCourseRequest struct {
	CourseID int64  `json:"courseId"`
	Title    string `json:"title"`
	Credits  int    `json:"credits"`
}
