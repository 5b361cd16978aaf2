package models

// Course represents a course students can enroll in.
type Course struct {
	ID      int64  `json:"courseId" db:"course_id" example:"1"`
	Title   string `json:"title" db:"title" example:"Introduction to Computer Science"`
	Credits int    `json:"credits" db:"credits" example:"3"`
}

// CourseSummary is the aggregate row reported per course.
type CourseSummary struct {
	CourseID        int64  `json:"courseId"`
	Title           string `json:"title"`
	Credits         int    `json:"credits"`
	EnrollmentCount int64  `json:"enrollmentCount"`
}
