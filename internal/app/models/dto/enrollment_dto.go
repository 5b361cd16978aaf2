package dto

// CreateEnrollmentRequest represents enrollment creation data.
// The grade is optional and must fall within 0-100 at creation.
type CreateEnrollmentRequest struct {
	StudentID int64    `json:"studentId" example:"1"`
	CourseID  int64    `json:"courseId" example:"1"`
	Grade     *float64 `json:"grade,omitempty" example:"95"`
}

// UpdateEnrollmentGradeRequest replaces the course and grade of an
// existing enrollment. The grade ceiling here is 110 (extra credit).
type UpdateEnrollmentGradeRequest struct {
	EnrollmentID int64    `json:"enrollmentId"`
	CourseID     int64    `json:"courseId"`
	Grade        *float64 `json:"grade,omitempty"`
}
