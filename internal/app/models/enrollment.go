package models

// Enrollment links a student to a course, optionally with a grade.
// The (StudentID, CourseID) pair is unique.
type Enrollment struct {
	ID        int64    `json:"enrollmentId" db:"enrollment_id" example:"1"`
	StudentID int64    `json:"studentId" db:"student_id" example:"1"`
	CourseID  int64    `json:"courseId" db:"course_id" example:"1"`
	Grade     *float64 `json:"grade,omitempty" db:"grade"` // Nullable, recorded after completion
}

// EnrollmentStatistics is the aggregate row reported per enrolled student.
// TotalEnrollments counts every enrollment including ungraded ones, while
// AverageGrade is computed over graded enrollments only.
type EnrollmentStatistics struct {
	StudentID        int64    `json:"studentId"`
	FirstName        string   `json:"firstName"`
	LastName         string   `json:"lastName"`
	AverageGrade     *float64 `json:"averageGrade"`
	TotalEnrollments int64    `json:"totalEnrollments"`
}
