package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID          int64      `json:"studentId" db:"student_id" example:"1"` // System-assigned identifier
	FirstName   string     `json:"firstName" db:"first_name" example:"John"`
	LastName    string     `json:"lastName" db:"last_name" example:"Doe"`
	Email       string     `json:"email" db:"email" example:"john.doe@example.com"` // Globally unique
	PhoneNumber *string    `json:"phoneNumber,omitempty" db:"phone_number"`         // Nullable
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty" db:"date_of_birth"`        // Nullable
	Major       *string    `json:"major,omitempty" db:"major"`                      // Nullable
}

// StudentSummary is the aggregate row reported per student that has at
// least one enrollment. AverageGrade ignores null grades; it is nil when
// none of the student's enrollments carry a grade.
type StudentSummary struct {
	StudentID    int64    `json:"studentId"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	AverageGrade *float64 `json:"averageGrade"`
}
