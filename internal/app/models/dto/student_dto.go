package dto

import "time"

// CreateStudentRequest represents student creation data. The id is
// system-assigned, callers never supply one. Field constraints are
// enforced by the service layer so violations come back as a structured
// field list rather than a binding error.
type CreateStudentRequest struct {
	FirstName   string     `json:"firstName" example:"John"`
	LastName    string     `json:"lastName" example:"Doe"`
	Email       string     `json:"email" example:"john.doe@example.com"`
	PhoneNumber *string    `json:"phoneNumber,omitempty" example:"555-0100"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	Major       *string    `json:"major,omitempty" example:"Computer Science"`
}

// UpdateStudentRequest represents a full-field student update. Every
// mutable field is replaced, there are no partial semantics.
type UpdateStudentRequest struct {
	StudentID   int64      `json:"studentId"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Email       string     `json:"email"`
	PhoneNumber *string    `json:"phoneNumber,omitempty"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	Major       *string    `json:"major,omitempty"`
}
