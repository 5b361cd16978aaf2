package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campusreg/studentregistration/internal/app/models"
	"github.com/campusreg/studentregistration/internal/pkg/apperrors"
	"github.com/campusreg/studentregistration/internal/pkg/validation"
)

// EnrollmentRepository is the data access surface the enrollment service needs
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	GetByID(ctx context.Context, id int64) (*models.Enrollment, error)
	GetAll(ctx context.Context) ([]*models.Enrollment, error)
	GetByStudentID(ctx context.Context, studentID int64) ([]*models.Enrollment, error)
	GetByCourseID(ctx context.Context, courseID int64) ([]*models.Enrollment, error)
	UpdateGrade(ctx context.Context, enrollment *models.Enrollment) error
	Delete(ctx context.Context, id int64) error
	GetStatistics(ctx context.Context) ([]*models.EnrollmentStatistics, error)
}

// EnrollmentService handles enrollment-related operations
type EnrollmentService struct {
	enrollmentRepo EnrollmentRepository
	logger         zerolog.Logger
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(enrollmentRepo EnrollmentRepository, logger zerolog.Logger) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		logger:         logger,
	}
}

// CreateEnrollment validates and persists a new enrollment. The grade
// ceiling at creation is 100; duplicate (student, course) pairs are
// rejected by the storage constraint.
func (s *EnrollmentService) CreateEnrollment(ctx context.Context, enrollment *models.Enrollment) error {
	verr := apperrors.NewValidationError()
	if enrollment.StudentID < 0 {
		verr.Add("studentId", "student id is required")
	}
	if enrollment.CourseID < 0 {
		verr.Add("courseId", "course id is required")
	}
	if !validation.DecimalRange(enrollment.Grade, validation.GradeMin, validation.GradeMaxCreate) {
		verr.Add("grade", "grade must be between 0 and 100")
	}
	if verr.HasViolations() {
		return verr
	}

	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return err
	}

	s.logger.Info().
		Int64("enrollmentId", enrollment.ID).
		Int64("studentId", enrollment.StudentID).
		Int64("courseId", enrollment.CourseID).
		Msg("Created new enrollment")
	return nil
}

// GetEnrollmentByID retrieves an enrollment by ID
func (s *EnrollmentService) GetEnrollmentByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.GetByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrEnrollmentNotFound) {
			s.logger.Warn().Int64("enrollmentId", id).Msg("Enrollment not found")
		}
		return nil, err
	}

	return enrollment, nil
}

// GetAllEnrollments retrieves all enrollments
func (s *EnrollmentService) GetAllEnrollments(ctx context.Context) ([]*models.Enrollment, error) {
	enrollments, err := s.enrollmentRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("count", len(enrollments)).Msg("Retrieved enrollments")
	return enrollments, nil
}

// GetEnrollmentsByStudent retrieves every enrollment for the student.
// An empty result is reported as not found, whether the student is
// missing or simply has no enrollments.
func (s *EnrollmentService) GetEnrollmentsByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	enrollments, err := s.enrollmentRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if len(enrollments) == 0 {
		s.logger.Warn().Int64("studentId", studentID).Msg("Student was not found enrolled in anything")
		return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("no enrollments found for student %d", studentID))
	}

	return enrollments, nil
}

// GetEnrollmentsByCourse retrieves every enrollment for the course,
// with the same empty-result behavior as the student listing.
func (s *EnrollmentService) GetEnrollmentsByCourse(ctx context.Context, courseID int64) ([]*models.Enrollment, error) {
	enrollments, err := s.enrollmentRepo.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if len(enrollments) == 0 {
		s.logger.Warn().Int64("courseId", courseID).Msg("Course has no enrollments")
		return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("no enrollments found for course %d", courseID))
	}

	return enrollments, nil
}

// GetEnrollmentStatistics reports the grade average and enrollment count
// for every student that appears in an enrollment
func (s *EnrollmentService) GetEnrollmentStatistics(ctx context.Context) ([]*models.EnrollmentStatistics, error) {
	return s.enrollmentRepo.GetStatistics(ctx)
}

// UpdateEnrollmentGrade replaces the course and grade of an existing
// enrollment. The grade ceiling here is 110.
func (s *EnrollmentService) UpdateEnrollmentGrade(ctx context.Context, enrollment *models.Enrollment) error {
	verr := apperrors.NewValidationError()
	if enrollment.CourseID < 0 {
		verr.Add("courseId", "course id is required")
	}
	if !validation.DecimalRange(enrollment.Grade, validation.GradeMin, validation.GradeMaxUpdate) {
		verr.Add("grade", "grade must be between 0 and 110")
	}
	if verr.HasViolations() {
		return verr
	}

	if err := s.enrollmentRepo.UpdateGrade(ctx, enrollment); err != nil {
		if apperrors.Is(err, apperrors.ErrEnrollmentNotFound) {
			s.logger.Warn().Int64("enrollmentId", enrollment.ID).Msg("Attempted to update enrollment but not found")
		}
		return err
	}

	s.logger.Info().Int64("enrollmentId", enrollment.ID).Msg("Updated enrollment")
	return nil
}

// DeleteEnrollment deletes an enrollment by ID
func (s *EnrollmentService) DeleteEnrollment(ctx context.Context, id int64) error {
	if err := s.enrollmentRepo.Delete(ctx, id); err != nil {
		if apperrors.Is(err, apperrors.ErrEnrollmentNotFound) {
			s.logger.Warn().Int64("enrollmentId", id).Msg("Attempted to delete enrollment but not found")
		}
		return err
	}

	s.logger.Info().Int64("enrollmentId", id).Msg("Deleted enrollment")
	return nil
}
