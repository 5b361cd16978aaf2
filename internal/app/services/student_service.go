package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campusreg/studentregistration/internal/app/models"
	"github.com/campusreg/studentregistration/internal/pkg/apperrors"
	"github.com/campusreg/studentregistration/internal/pkg/validation"
)

// StudentRepository is the data access surface the student service needs
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
	GetCoursesForStudent(ctx context.Context, studentID int64) ([]*models.Course, error)
	GetSummaries(ctx context.Context) ([]*models.StudentSummary, error)
}

// StudentService handles student-related operations
type StudentService struct {
	studentRepo StudentRepository
	logger      zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo StudentRepository, logger zerolog.Logger) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// validateStudent checks field constraints before any write reaches storage
func validateStudent(student *models.Student) error {
	verr := apperrors.NewValidationError()

	if !validation.NewStringValidation(student.FirstName).WithMaxLength(validation.NameMaxLength).Validate() {
		verr.Add("firstName", "first name is required and must be at most 50 characters")
	}
	if !validation.NewStringValidation(student.LastName).WithMaxLength(validation.NameMaxLength).Validate() {
		verr.Add("lastName", "last name is required and must be at most 50 characters")
	}
	if !validation.NewStringValidation(student.Email).WithMaxLength(validation.EmailMaxLength).Validate() {
		verr.Add("email", "email is required and must be at most 100 characters")
	} else if !validation.Email(student.Email) {
		verr.Add("email", "not a valid email address")
	}
	if student.PhoneNumber != nil {
		if !validation.NewStringValidation(*student.PhoneNumber).WithRequired(false).WithMaxLength(validation.PhoneMaxLength).Validate() {
			verr.Add("phoneNumber", "phone number must be at most 15 characters")
		}
	}
	if student.Major != nil {
		if !validation.NewStringValidation(*student.Major).WithRequired(false).WithMaxLength(validation.MajorMaxLength).Validate() {
			verr.Add("major", "major must be at most 100 characters")
		}
	}

	if verr.HasViolations() {
		return verr
	}
	return nil
}

// CreateStudent validates and persists a new student. The identifier is
// assigned by the repository.
func (s *StudentService) CreateStudent(ctx context.Context, student *models.Student) error {
	if err := validateStudent(student); err != nil {
		return err
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return err
	}

	s.logger.Info().
		Int64("studentId", student.ID).
		Str("firstName", student.FirstName).
		Str("lastName", student.LastName).
		Str("email", student.Email).
		Msg("Created new student")
	return nil
}

// GetStudentByID retrieves a student by ID
func (s *StudentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrStudentNotFound) {
			s.logger.Warn().Int64("studentId", id).Msg("Student not found")
		}
		return nil, err
	}

	return student, nil
}

// GetAllStudents retrieves all students
func (s *StudentService) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("count", len(students)).Msg("Retrieved students")
	return students, nil
}

// GetCoursesForStudent retrieves every course the student is enrolled
// in. An empty result is reported as not found, whether the student is
// missing or simply not enrolled anywhere.
func (s *StudentService) GetCoursesForStudent(ctx context.Context, studentID int64) ([]*models.Course, error) {
	courses, err := s.studentRepo.GetCoursesForStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if len(courses) == 0 {
		s.logger.Warn().Int64("studentId", studentID).Msg("Student was not found in any courses")
		return nil, apperrors.ErrStudentNotFound
	}

	return courses, nil
}

// GetStudentSummaries reports the grade average of every student with at
// least one enrollment. Students without enrollments are skipped, not
// surfaced as an error.
func (s *StudentService) GetStudentSummaries(ctx context.Context) ([]*models.StudentSummary, error) {
	summaries, err := s.studentRepo.GetSummaries(ctx)
	if err != nil {
		return nil, err
	}

	total, err := s.studentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if skipped := total - int64(len(summaries)); skipped > 0 {
		s.logger.Warn().Int64("skipped", skipped).Msg("Students without enrollments skipped from summaries")
	}

	return summaries, nil
}

// UpdateStudent replaces every mutable field of an existing student
func (s *StudentService) UpdateStudent(ctx context.Context, student *models.Student) error {
	if err := validateStudent(student); err != nil {
		return err
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		if apperrors.Is(err, apperrors.ErrStudentNotFound) {
			s.logger.Warn().Int64("studentId", student.ID).Msg("Attempted to update student but not found")
		}
		return err
	}

	s.logger.Info().Int64("studentId", student.ID).Msg("Updated student")
	return nil
}

// DeleteStudent deletes a student by ID
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	if err := s.studentRepo.Delete(ctx, id); err != nil {
		if apperrors.Is(err, apperrors.ErrStudentNotFound) {
			s.logger.Warn().Int64("studentId", id).Msg("Attempted to delete student but not found")
		}
		return err
	}

	s.logger.Info().Int64("studentId", id).Msg("Deleted student")
	return nil
}
