package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campusreg/studentregistration/internal/app/models"
	"github.com/campusreg/studentregistration/internal/pkg/apperrors"
	"github.com/campusreg/studentregistration/internal/pkg/validation"
)

// CourseRepository is the data access surface the course service needs
type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
	GetStudentsForCourse(ctx context.Context, courseID int64) ([]*models.Student, error)
	GetSummaries(ctx context.Context) ([]*models.CourseSummary, error)
	GetLowEnrollment(ctx context.Context, threshold int64) ([]*models.CourseSummary, error)
}

// CourseService handles course-related operations
type CourseService struct {
	courseRepo CourseRepository
	logger     zerolog.Logger
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo CourseRepository, logger zerolog.Logger) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		logger:     logger,
	}
}

// validateCourse checks the title constraint shared by create and update
func validateCourse(course *models.Course) *apperrors.ValidationError {
	verr := apperrors.NewValidationError()

	if !validation.NewStringValidation(course.Title).WithMaxLength(validation.TitleMaxLength).Validate() {
		verr.Add("title", "title is required and must be at most 100 characters")
	}

	return verr
}

// CreateCourse validates and persists a new course. The credits range is
// enforced on creation only.
func (s *CourseService) CreateCourse(ctx context.Context, course *models.Course) error {
	verr := validateCourse(course)
	if !validation.IntRange(course.Credits, validation.CreditsMin, validation.CreditsMax) {
		verr.Add("credits", "credits must be between 1 and 6")
	}
	if verr.HasViolations() {
		return verr
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return err
	}

	s.logger.Info().
		Int64("courseId", course.ID).
		Str("title", course.Title).
		Int("credits", course.Credits).
		Msg("Created new course")
	return nil
}

// GetCourseByID retrieves a course by ID
func (s *CourseService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrCourseNotFound) {
			s.logger.Warn().Int64("courseId", id).Msg("Course not found")
		}
		return nil, err
	}

	return course, nil
}

// GetAllCourses retrieves all courses
func (s *CourseService) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("count", len(courses)).Msg("Retrieved courses")
	return courses, nil
}

// GetStudentsForCourse retrieves every student enrolled in the course.
// A missing course is not found; a course with no students yields an
// empty list.
func (s *CourseService) GetStudentsForCourse(ctx context.Context, courseID int64) ([]*models.Student, error) {
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		if apperrors.Is(err, apperrors.ErrCourseNotFound) {
			s.logger.Warn().Int64("courseId", courseID).Msg("Course not found")
		}
		return nil, err
	}

	students, err := s.courseRepo.GetStudentsForCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	return students, nil
}

// GetCourseSummaries reports every course with its enrollment count
func (s *CourseService) GetCourseSummaries(ctx context.Context) ([]*models.CourseSummary, error) {
	return s.courseRepo.GetSummaries(ctx)
}

// GetLowEnrollmentCourses reports courses whose enrollment count does
// not exceed the threshold
func (s *CourseService) GetLowEnrollmentCourses(ctx context.Context, threshold int64) ([]*models.CourseSummary, error) {
	summaries, err := s.courseRepo.GetLowEnrollment(ctx, threshold)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int("count", len(summaries)).
		Int64("threshold", threshold).
		Msg("Retrieved courses with enrollment below threshold")
	return summaries, nil
}

// UpdateCourse replaces the title and credits of an existing course.
// The credits range check does not apply here.
func (s *CourseService) UpdateCourse(ctx context.Context, course *models.Course) error {
	if verr := validateCourse(course); verr.HasViolations() {
		return verr
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		if apperrors.Is(err, apperrors.ErrCourseNotFound) {
			s.logger.Warn().Int64("courseId", course.ID).Msg("Attempted to update course but not found")
		}
		return err
	}

	s.logger.Info().Int64("courseId", course.ID).Msg("Updated course")
	return nil
}

// DeleteCourse deletes a course by ID
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	if err := s.courseRepo.Delete(ctx, id); err != nil {
		if apperrors.Is(err, apperrors.ErrCourseNotFound) {
			s.logger.Warn().Int64("courseId", id).Msg("Attempted to delete course but not found")
		}
		return err
	}

	s.logger.Info().Int64("courseId", id).Msg("Deleted course")
	return nil
}
