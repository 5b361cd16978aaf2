package memory

import (
	"context"

	"github.com/campusreg/studentregistration/internal/app/models"
	"github.com/campusreg/studentregistration/internal/pkg/apperrors"
)

// CourseRepository is the in-memory course store.
type CourseRepository struct {
	store *Store
}

// Create assigns the next id and stores the course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	course.ID = nextID(s.courses)
	stored := *course
	s.courses[course.ID] = &stored
	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	course, ok := s.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	copied := *course
	return &copied, nil
}

// GetAll retrieves all courses ordered by id
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var courses []*models.Course
	for _, id := range sortedIDs(s.courses) {
		copied := *s.courses[id]
		courses = append(courses, &copied)
	}
	return courses, nil
}

// Update replaces a stored course record
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	stored := *course
	s.courses[course.ID] = &stored
	return nil
}

// Delete removes a course and its enrollments
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(s.courses, id)
	for eid, enrollment := range s.enrollments {
		if enrollment.CourseID == id {
			delete(s.enrollments, eid)
		}
	}
	return nil
}

// GetStudentsForCourse lists the roster of a course
func (r *CourseRepository) GetStudentsForCourse(ctx context.Context, courseID int64) ([]*models.Student, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var students []*models.Student
	for _, id := range sortedIDs(s.enrollments) {
		enrollment := s.enrollments[id]
		if enrollment.CourseID != courseID {
			continue
		}
		if student, ok := s.students[enrollment.StudentID]; ok {
			copied := *student
			students = append(students, &copied)
		}
	}
	return students, nil
}

// GetSummaries reports the enrollment count of every course
func (r *CourseRepository) GetSummaries(ctx context.Context) ([]*models.CourseSummary, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	return r.summaries(0, false), nil
}

// GetLowEnrollment reports summaries of courses at or below threshold
func (r *CourseRepository) GetLowEnrollment(ctx context.Context, threshold int64) ([]*models.CourseSummary, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	return r.summaries(threshold, true), nil
}

// summaries must be called with the store lock held
func (r *CourseRepository) summaries(threshold int64, filtered bool) []*models.CourseSummary {
	s := r.store

	counts := make(map[int64]int64)
	for _, enrollment := range s.enrollments {
		counts[enrollment.CourseID]++
	}

	var summaries []*models.CourseSummary
	for _, id := range sortedIDs(s.courses) {
		count := counts[id]
		if filtered && count > threshold {
			continue
		}
		course := s.courses[id]
		summaries = append(summaries, &models.CourseSummary{
			CourseID:        course.ID,
			Title:           course.Title,
			Credits:         course.Credits,
			EnrollmentCount: count,
		})
	}
	return summaries
}
