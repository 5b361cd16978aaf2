package memory

import (
	"context"

	"github.com/campusreg/studentregistration/internal/app/models"
	"github.com/campusreg/studentregistration/internal/pkg/apperrors"
)

// EnrollmentRepository is the in-memory enrollment store.
type EnrollmentRepository struct {
	store *Store
}

// Create assigns the next id and stores the enrollment. Missing referenced
// records and duplicate (student, course) pairs fail the way the foreign
// key and unique constraints would.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	_, studentOK := s.students[enrollment.StudentID]
	_, courseOK := s.courses[enrollment.CourseID]
	if !studentOK || !courseOK {
		return apperrors.NewResourceNotFoundError("student or course does not exist")
	}
	for _, existing := range s.enrollments {
		if existing.StudentID == enrollment.StudentID && existing.CourseID == enrollment.CourseID {
			return apperrors.ErrDuplicateEnrollment
		}
	}

	enrollment.ID = nextID(s.enrollments)
	stored := *enrollment
	s.enrollments[enrollment.ID] = &stored
	return nil
}

// GetByID retrieves an enrollment by ID
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	enrollment, ok := s.enrollments[id]
	if !ok {
		return nil, apperrors.ErrEnrollmentNotFound
	}
	copied := *enrollment
	return &copied, nil
}

// GetAll retrieves all enrollments ordered by id
func (r *EnrollmentRepository) GetAll(ctx context.Context) ([]*models.Enrollment, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	return r.filter(func(*models.Enrollment) bool { return true }), nil
}

// GetByStudentID retrieves the enrollments of one student
func (r *EnrollmentRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	return r.filter(func(e *models.Enrollment) bool { return e.StudentID == studentID }), nil
}

// GetByCourseID retrieves the enrollments in one course
func (r *EnrollmentRepository) GetByCourseID(ctx context.Context, courseID int64) ([]*models.Enrollment, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	return r.filter(func(e *models.Enrollment) bool { return e.CourseID == courseID }), nil
}

// UpdateGrade replaces the course and grade of a stored enrollment
func (r *EnrollmentRepository) UpdateGrade(ctx context.Context, enrollment *models.Enrollment) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.enrollments[enrollment.ID]
	if !ok {
		return apperrors.ErrEnrollmentNotFound
	}
	if _, ok := s.courses[enrollment.CourseID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	for id, existing := range s.enrollments {
		if id != enrollment.ID && existing.StudentID == stored.StudentID && existing.CourseID == enrollment.CourseID {
			return apperrors.ErrDuplicateEnrollment
		}
	}

	stored.CourseID = enrollment.CourseID
	stored.Grade = enrollment.Grade
	return nil
}

// Delete removes an enrollment
func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.enrollments[id]; !ok {
		return apperrors.ErrEnrollmentNotFound
	}
	delete(s.enrollments, id)
	return nil
}

// GetStatistics reports the grade average and enrollment count of every
// enrolled student
func (r *EnrollmentRepository) GetStatistics(ctx context.Context) ([]*models.EnrollmentStatistics, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	grades := make(map[int64][]*float64)
	for _, enrollment := range s.enrollments {
		grades[enrollment.StudentID] = append(grades[enrollment.StudentID], enrollment.Grade)
	}

	var stats []*models.EnrollmentStatistics
	for _, id := range sortedIDs(s.students) {
		studentGrades, ok := grades[id]
		if !ok {
			continue
		}
		student := s.students[id]
		stats = append(stats, &models.EnrollmentStatistics{
			StudentID:        student.ID,
			FirstName:        student.FirstName,
			LastName:         student.LastName,
			AverageGrade:     average(studentGrades),
			TotalEnrollments: int64(len(studentGrades)),
		})
	}
	return stats, nil
}

// filter must be called with the store lock held
func (r *EnrollmentRepository) filter(keep func(*models.Enrollment) bool) []*models.Enrollment {
	s := r.store

	var enrollments []*models.Enrollment
	for _, id := range sortedIDs(s.enrollments) {
		enrollment := s.enrollments[id]
		if keep(enrollment) {
			copied := *enrollment
			enrollments = append(enrollments, &copied)
		}
	}
	return enrollments
}
