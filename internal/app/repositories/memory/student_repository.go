package memory

import (
	"context"

	"github.com/campusreg/studentregistration/internal/app/models"
	"github.com/campusreg/studentregistration/internal/pkg/apperrors"
)

// StudentRepository is the in-memory student store.
type StudentRepository struct {
	store *Store
}

// Create assigns the next id and stores the student. Duplicate emails are
// rejected the way the unique constraint would reject them.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.students {
		if existing.Email == student.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}

	student.ID = nextID(s.students)
	stored := *student
	s.students[student.ID] = &stored
	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	student, ok := s.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	copied := *student
	return &copied, nil
}

// GetAll retrieves all students ordered by id
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var students []*models.Student
	for _, id := range sortedIDs(s.students) {
		copied := *s.students[id]
		students = append(students, &copied)
	}
	return students, nil
}

// Count reports the number of stored students
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.students)), nil
}

// Update replaces a stored student record
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.students[student.ID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	for id, existing := range s.students {
		if id != student.ID && existing.Email == student.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}

	stored := *student
	s.students[student.ID] = &stored
	return nil
}

// Delete removes a student and, like the cascading foreign key, the
// student's enrollments.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(s.students, id)
	for eid, enrollment := range s.enrollments {
		if enrollment.StudentID == id {
			delete(s.enrollments, eid)
		}
	}
	return nil
}

// GetCoursesForStudent lists the courses the student is enrolled in
func (r *StudentRepository) GetCoursesForStudent(ctx context.Context, studentID int64) ([]*models.Course, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.students[studentID]; !ok {
		return nil, nil
	}

	var courses []*models.Course
	for _, id := range sortedIDs(s.enrollments) {
		enrollment := s.enrollments[id]
		if enrollment.StudentID != studentID {
			continue
		}
		if course, ok := s.courses[enrollment.CourseID]; ok {
			copied := *course
			courses = append(courses, &copied)
		}
	}
	return courses, nil
}

// GetSummaries reports the grade average of every enrolled student
func (r *StudentRepository) GetSummaries(ctx context.Context) ([]*models.StudentSummary, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	grades := make(map[int64][]*float64)
	for _, enrollment := range s.enrollments {
		grades[enrollment.StudentID] = append(grades[enrollment.StudentID], enrollment.Grade)
	}

	var summaries []*models.StudentSummary
	for _, id := range sortedIDs(s.students) {
		studentGrades, ok := grades[id]
		if !ok {
			continue
		}
		student := s.students[id]
		summaries = append(summaries, &models.StudentSummary{
			StudentID:    student.ID,
			FirstName:    student.FirstName,
			LastName:     student.LastName,
			AverageGrade: average(studentGrades),
		})
	}
	return summaries, nil
}
