package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusreg/studentregistration/internal/app/models"
	"github.com/campusreg/studentregistration/internal/pkg/apperrors"
	"github.com/campusreg/studentregistration/internal/pkg/dberrors"
	"github.com/campusreg/studentregistration/internal/pkg/helpers"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// Create inserts a new course with the next identifier assigned inside
// the insert statement
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (course_id, title, credits)
		SELECT COALESCE(MAX(course_id) + 1, 0), $1, $2
		FROM courses
		RETURNING course_id
	`

	err := r.db.QueryRow(ctx, query, course.Title, course.Credits).Scan(&course.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT course_id, title, credits
		FROM courses
		WHERE course_id = $1
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(&course.ID, &course.Title, &course.Credits)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// GetAll retrieves all courses
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	query := `
		SELECT course_id, title, credits
		FROM courses
		ORDER BY course_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(&course.ID, &course.Title, &course.Credits); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// Update replaces the title and credits of an existing course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET title = $1, credits = $2
		WHERE course_id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, course.Title, course.Credits, course.ID)
	if err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete deletes a course by ID
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE course_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// GetStudentsForCourse retrieves every student enrolled in the course.
// An empty slice is a valid result, callers decide whether the course
// itself exists.
func (r *CourseRepository) GetStudentsForCourse(ctx context.Context, courseID int64) ([]*models.Student, error) {
	query := `
		SELECT s.student_id, s.first_name, s.last_name, s.email, s.phone_number, s.date_of_birth, s.major
		FROM students s
		JOIN enrollments e ON e.student_id = s.student_id
		WHERE e.course_id = $1
		ORDER BY s.student_id
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		var phone sql.NullString
		var dob sql.NullTime
		var major sql.NullString
		if err := rows.Scan(
			&student.ID,
			&student.FirstName,
			&student.LastName,
			&student.Email,
			&phone,
			&dob,
			&major,
		); err != nil {
			return nil, err
		}
		student.PhoneNumber = helpers.StringPtr(phone)
		student.DateOfBirth = helpers.TimePtr(dob)
		student.Major = helpers.StringPtr(major)
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// GetSummaries reports every course with its enrollment count
func (r *CourseRepository) GetSummaries(ctx context.Context) ([]*models.CourseSummary, error) {
	query := `
		SELECT c.course_id, c.title, c.credits, COUNT(e.enrollment_id)
		FROM courses c
		LEFT JOIN enrollments e ON e.course_id = c.course_id
		GROUP BY c.course_id, c.title, c.credits
		ORDER BY c.course_id
	`

	return r.querySummaries(ctx, query)
}

// GetLowEnrollment reports courses whose enrollment count does not
// exceed the threshold
func (r *CourseRepository) GetLowEnrollment(ctx context.Context, threshold int64) ([]*models.CourseSummary, error) {
	query := `
		SELECT c.course_id, c.title, c.credits, COUNT(e.enrollment_id)
		FROM courses c
		LEFT JOIN enrollments e ON e.course_id = c.course_id
		GROUP BY c.course_id, c.title, c.credits
		HAVING COUNT(e.enrollment_id) <= $1
		ORDER BY c.course_id
	`

	return r.querySummaries(ctx, query, threshold)
}

func (r *CourseRepository) querySummaries(ctx context.Context, query string, args ...interface{}) ([]*models.CourseSummary, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []*models.CourseSummary
	for rows.Next() {
		var summary models.CourseSummary
		if err := rows.Scan(&summary.CourseID, &summary.Title, &summary.Credits, &summary.EnrollmentCount); err != nil {
			return nil, err
		}
		summaries = append(summaries, &summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
