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

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

// Create inserts a new enrollment with the next identifier assigned
// inside the insert statement. The unique (student, course) constraint
// rejects duplicate enrollments, the foreign keys reject references to
// missing students or courses.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		INSERT INTO enrollments (enrollment_id, student_id, course_id, grade)
		SELECT COALESCE(MAX(enrollment_id) + 1, 0), $1, $2, $3
		FROM enrollments
		RETURNING enrollment_id
	`

	err := r.db.QueryRow(ctx, query,
		enrollment.StudentID,
		enrollment.CourseID,
		helpers.GetNullFloat64(enrollment.Grade),
	).Scan(&enrollment.ID)

	if err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, "uq_enrollments_student_course"):
			return apperrors.ErrDuplicateEnrollment
		case dberrors.IsUniqueViolation(err):
			return apperrors.ErrConflict
		case dberrors.IsForeignKeyViolation(err):
			return apperrors.NewResourceNotFoundError("student or course does not exist")
		}
		return fmt.Errorf("error creating enrollment: %w", err)
	}

	return nil
}

// GetByID retrieves an enrollment by ID
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	query := `
		SELECT enrollment_id, student_id, course_id, grade
		FROM enrollments
		WHERE enrollment_id = $1
	`

	var enrollment models.Enrollment
	var grade sql.NullFloat64
	err := r.db.QueryRow(ctx, query, id).Scan(
		&enrollment.ID,
		&enrollment.StudentID,
		&enrollment.CourseID,
		&grade,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}

	enrollment.Grade = helpers.Float64Ptr(grade)
	return &enrollment, nil
}

// GetAll retrieves all enrollments
func (r *EnrollmentRepository) GetAll(ctx context.Context) ([]*models.Enrollment, error) {
	query := `
		SELECT enrollment_id, student_id, course_id, grade
		FROM enrollments
		ORDER BY enrollment_id
	`

	return r.queryEnrollments(ctx, query)
}

// GetByStudentID retrieves every enrollment belonging to the student
func (r *EnrollmentRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	query := `
		SELECT enrollment_id, student_id, course_id, grade
		FROM enrollments
		WHERE student_id = $1
		ORDER BY enrollment_id
	`

	return r.queryEnrollments(ctx, query, studentID)
}

// GetByCourseID retrieves every enrollment belonging to the course
func (r *EnrollmentRepository) GetByCourseID(ctx context.Context, courseID int64) ([]*models.Enrollment, error) {
	query := `
		SELECT enrollment_id, student_id, course_id, grade
		FROM enrollments
		WHERE course_id = $1
		ORDER BY enrollment_id
	`

	return r.queryEnrollments(ctx, query, courseID)
}

// UpdateGrade replaces the course and grade of an existing enrollment
func (r *EnrollmentRepository) UpdateGrade(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		UPDATE enrollments
		SET course_id = $1, grade = $2
		WHERE enrollment_id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query,
		enrollment.CourseID,
		helpers.GetNullFloat64(enrollment.Grade),
		enrollment.ID,
	)

	if err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, "uq_enrollments_student_course"):
			return apperrors.ErrDuplicateEnrollment
		case dberrors.IsForeignKeyViolation(err):
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error updating enrollment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}

// Delete deletes an enrollment by ID
func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM enrollments WHERE enrollment_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting enrollment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}

// GetStatistics reports, for every student that appears in an
// enrollment, the grade average over graded enrollments and the total
// enrollment count including ungraded ones.
func (r *EnrollmentRepository) GetStatistics(ctx context.Context) ([]*models.EnrollmentStatistics, error) {
	query := `
		SELECT e.student_id, s.first_name, s.last_name, AVG(e.grade), COUNT(*)
		FROM enrollments e
		JOIN students s ON s.student_id = e.student_id
		GROUP BY e.student_id, s.first_name, s.last_name
		ORDER BY e.student_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []*models.EnrollmentStatistics
	for rows.Next() {
		var stat models.EnrollmentStatistics
		var avg sql.NullFloat64
		if err := rows.Scan(&stat.StudentID, &stat.FirstName, &stat.LastName, &avg, &stat.TotalEnrollments); err != nil {
			return nil, err
		}
		stat.AverageGrade = helpers.Float64Ptr(avg)
		stats = append(stats, &stat)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *EnrollmentRepository) queryEnrollments(ctx context.Context, query string, args ...interface{}) ([]*models.Enrollment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		var enrollment models.Enrollment
		var grade sql.NullFloat64
		if err := rows.Scan(&enrollment.ID, &enrollment.StudentID, &enrollment.CourseID, &grade); err != nil {
			return nil, err
		}
		enrollment.Grade = helpers.Float64Ptr(grade)
		enrollments = append(enrollments, &enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}
