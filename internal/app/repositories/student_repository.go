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

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// Create inserts a new student, assigning the next identifier inside the
// insert itself. Concurrent creates serialize on the primary key: the
// loser surfaces as a conflict instead of overwriting.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (student_id, first_name, last_name, email, phone_number, date_of_birth, major)
		SELECT COALESCE(MAX(student_id) + 1, 0), $1, $2, $3, $4, $5, $6
		FROM students
		RETURNING student_id
	`

	err := r.db.QueryRow(ctx, query,
		student.FirstName,
		student.LastName,
		student.Email,
		helpers.GetNullString(student.PhoneNumber),
		helpers.GetNullTime(student.DateOfBirth),
		helpers.GetNullString(student.Major),
	).Scan(&student.ID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_students_email") {
			return apperrors.ErrEmailAlreadyExists
		}
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT student_id, first_name, last_name, email, phone_number, date_of_birth, major
		FROM students
		WHERE student_id = $1
	`

	student, err := r.scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetAll retrieves all students
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT student_id, first_name, last_name, email, phone_number, date_of_birth, major
		FROM students
		ORDER BY student_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := r.scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Count returns the number of student records
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}

// Update replaces every mutable field of an existing student
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET first_name = $1, last_name = $2, email = $3, phone_number = $4, date_of_birth = $5, major = $6
		WHERE student_id = $7
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.FirstName,
		student.LastName,
		student.Email,
		helpers.GetNullString(student.PhoneNumber),
		helpers.GetNullTime(student.DateOfBirth),
		helpers.GetNullString(student.Major),
		student.ID,
	)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_students_email") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete deletes a student by ID
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE student_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// GetCoursesForStudent retrieves every course the student is enrolled in
func (r *StudentRepository) GetCoursesForStudent(ctx context.Context, studentID int64) ([]*models.Course, error) {
	query := `
		SELECT c.course_id, c.title, c.credits
		FROM courses c
		WHERE EXISTS (
			SELECT 1 FROM enrollments e
			WHERE e.course_id = c.course_id AND e.student_id = $1
		)
		ORDER BY c.course_id
	`

	rows, err := r.db.Query(ctx, query, studentID)
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

// GetSummaries computes the per-student grade average across every
// student that has at least one enrollment. AVG skips null grades, so a
// student whose enrollments are all ungraded reports a null average.
func (r *StudentRepository) GetSummaries(ctx context.Context) ([]*models.StudentSummary, error) {
	query := `
		SELECT s.student_id, s.first_name, s.last_name, AVG(e.grade)
		FROM students s
		JOIN enrollments e ON e.student_id = s.student_id
		GROUP BY s.student_id, s.first_name, s.last_name
		ORDER BY s.student_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []*models.StudentSummary
	for rows.Next() {
		var summary models.StudentSummary
		var avg sql.NullFloat64
		if err := rows.Scan(&summary.StudentID, &summary.FirstName, &summary.LastName, &avg); err != nil {
			return nil, err
		}
		summary.AverageGrade = helpers.Float64Ptr(avg)
		summaries = append(summaries, &summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}

// scanStudent maps one row onto a student model
func (r *StudentRepository) scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	var phone sql.NullString
	var dob sql.NullTime
	var major sql.NullString

	if err := row.Scan(
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
	return &student, nil
}
