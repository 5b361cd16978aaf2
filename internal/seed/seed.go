// Package seed loads a small sample data set for local development.
package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/campusreg/studentregistration/internal/app/models"
	"github.com/campusreg/studentregistration/internal/app/repositories"
	"github.com/campusreg/studentregistration/internal/pkg/apperrors"
)

// CreateSampleData inserts a few students, courses and enrollments so a
// fresh database has something to show. Runs only when the store is empty.
func CreateSampleData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	repos := repositories.NewRepositories(dbPool)

	count, err := repos.StudentRepository.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		lgr.Debug().Int64("students", count).Msg("Sample data skipped, store is not empty")
		return nil
	}

	lgr.Info().Msg("Seeding sample data...")
	var finalErr error

	students := []*models.Student{
		{
			FirstName:   "Alice",
			LastName:    "Nguyen",
			Email:       "alice.nguyen@example.edu",
			PhoneNumber: strPtr("555-0101"),
			DateOfBirth: timePtr(time.Date(2003, time.March, 14, 0, 0, 0, 0, time.UTC)),
			Major:       strPtr("Computer Science"),
		},
		{
			FirstName: "Burak",
			LastName:  "Demir",
			Email:     "burak.demir@example.edu",
			Major:     strPtr("Mathematics"),
		},
		{
			FirstName: "Clara",
			LastName:  "Osei",
			Email:     "clara.osei@example.edu",
		},
	}
	for _, s := range students {
		if err := repos.StudentRepository.Create(ctx, s); err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			lgr.Error().Err(err).Str("email", s.Email).Msg("Error seeding student")
			finalErr = errors.Join(finalErr, err)
		}
	}

	courses := []*models.Course{
		{Title: "Introduction to Computer Science", Credits: 4},
		{Title: "Linear Algebra", Credits: 3},
		{Title: "Academic Writing", Credits: 2},
	}
	for _, c := range courses {
		if err := repos.CourseRepository.Create(ctx, c); err != nil {
			lgr.Error().Err(err).Str("title", c.Title).Msg("Error seeding course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr != nil {
		return finalErr
	}

	enrollments := []*models.Enrollment{
		{StudentID: students[0].ID, CourseID: courses[0].ID, Grade: floatPtr(92)},
		{StudentID: students[0].ID, CourseID: courses[1].ID, Grade: floatPtr(85)},
		{StudentID: students[1].ID, CourseID: courses[1].ID, Grade: floatPtr(78)},
		{StudentID: students[1].ID, CourseID: courses[2].ID},
		{StudentID: students[2].ID, CourseID: courses[0].ID},
	}
	for _, e := range enrollments {
		if err := repos.EnrollmentRepository.Create(ctx, e); err != nil && !errors.Is(err, apperrors.ErrDuplicateEnrollment) {
			lgr.Error().Err(err).Int64("studentId", e.StudentID).Int64("courseId", e.CourseID).
				Msg("Error seeding enrollment")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Sample data seeded")
	}
	return finalErr
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func floatPtr(f float64) *float64 { return &f }
