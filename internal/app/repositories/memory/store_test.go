package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusreg/studentregistration/internal/app/models"
	"github.com/campusreg/studentregistration/internal/app/repositories/memory"
)

// Ids follow max+1 assignment, so deleting the highest record frees its id
// for the next insert while lower gaps stay unused.
func TestNextIDFollowsMaxPlusOne(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repo := store.Courses()

	a := &models.Course{Title: "A", Credits: 3}
	b := &models.Course{Title: "B", Credits: 3}
	c := &models.Course{Title: "C", Credits: 3}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))
	require.NoError(t, repo.Create(ctx, c))
	require.Equal(t, int64(2), c.ID)

	// deleting a middle record leaves the max untouched
	require.NoError(t, repo.Delete(ctx, a.ID))
	d := &models.Course{Title: "D", Credits: 3}
	require.NoError(t, repo.Create(ctx, d))
	assert.Equal(t, int64(3), d.ID)

	// deleting the max frees its id
	require.NoError(t, repo.Delete(ctx, d.ID))
	e := &models.Course{Title: "E", Credits: 3}
	require.NoError(t, repo.Create(ctx, e))
	assert.Equal(t, int64(3), e.ID)
}

func TestCascadeOnStudentDelete(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	student := &models.Student{FirstName: "A", LastName: "B", Email: "a@b.co"}
	require.NoError(t, store.Students().Create(ctx, student))
	course := &models.Course{Title: "C", Credits: 3}
	require.NoError(t, store.Courses().Create(ctx, course))

	enrollment := &models.Enrollment{StudentID: student.ID, CourseID: course.ID}
	require.NoError(t, store.Enrollments().Create(ctx, enrollment))

	require.NoError(t, store.Students().Delete(ctx, student.ID))

	enrollments, err := store.Enrollments().GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, enrollments)
}
