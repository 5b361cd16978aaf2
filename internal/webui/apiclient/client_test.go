package apiclient_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusreg/studentregistration/internal/app/controllers"
	"github.com/campusreg/studentregistration/internal/app/models/dto"
	"github.com/campusreg/studentregistration/internal/app/repositories/memory"
	"github.com/campusreg/studentregistration/internal/app/routes"
	"github.com/campusreg/studentregistration/internal/app/services"
	"github.com/campusreg/studentregistration/internal/webui/apiclient"
)

// newTestAPI starts the real API router over an in-memory store and returns
// a client pointed at it.
func newTestAPI(t *testing.T) *apiclient.Client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	lgr := zerolog.Nop()

	router := gin.New()
	routes.SetupRouter(router,
		controllers.NewStudentController(services.NewStudentService(store.Students(), lgr)),
		controllers.NewCourseController(services.NewCourseService(store.Courses(), lgr)),
		controllers.NewEnrollmentController(services.NewEnrollmentService(store.Enrollments(), lgr)),
	)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return apiclient.New(srv.URL)
}

func TestClientRoundTrip(t *testing.T) {
	client := newTestAPI(t)
	ctx := context.Background()

	student, err := client.CreateStudent(ctx, dto.CreateStudentRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), student.ID)

	course, err := client.CreateCourse(ctx, dto.CreateCourseRequest{
		Title:   "Analytical Engines",
		Credits: 4,
	})
	require.NoError(t, err)

	grade := 95.0
	enrollment, err := client.CreateEnrollment(ctx, dto.CreateEnrollmentRequest{
		StudentID: student.ID,
		CourseID:  course.ID,
		Grade:     &grade,
	})
	require.NoError(t, err)

	students, err := client.ListStudents(ctx)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "ada@example.com", students[0].Email)

	summaries, err := client.StudentSummaries(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	require.NotNil(t, summaries[0].AverageGrade)
	assert.InDelta(t, 95.0, *summaries[0].AverageGrade, 0.001)

	require.NoError(t, client.DeleteEnrollment(ctx, enrollment.ID))
	require.NoError(t, client.DeleteCourse(ctx, course.ID))
	require.NoError(t, client.DeleteStudent(ctx, student.ID))
}

func TestClientErrorMapping(t *testing.T) {
	client := newTestAPI(t)
	ctx := context.Background()

	t.Run("not found carries status and code", func(t *testing.T) {
		_, err := client.GetStudent(ctx, 42)
		require.Error(t, err)

		var apiErr *apiclient.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, 404, apiErr.Status)
		assert.Equal(t, string(dto.ErrorCodeResourceNotFound), apiErr.Code)
	})

	t.Run("conflict surfaces the API message", func(t *testing.T) {
		_, err := client.CreateStudent(ctx, dto.CreateStudentRequest{
			FirstName: "First", LastName: "User", Email: "same@example.com",
		})
		require.NoError(t, err)

		_, err = client.CreateStudent(ctx, dto.CreateStudentRequest{
			FirstName: "Second", LastName: "User", Email: "same@example.com",
		})
		require.Error(t, err)

		var apiErr *apiclient.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, 409, apiErr.Status)
		assert.Equal(t, "Email already exists", apiErr.Message)
	})
}
