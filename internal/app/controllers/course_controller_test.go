package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusreg/studentregistration/internal/app/models"
)

func createCourse(t *testing.T, router *gin.Engine, title string, credits int) models.Course {
	t.Helper()
	w, env := doJSON(t, router, http.MethodPost, "/v1/courses", map[string]interface{}{
		"title":   title,
		"credits": credits,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var course models.Course
	decodeData(t, env, &course)
	return course
}

func TestCourseEndpoints(t *testing.T) {
	t.Run("create assigns sequential ids from zero", func(t *testing.T) {
		router, _ := newTestRouter(t)

		first := createCourse(t, router, "Algorithms", 4)
		second := createCourse(t, router, "Databases", 3)
		assert.Equal(t, int64(0), first.ID)
		assert.Equal(t, int64(1), second.ID)
	})

	t.Run("credits outside 1..6 rejected on create", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w, env := doJSON(t, router, http.MethodPost, "/v1/courses", map[string]interface{}{
			"title":   "Overload",
			"credits": 7,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.NotNil(t, env.Error)

		w, _ = doJSON(t, router, http.MethodPost, "/v1/courses", map[string]interface{}{
			"title":   "Underload",
			"credits": 0,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("update does not enforce the credits range", func(t *testing.T) {
		router, _ := newTestRouter(t)

		course := createCourse(t, router, "Special Topics", 3)

		w, _ := doJSON(t, router, http.MethodPut, "/v1/courses", map[string]interface{}{
			"courseId": course.ID,
			"title":    "Special Topics",
			"credits":  9,
		})
		require.Equal(t, http.StatusOK, w.Code)

		w, env := doJSON(t, router, http.MethodGet, fmt.Sprintf("/v1/courses/by-id?courseId=%d", course.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)
		var fetched models.Course
		decodeData(t, env, &fetched)
		assert.Equal(t, 9, fetched.Credits)
	})

	t.Run("update missing course returns 404", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w, _ := doJSON(t, router, http.MethodPut, "/v1/courses", map[string]interface{}{
			"courseId": 3,
			"title":    "Phantom",
			"credits":  3,
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("roster of existing course may be empty", func(t *testing.T) {
		router, _ := newTestRouter(t)

		course := createCourse(t, router, "Seminar", 2)

		w, env := doJSON(t, router, http.MethodGet, fmt.Sprintf("/v1/courses/students?courseId=%d", course.ID), nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, env.Error)
	})

	t.Run("roster of missing course returns 404", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w, _ := doJSON(t, router, http.MethodGet, "/v1/courses/students?courseId=8", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("low enrollment filters by threshold", func(t *testing.T) {
		router, _ := newTestRouter(t)

		popular := createCourse(t, router, "Popular", 3)
		quiet := createCourse(t, router, "Quiet", 3)

		for i := 0; i < 2; i++ {
			w, env := doJSON(t, router, http.MethodPost, "/v1/students",
				createStudentPayload(fmt.Sprintf("s%d@example.com", i)))
			require.Equal(t, http.StatusCreated, w.Code)
			var student models.Student
			decodeData(t, env, &student)

			w, _ = doJSON(t, router, http.MethodPost, "/v1/enrollments", map[string]interface{}{
				"studentId": student.ID,
				"courseId":  popular.ID,
			})
			require.Equal(t, http.StatusCreated, w.Code)
		}

		w, env := doJSON(t, router, http.MethodGet, "/v1/courses/low-enrollment?threshold=1", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var summaries []models.CourseSummary
		decodeData(t, env, &summaries)
		require.Len(t, summaries, 1)
		assert.Equal(t, quiet.ID, summaries[0].CourseID)
		assert.Equal(t, int64(0), summaries[0].EnrollmentCount)

		w, env = doJSON(t, router, http.MethodGet, "/v1/courses/low-enrollment?threshold=2", nil)
		require.Equal(t, http.StatusOK, w.Code)
		summaries = nil
		decodeData(t, env, &summaries)
		assert.Len(t, summaries, 2)
	})

	t.Run("summaries count enrollments per course", func(t *testing.T) {
		router, _ := newTestRouter(t)

		course := createCourse(t, router, "Counted", 3)

		w, env := doJSON(t, router, http.MethodPost, "/v1/students", createStudentPayload("c@example.com"))
		require.Equal(t, http.StatusCreated, w.Code)
		var student models.Student
		decodeData(t, env, &student)

		w, _ = doJSON(t, router, http.MethodPost, "/v1/enrollments", map[string]interface{}{
			"studentId": student.ID,
			"courseId":  course.ID,
		})
		require.Equal(t, http.StatusCreated, w.Code)

		w, env = doJSON(t, router, http.MethodGet, "/v1/courses/summaries", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var summaries []models.CourseSummary
		decodeData(t, env, &summaries)
		require.Len(t, summaries, 1)
		assert.Equal(t, int64(1), summaries[0].EnrollmentCount)
		assert.Equal(t, "Counted", summaries[0].Title)
	})
}
