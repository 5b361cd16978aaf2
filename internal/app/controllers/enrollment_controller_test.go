package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusreg/studentregistration/internal/app/models"
	"github.com/campusreg/studentregistration/internal/app/models/dto"
)

func createStudent(t *testing.T, router *gin.Engine, email string) models.Student {
	t.Helper()
	w, env := doJSON(t, router, http.MethodPost, "/v1/students", createStudentPayload(email))
	require.Equal(t, http.StatusCreated, w.Code)
	var student models.Student
	decodeData(t, env, &student)
	return student
}

func enroll(t *testing.T, router *gin.Engine, studentID, courseID int64, grade *float64) models.Enrollment {
	t.Helper()
	payload := map[string]interface{}{
		"studentId": studentID,
		"courseId":  courseID,
	}
	if grade != nil {
		payload["grade"] = *grade
	}
	w, env := doJSON(t, router, http.MethodPost, "/v1/enrollments", payload)
	require.Equal(t, http.StatusCreated, w.Code)
	var enrollment models.Enrollment
	decodeData(t, env, &enrollment)
	return enrollment
}

func TestEnrollmentEndpoints(t *testing.T) {
	t.Run("duplicate pair conflicts", func(t *testing.T) {
		router, _ := newTestRouter(t)

		student := createStudent(t, router, "pair@example.com")
		course := createCourse(t, router, "Topology", 3)
		enroll(t, router, student.ID, course.ID, nil)

		w, env := doJSON(t, router, http.MethodPost, "/v1/enrollments", map[string]interface{}{
			"studentId": student.ID,
			"courseId":  course.ID,
		})
		assert.Equal(t, http.StatusConflict, w.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, dto.ErrorCodeResourceAlreadyExists, env.Error.Code)
	})

	t.Run("enrolling a missing student or course returns 404", func(t *testing.T) {
		router, _ := newTestRouter(t)

		course := createCourse(t, router, "Orphaned", 3)

		w, _ := doJSON(t, router, http.MethodPost, "/v1/enrollments", map[string]interface{}{
			"studentId": 7,
			"courseId":  course.ID,
		})
		assert.Equal(t, http.StatusNotFound, w.Code)

		student := createStudent(t, router, "lost@example.com")
		w, _ = doJSON(t, router, http.MethodPost, "/v1/enrollments", map[string]interface{}{
			"studentId": student.ID,
			"courseId":  99,
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("grade above 100 rejected on create", func(t *testing.T) {
		router, _ := newTestRouter(t)

		student := createStudent(t, router, "grades@example.com")
		course := createCourse(t, router, "Grading", 3)

		w, env := doJSON(t, router, http.MethodPost, "/v1/enrollments", map[string]interface{}{
			"studentId": student.ID,
			"courseId":  course.ID,
			"grade":     101,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.NotNil(t, env.Error)
	})

	t.Run("grade update accepts up to 110", func(t *testing.T) {
		router, _ := newTestRouter(t)

		student := createStudent(t, router, "extra@example.com")
		course := createCourse(t, router, "Extra Credit", 3)
		enrollment := enroll(t, router, student.ID, course.ID, nil)

		w, _ := doJSON(t, router, http.MethodPut, "/v1/enrollments/grade", map[string]interface{}{
			"enrollmentId": enrollment.ID,
			"courseId":     course.ID,
			"grade":        105,
		})
		require.Equal(t, http.StatusOK, w.Code)

		w, env := doJSON(t, router, http.MethodGet, fmt.Sprintf("/v1/enrollments/by-id?enrollmentId=%d", enrollment.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)
		var fetched models.Enrollment
		decodeData(t, env, &fetched)
		require.NotNil(t, fetched.Grade)
		assert.Equal(t, 105.0, *fetched.Grade)

		w, _ = doJSON(t, router, http.MethodPut, "/v1/enrollments/grade", map[string]interface{}{
			"enrollmentId": enrollment.ID,
			"courseId":     course.ID,
			"grade":        111,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("grade update of missing enrollment returns 404", func(t *testing.T) {
		router, _ := newTestRouter(t)

		course := createCourse(t, router, "Void", 3)

		w, _ := doJSON(t, router, http.MethodPut, "/v1/enrollments/grade", map[string]interface{}{
			"enrollmentId": 12,
			"courseId":     course.ID,
			"grade":        60,
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("listing by student 404s on empty result", func(t *testing.T) {
		router, _ := newTestRouter(t)

		student := createStudent(t, router, "empty@example.com")

		w, _ := doJSON(t, router, http.MethodGet, fmt.Sprintf("/v1/enrollments/by-student?studentId=%d", student.ID), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("average skips ungraded enrollments", func(t *testing.T) {
		router, _ := newTestRouter(t)

		student := createStudent(t, router, "avg@example.com")
		first := createCourse(t, router, "First", 3)
		second := createCourse(t, router, "Second", 3)
		third := createCourse(t, router, "Third", 3)

		enroll(t, router, student.ID, first.ID, floatPtr(80))
		enroll(t, router, student.ID, second.ID, floatPtr(90))
		enroll(t, router, student.ID, third.ID, nil)

		w, env := doJSON(t, router, http.MethodGet, "/v1/students/summaries", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var summaries []models.StudentSummary
		decodeData(t, env, &summaries)
		require.Len(t, summaries, 1)
		require.NotNil(t, summaries[0].AverageGrade)
		assert.InDelta(t, 85.0, *summaries[0].AverageGrade, 0.001)

		w, env = doJSON(t, router, http.MethodGet, "/v1/enrollments/statistics", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var stats []models.EnrollmentStatistics
		decodeData(t, env, &stats)
		require.Len(t, stats, 1)
		require.NotNil(t, stats[0].AverageGrade)
		assert.InDelta(t, 85.0, *stats[0].AverageGrade, 0.001)
		assert.Equal(t, int64(3), stats[0].TotalEnrollments)
	})

	t.Run("all-ungraded student reports a null average", func(t *testing.T) {
		router, _ := newTestRouter(t)

		student := createStudent(t, router, "null@example.com")
		course := createCourse(t, router, "Pass Fail", 2)
		enroll(t, router, student.ID, course.ID, nil)

		w, env := doJSON(t, router, http.MethodGet, "/v1/students/summaries", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var summaries []models.StudentSummary
		decodeData(t, env, &summaries)
		require.Len(t, summaries, 1)
		assert.Nil(t, summaries[0].AverageGrade)
	})

	t.Run("registration lifecycle", func(t *testing.T) {
		router, _ := newTestRouter(t)

		student := createStudent(t, router, "lifecycle@example.com")
		math := createCourse(t, router, "Calculus", 4)
		lit := createCourse(t, router, "Literature", 2)

		enrollment := enroll(t, router, student.ID, math.ID, floatPtr(75))
		enroll(t, router, student.ID, lit.ID, nil)

		// courses for the student
		w, env := doJSON(t, router, http.MethodGet, fmt.Sprintf("/v1/students/courses?studentId=%d", student.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)
		var courses []models.Course
		decodeData(t, env, &courses)
		require.Len(t, courses, 2)

		// regrade the math enrollment
		w, _ = doJSON(t, router, http.MethodPut, "/v1/enrollments/grade", map[string]interface{}{
			"enrollmentId": enrollment.ID,
			"courseId":     math.ID,
			"grade":        88,
		})
		require.Equal(t, http.StatusOK, w.Code)

		// drop literature
		w, env = doJSON(t, router, http.MethodGet, fmt.Sprintf("/v1/enrollments/by-course?courseId=%d", lit.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)
		var litEnrollments []models.Enrollment
		decodeData(t, env, &litEnrollments)
		require.Len(t, litEnrollments, 1)

		w, _ = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/v1/enrollments?enrollmentId=%d", litEnrollments[0].ID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		// the literature roster is now empty but the course still exists
		w, env = doJSON(t, router, http.MethodGet, fmt.Sprintf("/v1/courses/students?courseId=%d", lit.ID), nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, env.Error)

		// deleting the student cascades to the remaining enrollment
		w, _ = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/v1/students?studentId=%d", student.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		w, _ = doJSON(t, router, http.MethodGet, fmt.Sprintf("/v1/enrollments/by-id?enrollmentId=%d", enrollment.ID), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
