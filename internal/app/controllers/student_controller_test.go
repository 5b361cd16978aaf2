package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusreg/studentregistration/internal/app/models"
	"github.com/campusreg/studentregistration/internal/app/models/dto"
)

func createStudentPayload(email string) map[string]interface{} {
	return map[string]interface{}{
		"firstName": "John",
		"lastName":  "Doe",
		"email":     email,
		"major":     "Computer Science",
	}
}

func TestStudentEndpoints(t *testing.T) {
	t.Run("create assigns id zero on empty store and increments", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w, env := doJSON(t, router, http.MethodPost, "/v1/students", createStudentPayload("a@example.com"))
		require.Equal(t, http.StatusCreated, w.Code)

		var first models.Student
		decodeData(t, env, &first)
		assert.Equal(t, int64(0), first.ID)
		assert.Equal(t, "/v1/students/by-id?studentId=0", w.Header().Get("Location"))

		w, env = doJSON(t, router, http.MethodPost, "/v1/students", createStudentPayload("b@example.com"))
		require.Equal(t, http.StatusCreated, w.Code)

		var second models.Student
		decodeData(t, env, &second)
		assert.Equal(t, int64(1), second.ID)
	})

	t.Run("create and get round-trip", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w, env := doJSON(t, router, http.MethodPost, "/v1/students", createStudentPayload("jane@example.com"))
		require.Equal(t, http.StatusCreated, w.Code)
		var created models.Student
		decodeData(t, env, &created)

		w, env = doJSON(t, router, http.MethodGet, fmt.Sprintf("/v1/students/by-id?studentId=%d", created.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var fetched models.Student
		decodeData(t, env, &fetched)
		assert.Equal(t, created.ID, fetched.ID)
		assert.Equal(t, "jane@example.com", fetched.Email)
		assert.Equal(t, "John", fetched.FirstName)
	})

	t.Run("validation failures come back as a field list", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w, env := doJSON(t, router, http.MethodPost, "/v1/students", map[string]interface{}{
			"firstName": "",
			"lastName":  "Doe",
			"email":     "not-an-email",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, dto.ErrorCodeValidationFailed, env.Error.Code)
		assert.NotNil(t, env.Error.Details)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w, _ := doJSON(t, router, http.MethodPost, "/v1/students", createStudentPayload("dup@example.com"))
		require.Equal(t, http.StatusCreated, w.Code)

		w, env := doJSON(t, router, http.MethodPost, "/v1/students", createStudentPayload("dup@example.com"))
		assert.Equal(t, http.StatusConflict, w.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, dto.ErrorCodeResourceAlreadyExists, env.Error.Code)
		assert.Equal(t, "email", env.Error.Field)
	})

	t.Run("get missing student returns 404", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w, env := doJSON(t, router, http.MethodGet, "/v1/students/by-id?studentId=42", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, dto.ErrorCodeResourceNotFound, env.Error.Code)
	})

	t.Run("update missing student returns 404 and stores nothing", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w, _ := doJSON(t, router, http.MethodPut, "/v1/students", map[string]interface{}{
			"studentId": 9,
			"firstName": "Ghost",
			"lastName":  "Writer",
			"email":     "ghost@example.com",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)

		w, env := doJSON(t, router, http.MethodGet, "/v1/students", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var students []models.Student
		if len(env.Data) > 0 && string(env.Data) != "null" {
			decodeData(t, env, &students)
		}
		assert.Empty(t, students)
	})

	t.Run("update replaces the record", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w, env := doJSON(t, router, http.MethodPost, "/v1/students", createStudentPayload("before@example.com"))
		require.Equal(t, http.StatusCreated, w.Code)
		var created models.Student
		decodeData(t, env, &created)

		w, _ = doJSON(t, router, http.MethodPut, "/v1/students", map[string]interface{}{
			"studentId": created.ID,
			"firstName": "Janet",
			"lastName":  "Doe",
			"email":     "after@example.com",
		})
		require.Equal(t, http.StatusOK, w.Code)

		w, env = doJSON(t, router, http.MethodGet, fmt.Sprintf("/v1/students/by-id?studentId=%d", created.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)
		var fetched models.Student
		decodeData(t, env, &fetched)
		assert.Equal(t, "Janet", fetched.FirstName)
		assert.Equal(t, "after@example.com", fetched.Email)
		assert.Nil(t, fetched.Major)
	})

	t.Run("delete missing student returns 404", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w, _ := doJSON(t, router, http.MethodDelete, "/v1/students?studentId=5", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete removes the record", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w, env := doJSON(t, router, http.MethodPost, "/v1/students", createStudentPayload("rm@example.com"))
		require.Equal(t, http.StatusCreated, w.Code)
		var created models.Student
		decodeData(t, env, &created)

		w, _ = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/v1/students?studentId=%d", created.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		w, _ = doJSON(t, router, http.MethodGet, fmt.Sprintf("/v1/students/by-id?studentId=%d", created.ID), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("courses listing for student without enrollments returns 404", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w, env := doJSON(t, router, http.MethodPost, "/v1/students", createStudentPayload("lonely@example.com"))
		require.Equal(t, http.StatusCreated, w.Code)
		var created models.Student
		decodeData(t, env, &created)

		w, _ = doJSON(t, router, http.MethodGet, fmt.Sprintf("/v1/students/courses?studentId=%d", created.ID), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("courses listing reflects a fresh enrollment", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w, env := doJSON(t, router, http.MethodPost, "/v1/students", createStudentPayload("first@example.com"))
		require.Equal(t, http.StatusCreated, w.Code)
		var student models.Student
		decodeData(t, env, &student)
		require.Equal(t, int64(0), student.ID)

		w, env = doJSON(t, router, http.MethodPost, "/v1/courses", dto.CreateCourseRequest{Title: "CS101", Credits: 3})
		require.Equal(t, http.StatusCreated, w.Code)
		var course models.Course
		decodeData(t, env, &course)
		require.Equal(t, int64(0), course.ID)

		w, _ = doJSON(t, router, http.MethodPost, "/v1/enrollments", dto.CreateEnrollmentRequest{StudentID: student.ID, CourseID: course.ID})
		require.Equal(t, http.StatusCreated, w.Code)

		w, env = doJSON(t, router, http.MethodGet, fmt.Sprintf("/v1/students/courses?studentId=%d", student.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)
		var courses []models.Course
		decodeData(t, env, &courses)
		require.Len(t, courses, 1)
		assert.Equal(t, int64(0), courses[0].ID)
		assert.Equal(t, "CS101", courses[0].Title)
		assert.Equal(t, 3, courses[0].Credits)
	})

	t.Run("invalid id query returns 400", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w, env := doJSON(t, router, http.MethodGet, "/v1/students/by-id?studentId=abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "studentId", env.Error.Field)
	})
}
