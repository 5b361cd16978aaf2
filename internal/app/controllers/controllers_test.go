package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/campusreg/studentregistration/internal/app/controllers"
	"github.com/campusreg/studentregistration/internal/app/models/dto"
	"github.com/campusreg/studentregistration/internal/app/repositories/memory"
	"github.com/campusreg/studentregistration/internal/app/routes"
	"github.com/campusreg/studentregistration/internal/app/services"
)

// newTestRouter wires the real router, controllers and services over an
// in-memory store.
func newTestRouter(t *testing.T) (*gin.Engine, *memory.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	lgr := zerolog.Nop()

	studentService := services.NewStudentService(store.Students(), lgr)
	courseService := services.NewCourseService(store.Courses(), lgr)
	enrollmentService := services.NewEnrollmentService(store.Enrollments(), lgr)

	router := gin.New()
	routes.SetupRouter(router,
		controllers.NewStudentController(studentService),
		controllers.NewCourseController(courseService),
		controllers.NewEnrollmentController(enrollmentService),
	)
	return router, store
}

type responseEnvelope struct {
	Data  json.RawMessage  `json:"data"`
	Error *dto.ErrorDetail `json:"error"`
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, responseEnvelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env responseEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func decodeData(t *testing.T, env responseEnvelope, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func floatPtr(f float64) *float64 { return &f }
