// Package webui serves the server-rendered front end. Every page reads
// through the API client, every form posts through it, and redirects carry a
// flash-style message in the query string.
package webui

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campusreg/studentregistration/internal/app/models/dto"
	"github.com/campusreg/studentregistration/internal/webui/apiclient"
)

// Handler renders the front-end pages.
type Handler struct {
	api    *apiclient.Client
	logger zerolog.Logger
}

// NewHandler creates a front-end handler backed by the given API client.
func NewHandler(api *apiclient.Client, lgr zerolog.Logger) *Handler {
	return &Handler{api: api, logger: lgr}
}

// Register attaches the front-end routes to the router.
func (h *Handler) Register(router *gin.Engine) {
	router.GET("/", func(ctx *gin.Context) {
		ctx.Redirect(http.StatusFound, "/students")
	})

	router.GET("/students", h.StudentsPage)
	router.GET("/students/edit", h.StudentEditPage)
	router.POST("/students/create", h.CreateStudent)
	router.POST("/students/update", h.UpdateStudent)
	router.POST("/students/delete", h.DeleteStudent)

	router.GET("/courses", h.CoursesPage)
	router.GET("/courses/edit", h.CourseEditPage)
	router.POST("/courses/create", h.CreateCourse)
	router.POST("/courses/update", h.UpdateCourse)
	router.POST("/courses/delete", h.DeleteCourse)

	router.GET("/enrollments", h.EnrollmentsPage)
	router.POST("/enrollments/create", h.CreateEnrollment)
	router.POST("/enrollments/grade", h.UpdateEnrollmentGrade)
	router.POST("/enrollments/delete", h.DeleteEnrollment)

	router.GET("/reports", h.ReportsPage)
}

// pageData is the common template payload
type pageData struct {
	Message string
	Error   string
	Data    interface{}
}

func flash(ctx *gin.Context) (message, errMsg string) {
	return ctx.Query("msg"), ctx.Query("err")
}

// redirectWith sends the browser back to path with a flash message. API
// errors become an error banner instead of a failure page.
func redirectWith(ctx *gin.Context, path, msg string, err error) {
	q := url.Values{}
	if err != nil {
		q.Set("err", err.Error())
		if apiErr, ok := err.(*apiclient.APIError); ok {
			q.Set("err", apiErr.Message)
		}
	} else if msg != "" {
		q.Set("msg", msg)
	}
	target := path
	if len(q) > 0 {
		target += "?" + q.Encode()
	}
	ctx.Redirect(http.StatusSeeOther, target)
}

func formInt64(ctx *gin.Context, name string) (int64, bool) {
	v, err := strconv.ParseInt(ctx.PostForm(name), 10, 64)
	return v, err == nil
}

// optString returns nil for an empty form value
func optString(ctx *gin.Context, name string) *string {
	v := ctx.PostForm(name)
	if v == "" {
		return nil
	}
	return &v
}

func optFloat(ctx *gin.Context, name string) (*float64, bool) {
	raw := ctx.PostForm(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, false
	}
	return &v, true
}

func optDate(ctx *gin.Context, name string) (*time.Time, bool) {
	raw := ctx.PostForm(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, false
	}
	return &t, true
}

// StudentsPage lists students with create and delete forms.
func (h *Handler) StudentsPage(ctx *gin.Context) {
	students, err := h.api.ListStudents(ctx)
	msg, errMsg := flash(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list students")
		errMsg = "Could not load students"
	}
	ctx.HTML(http.StatusOK, "students.html", pageData{Message: msg, Error: errMsg, Data: students})
}

// StudentEditPage shows the edit form for one student.
func (h *Handler) StudentEditPage(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Query("studentId"), 10, 64)
	if err != nil {
		redirectWith(ctx, "/students", "", err)
		return
	}

	student, err := h.api.GetStudent(ctx, id)
	if err != nil {
		redirectWith(ctx, "/students", "", err)
		return
	}
	_, errMsg := flash(ctx)
	ctx.HTML(http.StatusOK, "student_edit.html", pageData{Error: errMsg, Data: student})
}

// CreateStudent handles the registration form.
func (h *Handler) CreateStudent(ctx *gin.Context) {
	dob, ok := optDate(ctx, "dateOfBirth")
	if !ok {
		redirectWith(ctx, "/students", "", &apiclient.APIError{Message: "Invalid date of birth"})
		return
	}

	req := dto.CreateStudentRequest{
		FirstName:   ctx.PostForm("firstName"),
		LastName:    ctx.PostForm("lastName"),
		Email:       ctx.PostForm("email"),
		PhoneNumber: optString(ctx, "phoneNumber"),
		DateOfBirth: dob,
		Major:       optString(ctx, "major"),
	}

	_, err := h.api.CreateStudent(ctx, req)
	redirectWith(ctx, "/students", "Student registered", err)
}

// UpdateStudent handles the edit form.
func (h *Handler) UpdateStudent(ctx *gin.Context) {
	id, ok := formInt64(ctx, "studentId")
	if !ok {
		redirectWith(ctx, "/students", "", &apiclient.APIError{Message: "Invalid student id"})
		return
	}
	dob, ok := optDate(ctx, "dateOfBirth")
	if !ok {
		redirectWith(ctx, "/students", "", &apiclient.APIError{Message: "Invalid date of birth"})
		return
	}

	req := dto.UpdateStudentRequest{
		StudentID:   id,
		FirstName:   ctx.PostForm("firstName"),
		LastName:    ctx.PostForm("lastName"),
		Email:       ctx.PostForm("email"),
		PhoneNumber: optString(ctx, "phoneNumber"),
		DateOfBirth: dob,
		Major:       optString(ctx, "major"),
	}

	err := h.api.UpdateStudent(ctx, req)
	redirectWith(ctx, "/students", "Student updated", err)
}

// DeleteStudent handles the delete form.
func (h *Handler) DeleteStudent(ctx *gin.Context) {
	id, ok := formInt64(ctx, "studentId")
	if !ok {
		redirectWith(ctx, "/students", "", &apiclient.APIError{Message: "Invalid student id"})
		return
	}
	err := h.api.DeleteStudent(ctx, id)
	redirectWith(ctx, "/students", "Student deleted", err)
}

// CoursesPage lists courses with create and delete forms.
func (h *Handler) CoursesPage(ctx *gin.Context) {
	courses, err := h.api.ListCourses(ctx)
	msg, errMsg := flash(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list courses")
		errMsg = "Could not load courses"
	}
	ctx.HTML(http.StatusOK, "courses.html", pageData{Message: msg, Error: errMsg, Data: courses})
}

// CourseEditPage shows the edit form for one course.
func (h *Handler) CourseEditPage(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Query("courseId"), 10, 64)
	if err != nil {
		redirectWith(ctx, "/courses", "", err)
		return
	}

	course, err := h.api.GetCourse(ctx, id)
	if err != nil {
		redirectWith(ctx, "/courses", "", err)
		return
	}
	_, errMsg := flash(ctx)
	ctx.HTML(http.StatusOK, "course_edit.html", pageData{Error: errMsg, Data: course})
}

// CreateCourse handles the course form.
func (h *Handler) CreateCourse(ctx *gin.Context) {
	credits, _ := strconv.Atoi(ctx.PostForm("credits"))
	req := dto.CreateCourseRequest{
		Title:   ctx.PostForm("title"),
		Credits: credits,
	}

	_, err := h.api.CreateCourse(ctx, req)
	redirectWith(ctx, "/courses", "Course created", err)
}

// UpdateCourse handles the course edit form.
func (h *Handler) UpdateCourse(ctx *gin.Context) {
	id, ok := formInt64(ctx, "courseId")
	if !ok {
		redirectWith(ctx, "/courses", "", &apiclient.APIError{Message: "Invalid course id"})
		return
	}
	credits, _ := strconv.Atoi(ctx.PostForm("credits"))

	req := dto.UpdateCourseRequest{
		CourseID: id,
		Title:    ctx.PostForm("title"),
		Credits:  credits,
	}

	err := h.api.UpdateCourse(ctx, req)
	redirectWith(ctx, "/courses", "Course updated", err)
}

// DeleteCourse handles the delete form.
func (h *Handler) DeleteCourse(ctx *gin.Context) {
	id, ok := formInt64(ctx, "courseId")
	if !ok {
		redirectWith(ctx, "/courses", "", &apiclient.APIError{Message: "Invalid course id"})
		return
	}
	err := h.api.DeleteCourse(ctx, id)
	redirectWith(ctx, "/courses", "Course deleted", err)
}

// enrollmentsView bundles everything the enrollments page needs
type enrollmentsView struct {
	Enrollments interface{}
	Students    interface{}
	Courses     interface{}
}

// EnrollmentsPage lists enrollments with enroll and grade forms.
func (h *Handler) EnrollmentsPage(ctx *gin.Context) {
	msg, errMsg := flash(ctx)

	enrollments, err := h.api.ListEnrollments(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list enrollments")
		errMsg = "Could not load enrollments"
	}
	students, err := h.api.ListStudents(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list students")
	}
	courses, err := h.api.ListCourses(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list courses")
	}

	ctx.HTML(http.StatusOK, "enrollments.html", pageData{
		Message: msg,
		Error:   errMsg,
		Data: enrollmentsView{
			Enrollments: enrollments,
			Students:    students,
			Courses:     courses,
		},
	})
}

// CreateEnrollment handles the enroll form.
func (h *Handler) CreateEnrollment(ctx *gin.Context) {
	studentID, okS := formInt64(ctx, "studentId")
	courseID, okC := formInt64(ctx, "courseId")
	grade, okG := optFloat(ctx, "grade")
	if !okS || !okC || !okG {
		redirectWith(ctx, "/enrollments", "", &apiclient.APIError{Message: "Invalid enrollment data"})
		return
	}

	req := dto.CreateEnrollmentRequest{
		StudentID: studentID,
		CourseID:  courseID,
		Grade:     grade,
	}

	_, err := h.api.CreateEnrollment(ctx, req)
	redirectWith(ctx, "/enrollments", "Enrollment created", err)
}

// UpdateEnrollmentGrade handles the grade form.
func (h *Handler) UpdateEnrollmentGrade(ctx *gin.Context) {
	enrollmentID, okE := formInt64(ctx, "enrollmentId")
	courseID, okC := formInt64(ctx, "courseId")
	grade, okG := optFloat(ctx, "grade")
	if !okE || !okC || !okG {
		redirectWith(ctx, "/enrollments", "", &apiclient.APIError{Message: "Invalid grade data"})
		return
	}

	req := dto.UpdateEnrollmentGradeRequest{
		EnrollmentID: enrollmentID,
		CourseID:     courseID,
		Grade:        grade,
	}

	err := h.api.UpdateEnrollmentGrade(ctx, req)
	redirectWith(ctx, "/enrollments", "Grade updated", err)
}

// DeleteEnrollment handles the delete form.
func (h *Handler) DeleteEnrollment(ctx *gin.Context) {
	id, ok := formInt64(ctx, "enrollmentId")
	if !ok {
		redirectWith(ctx, "/enrollments", "", &apiclient.APIError{Message: "Invalid enrollment id"})
		return
	}
	err := h.api.DeleteEnrollment(ctx, id)
	redirectWith(ctx, "/enrollments", "Enrollment deleted", err)
}

// reportsView bundles the three report sections
type reportsView struct {
	StudentSummaries interface{}
	CourseSummaries  interface{}
	LowEnrollment    interface{}
	Threshold        int64
}

// ReportsPage shows the aggregate views side by side.
func (h *Handler) ReportsPage(ctx *gin.Context) {
	msg, errMsg := flash(ctx)

	threshold := int64(5)
	if raw := ctx.Query("threshold"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v >= 0 {
			threshold = v
		}
	}

	view := reportsView{Threshold: threshold}

	if summaries, err := h.api.StudentSummaries(ctx); err == nil {
		view.StudentSummaries = summaries
	} else {
		h.logger.Error().Err(err).Msg("Failed to load student summaries")
		errMsg = "Could not load reports"
	}
	if summaries, err := h.api.CourseSummaries(ctx); err == nil {
		view.CourseSummaries = summaries
	} else {
		h.logger.Error().Err(err).Msg("Failed to load course summaries")
		errMsg = "Could not load reports"
	}
	if summaries, err := h.api.LowEnrollmentCourses(ctx, threshold); err == nil {
		view.LowEnrollment = summaries
	} else {
		h.logger.Error().Err(err).Msg("Failed to load low-enrollment report")
		errMsg = "Could not load reports"
	}

	ctx.HTML(http.StatusOK, "reports.html", pageData{Message: msg, Error: errMsg, Data: view})
}
