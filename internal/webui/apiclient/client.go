// Package apiclient is a thin HTTP client for the registration API, used by
// the server-rendered front end.
package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/campusreg/studentregistration/internal/app/models"
	"github.com/campusreg/studentregistration/internal/app/models/dto"
)

// APIError is a non-2xx response from the registration API.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d, code %s): %s", e.Status, e.Code, e.Message)
}

// Client calls the registration API.
type Client struct {
	http *resty.Client
}

// New creates a client rooted at baseURL, e.g. "http://localhost:8080".
func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(10 * time.Second).
			SetHeader("Accept", "application/json"),
	}
}

// envelope mirrors the API response wrapper
type envelope struct {
	Data  json.RawMessage  `json:"data"`
	Error *dto.ErrorDetail `json:"error"`
}

// decode unwraps the response envelope into out. A nil out discards the data.
func decode(resp *resty.Response, out interface{}) error {
	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return fmt.Errorf("failed to decode API response: %w", err)
	}

	if resp.IsError() {
		apiErr := &APIError{Status: resp.StatusCode(), Code: "SRV_001", Message: "Internal server error"}
		if env.Error != nil {
			apiErr.Code = string(env.Error.Code)
			apiErr.Message = env.Error.Message
		}
		return apiErr
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode API payload: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query map[string]string, out interface{}) error {
	resp, err := c.http.R().SetContext(ctx).SetQueryParams(query).Get(path)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	return decode(resp, out)
}

func (c *Client) send(ctx context.Context, method, path string, body, out interface{}) error {
	req := c.http.R().SetContext(ctx).SetHeader("Content-Type", "application/json").SetBody(body)
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	return decode(resp, out)
}

func (c *Client) delete(ctx context.Context, path string, query map[string]string) error {
	resp, err := c.http.R().SetContext(ctx).SetQueryParams(query).Delete(path)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	return decode(resp, nil)
}

// ListStudents returns all students.
func (c *Client) ListStudents(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	err := c.get(ctx, "/v1/students", nil, &students)
	return students, err
}

// GetStudent returns one student by id.
func (c *Client) GetStudent(ctx context.Context, id int64) (*models.Student, error) {
	var student models.Student
	err := c.get(ctx, "/v1/students/by-id", map[string]string{"studentId": strconv.FormatInt(id, 10)}, &student)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// CreateStudent registers a student and returns the stored record.
func (c *Client) CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, error) {
	var student models.Student
	if err := c.send(ctx, resty.MethodPost, "/v1/students", req, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// UpdateStudent replaces a student record.
func (c *Client) UpdateStudent(ctx context.Context, req dto.UpdateStudentRequest) error {
	return c.send(ctx, resty.MethodPut, "/v1/students", req, nil)
}

// DeleteStudent removes a student.
func (c *Client) DeleteStudent(ctx context.Context, id int64) error {
	return c.delete(ctx, "/v1/students", map[string]string{"studentId": strconv.FormatInt(id, 10)})
}

// StudentSummaries returns per-student average grades.
func (c *Client) StudentSummaries(ctx context.Context) ([]models.StudentSummary, error) {
	var summaries []models.StudentSummary
	err := c.get(ctx, "/v1/students/summaries", nil, &summaries)
	return summaries, err
}

// ListCourses returns the course catalog.
func (c *Client) ListCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	err := c.get(ctx, "/v1/courses", nil, &courses)
	return courses, err
}

// GetCourse returns one course by id.
func (c *Client) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	var course models.Course
	err := c.get(ctx, "/v1/courses/by-id", map[string]string{"courseId": strconv.FormatInt(id, 10)}, &course)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// CreateCourse adds a course to the catalog.
func (c *Client) CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error) {
	var course models.Course
	if err := c.send(ctx, resty.MethodPost, "/v1/courses", req, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// UpdateCourse replaces a course record.
func (c *Client) UpdateCourse(ctx context.Context, req dto.UpdateCourseRequest) error {
	return c.send(ctx, resty.MethodPut, "/v1/courses", req, nil)
}

// DeleteCourse removes a course.
func (c *Client) DeleteCourse(ctx context.Context, id int64) error {
	return c.delete(ctx, "/v1/courses", map[string]string{"courseId": strconv.FormatInt(id, 10)})
}

// CourseSummaries returns per-course enrollment counts.
func (c *Client) CourseSummaries(ctx context.Context) ([]models.CourseSummary, error) {
	var summaries []models.CourseSummary
	err := c.get(ctx, "/v1/courses/summaries", nil, &summaries)
	return summaries, err
}

// LowEnrollmentCourses returns summaries of courses at or below threshold.
func (c *Client) LowEnrollmentCourses(ctx context.Context, threshold int64) ([]models.CourseSummary, error) {
	var summaries []models.CourseSummary
	err := c.get(ctx, "/v1/courses/low-enrollment",
		map[string]string{"threshold": strconv.FormatInt(threshold, 10)}, &summaries)
	return summaries, err
}

// ListEnrollments returns all enrollments.
func (c *Client) ListEnrollments(ctx context.Context) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := c.get(ctx, "/v1/enrollments", nil, &enrollments)
	return enrollments, err
}

// CreateEnrollment enrolls a student in a course.
func (c *Client) CreateEnrollment(ctx context.Context, req dto.CreateEnrollmentRequest) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	if err := c.send(ctx, resty.MethodPost, "/v1/enrollments", req, &enrollment); err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// UpdateEnrollmentGrade replaces the course and grade of an enrollment.
func (c *Client) UpdateEnrollmentGrade(ctx context.Context, req dto.UpdateEnrollmentGradeRequest) error {
	return c.send(ctx, resty.MethodPut, "/v1/enrollments/grade", req, nil)
}

// DeleteEnrollment removes an enrollment.
func (c *Client) DeleteEnrollment(ctx context.Context, id int64) error {
	return c.delete(ctx, "/v1/enrollments", map[string]string{"enrollmentId": strconv.FormatInt(id, 10)})
}

// EnrollmentStatistics returns per-student grade statistics.
func (c *Client) EnrollmentStatistics(ctx context.Context) ([]models.EnrollmentStatistics, error) {
	var stats []models.EnrollmentStatistics
	err := c.get(ctx, "/v1/enrollments/statistics", nil, &stats)
	return stats, err
}
