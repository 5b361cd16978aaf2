package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campusreg/studentregistration/internal/app/models"
	"github.com/campusreg/studentregistration/internal/app/models/dto"
	"github.com/campusreg/studentregistration/internal/app/services"
	"github.com/campusreg/studentregistration/internal/middleware"
)

// CourseController handles course-related operations
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// GetAllCourses retrieves all courses
// @Summary Get all courses
// @Description Retrieves a list of all courses in the catalog
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Courses retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAllCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses))
}

// GetCourseByID retrieves a course by ID
// @Summary Get course by ID
// @Description Retrieves a specific course by its ID
// @Tags courses
// @Produce json
// @Param courseId query int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/by-id [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, ok := parseIDQuery(ctx, "courseId")
	if !ok {
		return
	}

	course, err := c.courseService.GetCourseByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course))
}

// GetStudentsForCourse retrieves the roster of a course
// @Summary Get students for a course
// @Description Retrieves all students enrolled in the given course. An empty roster is a valid result.
// @Tags courses
// @Produce json
// @Param courseId query int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Roster retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/students [get]
func (c *CourseController) GetStudentsForCourse(ctx *gin.Context) {
	id, ok := parseIDQuery(ctx, "courseId")
	if !ok {
		return
	}

	students, err := c.courseService.GetStudentsForCourse(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students))
}

// GetCourseSummaries retrieves per-course enrollment counts
// @Summary Get course summaries
// @Description Retrieves title, credits and enrollment count for every course
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.CourseSummary} "Summaries retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/summaries [get]
func (c *CourseController) GetCourseSummaries(ctx *gin.Context) {
	summaries, err := c.courseService.GetCourseSummaries(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(summaries))
}

// GetLowEnrollmentCourses retrieves courses at or below an enrollment threshold
// @Summary Get low-enrollment courses
// @Description Retrieves summaries of courses whose enrollment count is at or below the threshold
// @Tags courses
// @Produce json
// @Param threshold query int true "Maximum enrollment count"
// @Success 200 {object} dto.APIResponse{data=[]models.CourseSummary} "Summaries retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid threshold"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/low-enrollment [get]
func (c *CourseController) GetLowEnrollmentCourses(ctx *gin.Context) {
	threshold, err := strconv.ParseInt(ctx.Query("threshold"), 10, 64)
	if err != nil || threshold < 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid threshold")
		errorDetail = errorDetail.WithField("threshold").WithDetails("threshold must be a non-negative number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	summaries, err := c.courseService.GetLowEnrollmentCourses(ctx, threshold)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(summaries))
}

// CreateCourse handles course creation
// @Summary Create a new course
// @Description Adds a new course to the catalog. Credits must be between 1 and 6.
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=models.Course} "Course created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	course := &models.Course{
		Title:   req.Title,
		Credits: req.Credits,
	}

	if err := c.courseService.CreateCourse(ctx, course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Location", fmt.Sprintf("/v1/courses/by-id?courseId=%d", course.ID))
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(course))
}

// UpdateCourse replaces an existing course record
// @Summary Update a course
// @Description Replaces the title and credits of an existing course
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.UpdateCourseRequest true "Course information"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	course := &models.Course{
		ID:      req.CourseID,
		Title:   req.Title,
		Credits: req.Credits,
	}

	if err := c.courseService.UpdateCourse(ctx, course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course))
}

// DeleteCourse removes a course
// @Summary Delete a course
// @Description Deletes the course with the given ID
// @Tags courses
// @Produce json
// @Param courseId query int true "Course ID"
// @Success 200 {object} dto.APIResponse "Course deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseIDQuery(ctx, "courseId")
	if !ok {
		return
	}

	if err := c.courseService.DeleteCourse(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"deleted": true}))
}
