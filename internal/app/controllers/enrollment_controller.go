package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusreg/studentregistration/internal/app/models"
	"github.com/campusreg/studentregistration/internal/app/models/dto"
	"github.com/campusreg/studentregistration/internal/app/services"
	"github.com/campusreg/studentregistration/internal/middleware"
)

// EnrollmentController handles enrollment-related operations
type EnrollmentController struct {
	enrollmentService *services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService *services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// GetAllEnrollments retrieves all enrollments
// @Summary Get all enrollments
// @Description Retrieves a list of all enrollments
// @Tags enrollments
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Enrollment} "Enrollments retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments [get]
func (c *EnrollmentController) GetAllEnrollments(ctx *gin.Context) {
	enrollments, err := c.enrollmentService.GetAllEnrollments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollments))
}

// GetEnrollmentByID retrieves an enrollment by ID
// @Summary Get enrollment by ID
// @Description Retrieves a specific enrollment by its ID
// @Tags enrollments
// @Produce json
// @Param enrollmentId query int true "Enrollment ID"
// @Success 200 {object} dto.APIResponse{data=models.Enrollment} "Enrollment retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid enrollment ID"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments/by-id [get]
func (c *EnrollmentController) GetEnrollmentByID(ctx *gin.Context) {
	id, ok := parseIDQuery(ctx, "enrollmentId")
	if !ok {
		return
	}

	enrollment, err := c.enrollmentService.GetEnrollmentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollment))
}

// GetEnrollmentsByStudent retrieves enrollments for a student
// @Summary Get enrollments by student
// @Description Retrieves all enrollments belonging to the given student
// @Tags enrollments
// @Produce json
// @Param studentId query int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Enrollment} "Enrollments retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 404 {object} dto.ErrorResponse "No enrollments found for student"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments/by-student [get]
func (c *EnrollmentController) GetEnrollmentsByStudent(ctx *gin.Context) {
	id, ok := parseIDQuery(ctx, "studentId")
	if !ok {
		return
	}

	enrollments, err := c.enrollmentService.GetEnrollmentsByStudent(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollments))
}

// GetEnrollmentsByCourse retrieves enrollments for a course
// @Summary Get enrollments by course
// @Description Retrieves all enrollments in the given course
// @Tags enrollments
// @Produce json
// @Param courseId query int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Enrollment} "Enrollments retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "No enrollments found for course"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments/by-course [get]
func (c *EnrollmentController) GetEnrollmentsByCourse(ctx *gin.Context) {
	id, ok := parseIDQuery(ctx, "courseId")
	if !ok {
		return
	}

	enrollments, err := c.enrollmentService.GetEnrollmentsByCourse(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollments))
}

// GetEnrollmentStatistics retrieves per-student enrollment statistics
// @Summary Get enrollment statistics
// @Description Retrieves average grade and enrollment count per student
// @Tags enrollments
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.EnrollmentStatistics} "Statistics retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments/statistics [get]
func (c *EnrollmentController) GetEnrollmentStatistics(ctx *gin.Context) {
	stats, err := c.enrollmentService.GetEnrollmentStatistics(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(stats))
}

// CreateEnrollment enrolls a student in a course
// @Summary Create a new enrollment
// @Description Enrolls a student in a course, optionally with an initial grade between 0 and 100
// @Tags enrollments
// @Accept json
// @Produce json
// @Param request body dto.CreateEnrollmentRequest true "Enrollment information"
// @Success 201 {object} dto.APIResponse{data=models.Enrollment} "Enrollment created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Failure 409 {object} dto.ErrorResponse "Student already enrolled in course"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments [post]
func (c *EnrollmentController) CreateEnrollment(ctx *gin.Context) {
	var req dto.CreateEnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid enrollment data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	enrollment := &models.Enrollment{
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
		Grade:     req.Grade,
	}

	if err := c.enrollmentService.CreateEnrollment(ctx, enrollment); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Location", fmt.Sprintf("/v1/enrollments/by-id?enrollmentId=%d", enrollment.ID))
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(enrollment))
}

// UpdateEnrollmentGrade updates the course and grade of an enrollment
// @Summary Update an enrollment grade
// @Description Replaces the course and grade of an existing enrollment. Grades up to 110 are accepted for extra credit.
// @Tags enrollments
// @Accept json
// @Produce json
// @Param request body dto.UpdateEnrollmentGradeRequest true "Enrollment grade information"
// @Success 200 {object} dto.APIResponse{data=models.Enrollment} "Enrollment updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Enrollment or course not found"
// @Failure 409 {object} dto.ErrorResponse "Student already enrolled in course"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments/grade [put]
func (c *EnrollmentController) UpdateEnrollmentGrade(ctx *gin.Context) {
	var req dto.UpdateEnrollmentGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid enrollment data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	enrollment := &models.Enrollment{
		ID:       req.EnrollmentID,
		CourseID: req.CourseID,
		Grade:    req.Grade,
	}

	if err := c.enrollmentService.UpdateEnrollmentGrade(ctx, enrollment); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollment))
}

// DeleteEnrollment removes an enrollment
// @Summary Delete an enrollment
// @Description Deletes the enrollment with the given ID
// @Tags enrollments
// @Produce json
// @Param enrollmentId query int true "Enrollment ID"
// @Success 200 {object} dto.APIResponse "Enrollment deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid enrollment ID"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments [delete]
func (c *EnrollmentController) DeleteEnrollment(ctx *gin.Context) {
	id, ok := parseIDQuery(ctx, "enrollmentId")
	if !ok {
		return
	}

	if err := c.enrollmentService.DeleteEnrollment(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"deleted": true}))
}
