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

// StudentController handles student-related operations
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// GetAllStudents retrieves all students
// @Summary Get all students
// @Description Retrieves a list of all registered students
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Students retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAllStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students))
}

// GetStudentByID retrieves a student by ID
// @Summary Get student by ID
// @Description Retrieves a specific student by their ID
// @Tags students
// @Produce json
// @Param studentId query int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/by-id [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id, ok := parseIDQuery(ctx, "studentId")
	if !ok {
		return
	}

	student, err := c.studentService.GetStudentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// GetCoursesForStudent retrieves the courses a student is enrolled in
// @Summary Get courses for a student
// @Description Retrieves all courses the given student is enrolled in
// @Tags students
// @Produce json
// @Param studentId query int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Courses retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 404 {object} dto.ErrorResponse "No courses found for student"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/courses [get]
func (c *StudentController) GetCoursesForStudent(ctx *gin.Context) {
	id, ok := parseIDQuery(ctx, "studentId")
	if !ok {
		return
	}

	courses, err := c.studentService.GetCoursesForStudent(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses))
}

// GetStudentSummaries retrieves per-student grade summaries
// @Summary Get student summaries
// @Description Retrieves name and average grade for every student with at least one enrollment
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.StudentSummary} "Summaries retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/summaries [get]
func (c *StudentController) GetStudentSummaries(ctx *gin.Context) {
	summaries, err := c.studentService.GetStudentSummaries(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(summaries))
}

// CreateStudent handles student registration
// @Summary Create a new student
// @Description Registers a new student with the provided information
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Student created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student := &models.Student{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		DateOfBirth: req.DateOfBirth,
		Major:       req.Major,
	}

	if err := c.studentService.CreateStudent(ctx, student); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Location", fmt.Sprintf("/v1/students/by-id?studentId=%d", student.ID))
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(student))
}

// UpdateStudent replaces an existing student record
// @Summary Update a student
// @Description Replaces all fields of an existing student
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.UpdateStudentRequest true "Student information"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student := &models.Student{
		ID:          req.StudentID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		DateOfBirth: req.DateOfBirth,
		Major:       req.Major,
	}

	if err := c.studentService.UpdateStudent(ctx, student); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// DeleteStudent removes a student
// @Summary Delete a student
// @Description Deletes the student with the given ID
// @Tags students
// @Produce json
// @Param studentId query int true "Student ID"
// @Success 200 {object} dto.APIResponse "Student deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseIDQuery(ctx, "studentId")
	if !ok {
		return
	}

	if err := c.studentService.DeleteStudent(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"deleted": true}))
}
