package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusreg/studentregistration/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
) {
	// Health check
	router.GET("/ping", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// API version group
	v1 := router.Group("/v1")

	students := v1.Group("/students")
	{
		students.GET("", studentController.GetAllStudents)
		students.GET("/by-id", studentController.GetStudentByID)
		students.GET("/courses", studentController.GetCoursesForStudent)
		students.GET("/summaries", studentController.GetStudentSummaries)
		students.POST("", studentController.CreateStudent)
		students.PUT("", studentController.UpdateStudent)
		students.DELETE("", studentController.DeleteStudent)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/by-id", courseController.GetCourseByID)
		courses.GET("/students", courseController.GetStudentsForCourse)
		courses.GET("/summaries", courseController.GetCourseSummaries)
		courses.GET("/low-enrollment", courseController.GetLowEnrollmentCourses)
		courses.POST("", courseController.CreateCourse)
		courses.PUT("", courseController.UpdateCourse)
		courses.DELETE("", courseController.DeleteCourse)
	}

	enrollments := v1.Group("/enrollments")
	{
		enrollments.GET("", enrollmentController.GetAllEnrollments)
		enrollments.GET("/by-id", enrollmentController.GetEnrollmentByID)
		enrollments.GET("/by-student", enrollmentController.GetEnrollmentsByStudent)
		enrollments.GET("/by-course", enrollmentController.GetEnrollmentsByCourse)
		enrollments.GET("/statistics", enrollmentController.GetEnrollmentStatistics)
		enrollments.POST("", enrollmentController.CreateEnrollment)
		enrollments.PUT("/grade", enrollmentController.UpdateEnrollmentGrade)
		enrollments.DELETE("", enrollmentController.DeleteEnrollment)
	}
}
