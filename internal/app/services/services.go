package services

// Services defined in this package:
// - StudentService: student records, their courses and grade summaries
// - CourseService: course records, rosters and enrollment-count reports
// - EnrollmentService: enrollment records, grades and per-student statistics
