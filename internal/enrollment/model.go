package enrollment

import (
	"net/http"
	"time"

	"github.com/acadhub/campus-resource-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "enrollment not found")
	ErrCourseNotFound  = apperror.New(http.StatusNotFound, "course not found")
	ErrAlreadyEnrolled = apperror.New(http.StatusBadRequest, "student is already enrolled in this course")
)

// Enrollment links a student to a course. It is the audience source for
// schedule-change notifications.
type Enrollment struct {
	ID          string
	StudentID   string
	StudentName string
	CourseID    string
	CourseName  string
	EnrolledAt  time.Time
}
