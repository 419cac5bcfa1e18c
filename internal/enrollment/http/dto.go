package http

import (
	"time"

	"github.com/acadhub/campus-resource-backend/internal/enrollment"
	"github.com/acadhub/campus-resource-backend/internal/timetable"
)

type EnrollRequest struct {
	CourseID string `json:"courseId" binding:"required,uuid"`
}

type EnrollmentResponse struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"student_id"`
	StudentName string    `json:"student_name,omitempty"`
	CourseID    string    `json:"course_id"`
	CourseName  string    `json:"course_name,omitempty"`
	EnrolledAt  time.Time `json:"enrolled_at"`
}

func NewEnrollmentResponse(e *enrollment.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:          e.ID,
		StudentID:   e.StudentID,
		StudentName: e.StudentName,
		CourseID:    e.CourseID,
		CourseName:  e.CourseName,
		EnrolledAt:  e.EnrolledAt,
	}
}

// TimetableViewItem is the student-facing flattened timetable row.
type TimetableViewItem struct {
	CourseName string    `json:"courseName"`
	Day        string    `json:"day"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
}

func NewTimetableViewItem(e *timetable.Entry) TimetableViewItem {
	return TimetableViewItem{
		CourseName: e.CourseName,
		Day:        string(e.DayOfWeek),
		StartTime:  e.StartTime,
		EndTime:    e.EndTime,
	}
}
