package timetable

import (
	"net/http"
	"time"

	"github.com/acadhub/campus-resource-backend/internal/pkg/apperror"
)

var (
	ErrNotFound       = apperror.New(http.StatusNotFound, "timetable entry not found")
	ErrCourseNotFound = apperror.New(http.StatusNotFound, "course not found")
	ErrTimeConflict   = apperror.New(http.StatusBadRequest, "timetable entry overlaps with an existing entry")
	ErrInvalidDay     = apperror.New(http.StatusBadRequest, "invalid day of week")
)

// DayOfWeek names the weekday a timetable entry occupies.
type DayOfWeek string

const (
	Monday    DayOfWeek = "Monday"
	Tuesday   DayOfWeek = "Tuesday"
	Wednesday DayOfWeek = "Wednesday"
	Thursday  DayOfWeek = "Thursday"
	Friday    DayOfWeek = "Friday"
	Saturday  DayOfWeek = "Saturday"
	Sunday    DayOfWeek = "Sunday"
)

// Valid reports whether the day is a known weekday name.
func (d DayOfWeek) Valid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

// Entry is a recurring weekly slot for a course. The (course, day)
// pair is the resource scope: entries for the same course on the same
// day must not overlap in time.
type Entry struct {
	ID         string
	CourseID   string
	CourseName string
	DayOfWeek  DayOfWeek
	StartTime  time.Time
	EndTime    time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
