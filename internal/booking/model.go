package booking

import (
	"net/http"
	"time"

	"github.com/acadhub/campus-resource-backend/internal/pkg/apperror"
)

var (
	ErrNotFound       = apperror.New(http.StatusNotFound, "booking not found")
	ErrRoomNotFound   = apperror.New(http.StatusNotFound, "room not found")
	ErrCourseNotFound = apperror.New(http.StatusNotFound, "course not found")
	ErrTimeConflict   = apperror.New(http.StatusBadRequest, "booking overlaps with existing booking")
)

// Booking reserves a room for a course over a half-open time range.
// The room is the resource scope: no two bookings for the same room
// may overlap in time.
type Booking struct {
	ID         string
	RoomID     string
	RoomName   string
	CourseID   string
	CourseName string
	StartTime  time.Time
	EndTime    time.Time
	CreatedAt  time.Time
}
