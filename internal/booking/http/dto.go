package http

import (
	"time"

	"github.com/acadhub/campus-resource-backend/internal/booking"
)

type CreateBookingRequest struct {
	RoomID    string    `json:"roomId" binding:"required,uuid"`
	CourseID  string    `json:"courseId" binding:"required,uuid"`
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
}

type BookingResponse struct {
	ID         string    `json:"id"`
	RoomID     string    `json:"room_id"`
	RoomName   string    `json:"room_name,omitempty"`
	CourseID   string    `json:"course_id"`
	CourseName string    `json:"course_name,omitempty"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		RoomID:     b.RoomID,
		RoomName:   b.RoomName,
		CourseID:   b.CourseID,
		CourseName: b.CourseName,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		CreatedAt:  b.CreatedAt,
	}
}
