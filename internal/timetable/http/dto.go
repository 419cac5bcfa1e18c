package http

import (
	"time"

	"github.com/acadhub/campus-resource-backend/internal/timetable"
)

type EntryRequest struct {
	CourseID  string    `json:"course" binding:"required,uuid"`
	DayOfWeek string    `json:"dayOfWeek" binding:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
}

type EntryResponse struct {
	ID         string    `json:"id"`
	CourseID   string    `json:"course_id"`
	CourseName string    `json:"course_name,omitempty"`
	DayOfWeek  string    `json:"day_of_week"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewEntryResponse(e *timetable.Entry) EntryResponse {
	return EntryResponse{
		ID:         e.ID,
		CourseID:   e.CourseID,
		CourseName: e.CourseName,
		DayOfWeek:  string(e.DayOfWeek),
		StartTime:  e.StartTime,
		EndTime:    e.EndTime,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
