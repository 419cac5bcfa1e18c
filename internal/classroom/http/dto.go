package http

import (
	"time"

	"github.com/acadhub/campus-resource-backend/internal/classroom"
)

type CreateClassRoomRequest struct {
	Name      string   `json:"name" binding:"required"`
	Capacity  int      `json:"capacity" binding:"required,min=1"`
	Resources []string `json:"resources"`
}

type UpdateClassRoomRequest struct {
	Name      string   `json:"name" binding:"required"`
	Capacity  int      `json:"capacity" binding:"required,min=1"`
	Resources []string `json:"resources"`
}

type ClassRoomResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Capacity   int       `json:"capacity"`
	Resources  []string  `json:"resources"`
	BookingIDs []string  `json:"booking_ids"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewClassRoomResponse(r *classroom.ClassRoom) ClassRoomResponse {
	resources := r.Resources
	if resources == nil {
		resources = make([]string, 0)
	}
	bookings := r.BookingIDs
	if bookings == nil {
		bookings = make([]string, 0)
	}
	return ClassRoomResponse{
		ID:         r.ID,
		Name:       r.Name,
		Capacity:   r.Capacity,
		Resources:  resources,
		BookingIDs: bookings,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}
