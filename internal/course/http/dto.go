package http

import (
	"time"

	"github.com/acadhub/campus-resource-backend/internal/course"
)

type CreateCourseRequest struct {
	Name        string `json:"name" binding:"required"`
	Code        string `json:"code" binding:"required"`
	Description string `json:"description" binding:"required"`
	Credits     int    `json:"credits" binding:"required,min=1"`
}

type UpdateCourseRequest struct {
	Name        string `json:"name" binding:"required"`
	Code        string `json:"code" binding:"required"`
	Description string `json:"description" binding:"required"`
	Credits     int    `json:"credits" binding:"required,min=1"`
}

type AssignFacultyRequest struct {
	CourseID        string `json:"course_id" binding:"required,uuid"`
	FacultyMemberID string `json:"faculty_member_id" binding:"required,uuid"`
}

type CourseResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Code             string    `json:"code"`
	Description      string    `json:"description"`
	Credits          int       `json:"credits"`
	FacultyMemberIDs []string  `json:"faculty_member_ids"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func NewCourseResponse(c *course.Course) CourseResponse {
	faculty := c.FacultyMemberIDs
	if faculty == nil {
		faculty = make([]string, 0)
	}
	return CourseResponse{
		ID:               c.ID,
		Name:             c.Name,
		Code:             c.Code,
		Description:      c.Description,
		Credits:          c.Credits,
		FacultyMemberIDs: faculty,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}
