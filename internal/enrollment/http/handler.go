package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/acadhub/campus-resource-backend/internal/auth"
	"github.com/acadhub/campus-resource-backend/internal/enrollment"
	"github.com/acadhub/campus-resource-backend/internal/pkg/response"
	"github.com/acadhub/campus-resource-backend/internal/timetable"
)

type Handler struct {
	service          enrollment.Service
	timetableService timetable.Service
}

func NewHandler(service enrollment.Service, timetableService timetable.Service) *Handler {
	return &Handler{
		service:          service,
		timetableService: timetableService,
	}
}

func (h *Handler) Enroll(c *gin.Context) {
	var body EnrollRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	studentID := auth.GetUserID(c)
	if studentID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	e, err := h.service.Enroll(c.Request.Context(), studentID, body.CourseID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Enrollment created successfully",
		"enrollment": NewEnrollmentResponse(e),
	})
}

func (h *Handler) List(c *gin.Context) {
	enrollments, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list enrollments"})
		return
	}

	items := make([]EnrollmentResponse, len(enrollments))
	for i, e := range enrollments {
		items[i] = NewEnrollmentResponse(e)
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Enrollment deleted successfully"})
}

// Timetable serves the flattened, course-named timetable view students see.
func (h *Handler) Timetable(c *gin.Context) {
	entries, err := h.timetableService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch timetable"})
		return
	}

	items := make([]TimetableViewItem, len(entries))
	for i, e := range entries {
		items[i] = NewTimetableViewItem(e)
	}
	c.JSON(http.StatusOK, items)
}
