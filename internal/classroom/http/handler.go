package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acadhub/campus-resource-backend/internal/classroom"
	"github.com/acadhub/campus-resource-backend/internal/pkg/request"
	"github.com/acadhub/campus-resource-backend/internal/pkg/response"
)

type Handler struct {
	service classroom.Service
}

func NewHandler(service classroom.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	rooms, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list rooms"})
		return
	}

	items := make([]ClassRoomResponse, len(rooms))
	for i, room := range rooms {
		items[i] = NewClassRoomResponse(room)
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	room, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewClassRoomResponse(room))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateClassRoomRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	room, err := h.service.Create(c.Request.Context(), classroom.CreateRequest{
		Name:      body.Name,
		Capacity:  body.Capacity,
		Resources: body.Resources,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewClassRoomResponse(room))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var body UpdateClassRoomRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	room, err := h.service.Update(c.Request.Context(), uri.ID, classroom.UpdateRequest{
		Name:      body.Name,
		Capacity:  body.Capacity,
		Resources: body.Resources,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewClassRoomResponse(room))
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room deleted successfully"})
}
