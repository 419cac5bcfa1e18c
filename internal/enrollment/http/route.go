package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, studentMiddleware, facultyMiddleware gin.HandlerFunc) {
	group := g.Group("/enrollments")
	group.Use(authMiddleware)

	group.POST("", studentMiddleware, h.Enroll)
	group.GET("", facultyMiddleware, h.List)
	group.GET("/timetable", h.Timetable)
	group.DELETE("/:id", facultyMiddleware, h.Delete)
}
