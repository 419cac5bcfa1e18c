package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, facultyMiddleware gin.HandlerFunc) {
	group := g.Group("/bookings")
	group.Use(authMiddleware)

	group.GET("", h.List)
	group.POST("", facultyMiddleware, h.Create)
	group.DELETE("/:id", facultyMiddleware, h.Delete)
}
