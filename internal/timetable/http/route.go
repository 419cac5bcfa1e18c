package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, facultyMiddleware gin.HandlerFunc) {
	group := g.Group("/timetables")
	group.Use(authMiddleware)

	group.GET("", h.List)
	group.POST("", facultyMiddleware, h.Create)
	group.PUT("/:id", facultyMiddleware, h.Update)
	group.DELETE("/:id", facultyMiddleware, h.Delete)
}
