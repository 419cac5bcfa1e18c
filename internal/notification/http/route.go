package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, facultyMiddleware gin.HandlerFunc) {
	group := g.Group("/notifications")
	group.Use(authMiddleware)

	group.GET("", h.List)
	group.POST("/announcement", facultyMiddleware, h.CreateAnnouncement)
}
