package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, facultyMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/courses")
	group.Use(authMiddleware)

	group.GET("", h.List)
	group.GET("/:id", h.Get)
	group.POST("", facultyMiddleware, h.Create)
	group.PUT("/assign-faculty", adminMiddleware, h.AssignFaculty)
	group.PUT("/:id", facultyMiddleware, h.Update)
	group.DELETE("/:id", facultyMiddleware, h.Delete)
}
