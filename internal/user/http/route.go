package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/users")

	group.POST("/register", h.Register)
	group.POST("/login", h.Login)
	group.GET("/current", authMiddleware, h.Current)
}
