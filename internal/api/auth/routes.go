package auth

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the auth endpoints. authRequired is the bearer-token
// middleware applied to the routes that need a resolved user.
func RegisterRoutes(router *gin.RouterGroup, h *Handler, authRequired gin.HandlerFunc) {
	auth := router.Group("/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)
	auth.GET("/me", authRequired, h.Me)
	auth.POST("/logout", authRequired, h.Logout)
}
