package members

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the member endpoints on an authenticated group.
// adminRequired gates the mutating routes to Admin users.
func RegisterRoutes(router *gin.RouterGroup, h *Handler, adminRequired gin.HandlerFunc) {
	members := router.Group("/members")
	members.GET("", h.List)
	members.GET("/:id", h.Get)
	members.POST("", adminRequired, h.Create)
	members.PUT("/:id", adminRequired, h.Update)
	members.DELETE("/:id", adminRequired, h.Delete)
}
