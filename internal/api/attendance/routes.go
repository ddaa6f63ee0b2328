package attendance

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	attendance := router.Group("/attendance")
	attendance.POST("/checkin", h.CheckIn)
	attendance.POST("/checkout", h.CheckOut)
	attendance.GET("", h.List)
	attendance.GET("/today", h.Today)
}
