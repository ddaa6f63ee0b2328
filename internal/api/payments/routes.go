package payments

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	payments := router.Group("/payments")
	payments.GET("", h.List)
	payments.POST("", h.Record)
}
