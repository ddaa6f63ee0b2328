package dashboard

import (
	"net/http"

	"gymtrack-backend/internal/services"
	"gymtrack-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	dashboard *services.DashboardService
}

func NewHandler(dashboard *services.DashboardService) *Handler {
	return &Handler{dashboard: dashboard}
}

// Stats godoc
// @Summary Dashboard statistics
// @Description Point-in-time aggregate counts; not a consistent snapshot.
// @Tags dashboard
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.Response{data=services.DashboardStats}
// @Router /dashboard/stats [get]
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.dashboard.Stats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch dashboard stats"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Dashboard stats retrieved successfully", stats))
}

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	dashboard := router.Group("/dashboard")
	dashboard.GET("/stats", h.Stats)
}
