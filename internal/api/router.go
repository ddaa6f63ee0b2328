package api

import (
	_ "gymtrack-backend/docs"
	"gymtrack-backend/internal/api/attendance"
	"gymtrack-backend/internal/api/auth"
	"gymtrack-backend/internal/api/dashboard"
	"gymtrack-backend/internal/api/members"
	"gymtrack-backend/internal/api/payments"
	"gymtrack-backend/internal/middleware"
	"gymtrack-backend/internal/services"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// NewRouter wires every service and handler onto a gin engine. The store
// handles are injected so tests can run the full router against in-memory
// stores.
func NewRouter(db *gorm.DB, cache *redis.Client) *gin.Engine {
	authService := services.NewAuthService(db)
	userService := services.NewUserService(db, cache)
	memberService := services.NewMemberService(db)
	attendanceService := services.NewAttendanceService(db)
	paymentService := services.NewPaymentService(db)
	dashboardService := services.NewDashboardService(db)
	denylist := services.NewTokenDenylist(cache)

	authRequired := middleware.AuthMiddleware(userService, denylist)
	adminRequired := middleware.AdminRequired()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "healthy"})
		})

		auth.RegisterRoutes(apiGroup, auth.NewHandler(authService, denylist), authRequired)

		authorized := apiGroup.Group("/")
		authorized.Use(authRequired)
		{
			members.RegisterRoutes(authorized, members.NewHandler(memberService), adminRequired)
			attendance.RegisterRoutes(authorized, attendance.NewHandler(attendanceService))
			payments.RegisterRoutes(authorized, payments.NewHandler(paymentService))
			dashboard.RegisterRoutes(authorized, dashboard.NewHandler(dashboardService))
		}
	}

	return router
}
