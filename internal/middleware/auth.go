package middleware

import (
	"net/http"

	"gymtrack-backend/internal/models"
	"gymtrack-backend/internal/services"
	"gymtrack-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and resolves the authenticated
// user into the context under "user". Requests with a missing, malformed,
// expired, or revoked token are rejected with 401, as are tokens referencing
// a user that no longer exists.
func AuthMiddleware(users *services.UserService, denylist *services.TokenDenylist) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := utils.ExtractToken(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, err.Error()))
			c.Abort()
			return
		}

		revoked, err := denylist.Contains(tokenString)
		if err != nil {
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to check token status"))
			c.Abort()
			return
		}
		if revoked {
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Token has been revoked"))
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Invalid or expired token"))
			c.Abort()
			return
		}

		userIDFloat, ok := claims["user_id"].(float64)
		if !ok {
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Invalid user ID in token"))
			c.Abort()
			return
		}

		user, err := users.FindByID(uint(userIDFloat))
		if err != nil {
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "User not found"))
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

// AdminRequired rejects requests whose resolved user is not an Admin. It
// must run after AuthMiddleware.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		userVal, exists := c.Get("user")
		if !exists {
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Authentication required"))
			c.Abort()
			return
		}

		user, ok := userVal.(models.User)
		if !ok || user.Role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, utils.NewErrorResponse(http.StatusForbidden, "Admin access required"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUser pulls the authenticated user set by AuthMiddleware out of the
// context. The second return value is false when the middleware did not run.
func CurrentUser(c *gin.Context) (models.User, bool) {
	userVal, exists := c.Get("user")
	if !exists {
		return models.User{}, false
	}
	user, ok := userVal.(models.User)
	return user, ok
}
