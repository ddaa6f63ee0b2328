package auth

import (
	"errors"
	"net/http"
	"time"

	"gymtrack-backend/internal/middleware"
	"gymtrack-backend/internal/services"
	"gymtrack-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	auth     *services.AuthService
	denylist *services.TokenDenylist
}

func NewHandler(auth *services.AuthService, denylist *services.TokenDenylist) *Handler {
	return &Handler{auth: auth, denylist: denylist}
}

// Register godoc
// @Summary Register a new staff or admin account
// @Tags auth
// @Accept json
// @Produce json
// @Param input body RegisterInput true "Register Input"
// @Success 201 {object} utils.Response{data=RegisterResponse}
// @Failure 400 {object} utils.Response
// @Router /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var input RegisterInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	user, err := h.auth.Register(input.Name, input.Username, input.Password, input.Role)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Username already exists"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to register user"))
		return
	}

	c.JSON(http.StatusCreated, utils.NewResponse(http.StatusCreated, "User registered successfully", RegisterResponse{
		UserID: user.ID,
	}))
}

// Login godoc
// @Summary Log in with username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param input body LoginInput true "Login Input"
// @Success 200 {object} utils.Response{data=LoginResponse}
// @Failure 401 {object} utils.Response
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var input LoginInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	token, user, err := h.auth.Login(input.Username, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Invalid credentials"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Logged in successfully", LoginResponse{
		Token: token,
		User: UserSummary{
			ID:       user.ID,
			Name:     user.Name,
			Username: user.Username,
			Role:     user.Role,
		},
	}))
}

// Me godoc
// @Summary Get the authenticated user
// @Tags auth
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.Response{data=UserSummary}
// @Failure 401 {object} utils.Response
// @Router /auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Authentication required"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Current user", UserSummary{
		ID:       user.ID,
		Name:     user.Name,
		Username: user.Username,
		Role:     user.Role,
	}))
}

// Logout godoc
// @Summary Revoke the current bearer token
// @Tags auth
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Router /auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	tokenString, err := utils.ExtractToken(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, err.Error()))
		return
	}

	// Deny the token for its remaining lifetime; if the claims are already
	// unreadable, deny for the maximum lifetime instead.
	remaining := utils.TokenLifetime
	if claims, err := utils.ValidateToken(tokenString); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			remaining = time.Until(time.Unix(int64(exp), 0))
		}
	}

	if err := h.denylist.Add(tokenString, remaining); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to revoke token"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Logged out successfully", nil))
}
