package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"gymtrack-backend/internal/models"
	"gymtrack-backend/internal/services"
	"gymtrack-backend/internal/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupAuthTest(t *testing.T) (*services.UserService, *services.TokenDenylist, *gorm.DB, *miniredis.Miniredis) {
	t.Helper()
	os.Setenv("JWT_SECRET", "test_secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	return services.NewUserService(db, cache), services.NewTokenDenylist(cache), db, mr
}

func signTestToken(t *testing.T, userID uint, role string, expired bool) string {
	t.Helper()
	exp := time.Now().Add(time.Hour)
	if expired {
		exp = time.Now().Add(-time.Hour)
	}
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     exp.Unix(),
		// nonce keeps each signed token distinct; otherwise two tokens with
		// the same user/role signed within the same second are byte-identical
		// and the revoked token collides with the valid one.
		"nonce": time.Now().UnixNano(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test_secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func TestAuthMiddleware(t *testing.T) {
	users, denylist, db, mr := setupAuthTest(t)
	defer mr.Close()

	gin.SetMode(gin.TestMode)

	staff := models.User{Name: "Staff Member", Username: "staff", Password: "hash", Role: models.RoleStaff}
	assert.NoError(t, db.Create(&staff).Error)

	revokedToken := signTestToken(t, staff.ID, staff.Role, false)
	assert.NoError(t, denylist.Add(revokedToken, time.Hour))

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Missing Authorization Header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "authorization header is required",
		},
		{
			name:           "Invalid Token Format",
			authHeader:     "InvalidToken",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "bearer token not found",
		},
		{
			name:           "Invalid Token Signature",
			authHeader:     "Bearer invalid.token.signature",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Invalid or expired token",
		},
		{
			name:           "Expired Token",
			authHeader:     "Bearer " + signTestToken(t, staff.ID, staff.Role, true),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Invalid or expired token",
		},
		{
			name:           "Revoked Token",
			authHeader:     "Bearer " + revokedToken,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Token has been revoked",
		},
		{
			name:           "Unknown User",
			authHeader:     "Bearer " + signTestToken(t, 999, models.RoleStaff, false),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "User not found",
		},
		{
			name:           "Valid Token",
			authHeader:     "Bearer " + signTestToken(t, staff.ID, staff.Role, false),
			expectedStatus: http.StatusOK,
			expectedBody:   "Success",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(AuthMiddleware(users, denylist))
			r.GET("/protected", func(c *gin.Context) {
				c.String(http.StatusOK, "Success")
			})

			req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus != http.StatusOK {
				var resp utils.Response
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Contains(t, resp.Message, tt.expectedBody)
			} else {
				assert.Equal(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestAdminRequired(t *testing.T) {
	users, denylist, db, mr := setupAuthTest(t)
	defer mr.Close()

	gin.SetMode(gin.TestMode)

	staff := models.User{Name: "Staff Member", Username: "staff", Password: "hash", Role: models.RoleStaff}
	admin := models.User{Name: "Admin User", Username: "boss", Password: "hash", Role: models.RoleAdmin}
	assert.NoError(t, db.Create(&staff).Error)
	assert.NoError(t, db.Create(&admin).Error)

	tests := []struct {
		name           string
		token          string
		expectedStatus int
	}{
		{
			name:           "Staff Is Forbidden",
			token:          signTestToken(t, staff.ID, staff.Role, false),
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Admin Is Allowed",
			token:          signTestToken(t, admin.ID, admin.Role, false),
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(AuthMiddleware(users, denylist), AdminRequired())
			r.GET("/admin-only", func(c *gin.Context) {
				c.String(http.StatusOK, "Success")
			})

			req, _ := http.NewRequest(http.MethodGet, "/admin-only", nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
