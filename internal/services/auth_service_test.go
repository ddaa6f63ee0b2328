package services

import (
	"os"
	"testing"

	"gymtrack-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db)

	user, err := svc.Register("Jane Doe", "jane", "secret123", models.RoleStaff)
	assert.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, models.RoleStaff, user.Role)

	// Password is stored as a bcrypt hash, never in plaintext.
	assert.NotEqual(t, "secret123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.Register("Jane Doe", "jane", "secret123", models.RoleStaff)
	assert.NoError(t, err)

	_, err = svc.Register("Other Jane", "jane", "different", models.RoleAdmin)
	assert.ErrorIs(t, err, ErrUsernameTaken)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestLogin(t *testing.T) {
	os.Setenv("JWT_SECRET", "test_secret")

	db := setupTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.Register("Jane Doe", "jane", "secret123", models.RoleAdmin)
	assert.NoError(t, err)

	token, user, err := svc.Login("jane", "secret123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "jane", user.Username)

	_, _, err = svc.Login("jane", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nobody", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
