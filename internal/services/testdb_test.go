package services

import (
	"testing"

	"gymtrack-backend/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens a fresh in-memory SQLite database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(&models.User{}, &models.Member{}, &models.Attendance{}, &models.Payment{})
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}
