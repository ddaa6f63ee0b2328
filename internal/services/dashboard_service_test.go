package services

import (
	"testing"
	"time"

	"gymtrack-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestDashboardStats(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDashboardService(db)

	now := time.Now().UTC()

	// Three members with distinct cached statuses. Stats trusts the cache
	// and must not recompute.
	db.Create(&models.Member{Name: "A", EndDate: now.Add(60 * 24 * time.Hour), Status: models.StatusActive})
	db.Create(&models.Member{Name: "B", EndDate: now.Add(24 * time.Hour), Status: models.StatusExpiringSoon})
	db.Create(&models.Member{Name: "C", EndDate: now.Add(-time.Hour), Status: models.StatusExpired})

	// Two sessions today, one of them still open, one yesterday.
	dayStart, _ := dayRange(now)
	closed := dayStart.Add(2 * time.Hour)
	db.Create(&models.Attendance{MemberID: 1, CheckInTime: dayStart.Add(time.Hour), CheckOutTime: &closed})
	db.Create(&models.Attendance{MemberID: 2, CheckInTime: dayStart.Add(3 * time.Hour)})
	db.Create(&models.Attendance{MemberID: 1, CheckInTime: dayStart.Add(-5 * time.Hour)})

	// Payments inside and outside the current calendar month.
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	db.Create(&models.Payment{MemberID: 1, Amount: 500, PaymentDate: monthStart.Add(time.Hour)})
	db.Create(&models.Payment{MemberID: 2, Amount: 250.5, PaymentDate: now})
	db.Create(&models.Payment{MemberID: 1, Amount: 999, PaymentDate: monthStart.Add(-time.Hour)})

	stats, err := svc.Stats()
	assert.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalMembers)
	assert.Equal(t, int64(1), stats.ActiveMembers)
	assert.Equal(t, int64(1), stats.ExpiringSoon)
	assert.Equal(t, int64(2), stats.TodayAttendance)
	assert.Equal(t, int64(1), stats.CurrentlyCheckedIn)
	assert.Equal(t, 750.5, stats.MonthlyRevenue)
}

func TestDashboardStatsEmpty(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDashboardService(db)

	stats, err := svc.Stats()
	assert.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalMembers)
	assert.Equal(t, int64(0), stats.TodayAttendance)
	assert.Equal(t, 0.0, stats.MonthlyRevenue)
}
