package services

import (
	"time"

	"gymtrack-backend/internal/models"

	"gorm.io/gorm"
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// DashboardStats is a point-in-time snapshot. Member status counts read the
// persisted status cache without recomputing it, and nothing here runs in a
// transaction; numbers can be slightly stale against concurrent writes.
type DashboardStats struct {
	TotalMembers       int64   `json:"total_members"`
	ActiveMembers      int64   `json:"active_members"`
	ExpiringSoon       int64   `json:"expiring_soon"`
	TodayAttendance    int64   `json:"today_attendance"`
	CurrentlyCheckedIn int64   `json:"currently_checked_in"`
	MonthlyRevenue     float64 `json:"monthly_revenue"`
}

func (s *DashboardService) Stats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := s.db.Model(&models.Member{}).Count(&stats.TotalMembers).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Member{}).
		Where("status = ?", models.StatusActive).
		Count(&stats.ActiveMembers).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Member{}).
		Where("status = ?", models.StatusExpiringSoon).
		Count(&stats.ExpiringSoon).Error; err != nil {
		return nil, err
	}

	dayStart, dayEnd := dayRange(time.Now().UTC())
	if err := s.db.Model(&models.Attendance{}).
		Where("check_in_time >= ? AND check_in_time < ?", dayStart, dayEnd).
		Count(&stats.TodayAttendance).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Attendance{}).
		Where("check_in_time >= ? AND check_in_time < ? AND check_out_time IS NULL", dayStart, dayEnd).
		Count(&stats.CurrentlyCheckedIn).Error; err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	err := s.db.Model(&models.Payment{}).
		Where("payment_date >= ?", monthStart).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&stats.MonthlyRevenue).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}
