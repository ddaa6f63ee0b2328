package services

import (
	"errors"
	"time"

	"gymtrack-backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrMembershipExpired = errors.New("member subscription has expired, please renew")
	ErrAlreadyCheckedIn  = errors.New("member is already checked in")
	ErrNoOpenSession     = errors.New("no active check-in found for this member")
)

// attendanceListLimit caps filtered history queries; today's view is uncapped.
const attendanceListLimit = 100

type AttendanceService struct {
	db *gorm.DB
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{db: db}
}

// AttendanceFilter narrows an attendance listing. A zero MemberID matches
// all members; a nil Date matches all days.
type AttendanceFilter struct {
	MemberID uint
	Date     *time.Time
}

// AttendanceEntry pairs a session with the member it references. Member is
// nil when the member record no longer exists; listing is best-effort and
// does not fail on dangling references.
type AttendanceEntry struct {
	Session models.Attendance
	Member  *models.Member
}

// dayRange returns the [00:00, next 00:00) UTC window containing t.
func dayRange(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}

// CheckIn opens a session for the member. The membership must not be
// expired, and the member must not already have an open session today.
//
// The open-session probe and the insert are separate statements with no
// unique constraint backing them: two concurrent check-ins for the same
// member can both pass the probe and create two open sessions.
func (s *AttendanceService) CheckIn(memberID uint, staffName string) (*models.Attendance, *models.Member, error) {
	var member models.Member
	if err := s.db.First(&member, memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrMemberNotFound
		}
		return nil, nil, err
	}

	if DeriveStatus(&member) == models.StatusExpired {
		return nil, nil, ErrMembershipExpired
	}

	now := time.Now().UTC()
	dayStart, dayEnd := dayRange(now)

	var existing models.Attendance
	err := s.db.
		Where("member_id = ? AND check_in_time >= ? AND check_in_time < ? AND check_out_time IS NULL",
			memberID, dayStart, dayEnd).
		First(&existing).Error
	if err == nil {
		return nil, nil, ErrAlreadyCheckedIn
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, err
	}

	session := &models.Attendance{
		MemberID:    memberID,
		CheckInTime: now,
		StaffName:   staffName,
	}
	if err := s.db.Create(session).Error; err != nil {
		return nil, nil, err
	}

	return session, &member, nil
}

// CheckOut closes the member's open session for today and returns the
// recorded check-out time.
func (s *AttendanceService) CheckOut(memberID uint) (time.Time, error) {
	now := time.Now().UTC()
	dayStart, dayEnd := dayRange(now)

	var session models.Attendance
	err := s.db.
		Where("member_id = ? AND check_in_time >= ? AND check_in_time < ? AND check_out_time IS NULL",
			memberID, dayStart, dayEnd).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return time.Time{}, ErrNoOpenSession
		}
		return time.Time{}, err
	}

	if err := s.db.Model(&session).Update("check_out_time", now).Error; err != nil {
		return time.Time{}, err
	}

	return now, nil
}

// List returns attendance history, newest first, capped at 100 records.
func (s *AttendanceService) List(filter AttendanceFilter) ([]AttendanceEntry, error) {
	query := s.db.Model(&models.Attendance{})

	if filter.MemberID != 0 {
		query = query.Where("member_id = ?", filter.MemberID)
	}
	if filter.Date != nil {
		dayStart, dayEnd := dayRange(*filter.Date)
		query = query.Where("check_in_time >= ? AND check_in_time < ?", dayStart, dayEnd)
	}

	var sessions []models.Attendance
	if err := query.Order("check_in_time DESC").Limit(attendanceListLimit).Find(&sessions).Error; err != nil {
		return nil, err
	}

	return s.enrich(sessions)
}

// ListToday returns all of today's sessions, newest first, with no cap.
func (s *AttendanceService) ListToday() ([]AttendanceEntry, error) {
	dayStart, dayEnd := dayRange(time.Now().UTC())

	var sessions []models.Attendance
	err := s.db.
		Where("check_in_time >= ? AND check_in_time < ?", dayStart, dayEnd).
		Order("check_in_time DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}

	return s.enrich(sessions)
}

func (s *AttendanceService) enrich(sessions []models.Attendance) ([]AttendanceEntry, error) {
	entries := make([]AttendanceEntry, 0, len(sessions))
	for _, session := range sessions {
		entry := AttendanceEntry{Session: session}
		var member models.Member
		if err := s.db.First(&member, session.MemberID).Error; err == nil {
			entry.Member = &member
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
