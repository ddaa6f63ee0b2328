package models

import "time"

// Attendance is one gym visit. A nil CheckOutTime means the session is still
// open; sessions are never deleted, only closed.
type Attendance struct {
	ID           uint `gorm:"primarykey"`
	CreatedAt    time.Time
	MemberID     uint      `gorm:"index;not null"`
	CheckInTime  time.Time `gorm:"index;not null"`
	CheckOutTime *time.Time
	StaffName    string `gorm:"type:varchar(100)"`
}
