package attendance

import (
	"time"

	"gymtrack-backend/internal/services"
)

type CheckInInput struct {
	MemberID uint `json:"member_id" binding:"required"`
}

type CheckOutInput struct {
	MemberID uint `json:"member_id" binding:"required"`
}

type CheckInResponse struct {
	AttendanceID uint   `json:"attendance_id"`
	MemberName   string `json:"member_name"`
	CheckInTime  string `json:"check_in_time"`
}

type CheckOutResponse struct {
	CheckOutTime string `json:"check_out_time"`
}

// SessionResponse is one attendance row in a listing. MemberName and
// MemberContact are filled best-effort and omitted when the member record
// is gone.
type SessionResponse struct {
	ID            uint       `json:"id"`
	MemberID      uint       `json:"member_id"`
	MemberName    string     `json:"member_name,omitempty"`
	MemberContact string     `json:"member_contact,omitempty"`
	CheckInTime   time.Time  `json:"check_in_time"`
	CheckOutTime  *time.Time `json:"check_out_time"`
	StaffName     string     `json:"staff_name"`
}

func toSessionResponse(entry services.AttendanceEntry, includeContact bool) SessionResponse {
	resp := SessionResponse{
		ID:           entry.Session.ID,
		MemberID:     entry.Session.MemberID,
		CheckInTime:  entry.Session.CheckInTime,
		CheckOutTime: entry.Session.CheckOutTime,
		StaffName:    entry.Session.StaffName,
	}
	if entry.Member != nil {
		resp.MemberName = entry.Member.Name
		if includeContact {
			resp.MemberContact = entry.Member.Contact
		}
	}
	return resp
}
