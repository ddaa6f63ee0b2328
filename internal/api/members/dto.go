package members

import (
	"time"

	"gymtrack-backend/internal/models"
)

type CreateMemberInput struct {
	Name           string    `json:"name" binding:"required"`
	Contact        string    `json:"contact" binding:"required"`
	MembershipType string    `json:"membership_type" binding:"required,oneof=Monthly Quarterly Annual"`
	StartDate      time.Time `json:"start_date" binding:"required"`
	EndDate        time.Time `json:"end_date" binding:"required"`
}

type UpdateMemberInput struct {
	Name           *string    `json:"name,omitempty"`
	Contact        *string    `json:"contact,omitempty"`
	MembershipType *string    `json:"membership_type,omitempty" binding:"omitempty,oneof=Monthly Quarterly Annual"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
}

type MemberResponse struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Contact        string    `json:"contact"`
	MembershipType string    `json:"membership_type"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CreateMemberResponse struct {
	MemberID uint `json:"member_id"`
}

func toMemberResponse(m *models.Member) MemberResponse {
	return MemberResponse{
		ID:             m.ID,
		Name:           m.Name,
		Contact:        m.Contact,
		MembershipType: m.MembershipType,
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		Status:         m.Status,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
