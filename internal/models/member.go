package models

import "time"

// Membership status values stored in Member.Status. The stored value is a
// cache; read paths recompute it from EndDate before trusting it.
const (
	StatusActive       = "Active"
	StatusExpiringSoon = "Expiring Soon"
	StatusExpired      = "Expired"
)

// Membership plan names accepted by the renewal flow.
const (
	PlanMonthly   = "Monthly"
	PlanQuarterly = "Quarterly"
	PlanAnnual    = "Annual"
)

type Member struct {
	ID             uint `gorm:"primarykey"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Name           string `gorm:"not null"`
	Contact        string
	MembershipType string
	StartDate      time.Time
	EndDate        time.Time `gorm:"index"`
	Status         string    `gorm:"default:'Active'"`
}
