package models

import "time"

const DefaultPaymentMethod = "Cash"

// Payment is an append-only record of money taken for a membership plan.
// Rows are never updated or deleted.
type Payment struct {
	ID             uint `gorm:"primarykey"`
	CreatedAt      time.Time
	MemberID       uint      `gorm:"index;not null"`
	Amount         float64   `gorm:"type:decimal(10,2);not null"`
	PaymentDate    time.Time `gorm:"index;not null"`
	PaymentMethod  string    `gorm:"type:varchar(50);default:'Cash'"`
	MembershipPlan string    `gorm:"type:varchar(50)"`
	StaffName      string    `gorm:"type:varchar(100)"`
}
