package payments

import (
	"time"

	"gymtrack-backend/internal/services"
)

type RecordPaymentInput struct {
	MemberID       uint    `json:"member_id" binding:"required"`
	MembershipPlan string  `json:"membership_plan" binding:"required"`
	Amount         float64 `json:"amount" binding:"required,gt=0"`
}

type RecordPaymentResponse struct {
	PaymentID uint   `json:"payment_id"`
	EndDate   string `json:"end_date"`
}

type PaymentResponse struct {
	ID             uint      `json:"id"`
	MemberID       uint      `json:"member_id"`
	MemberName     string    `json:"member_name,omitempty"`
	Amount         float64   `json:"amount"`
	PaymentDate    time.Time `json:"payment_date"`
	PaymentMethod  string    `json:"payment_method"`
	MembershipPlan string    `json:"membership_plan"`
	StaffName      string    `json:"staff_name"`
}

func toPaymentResponse(entry services.PaymentEntry) PaymentResponse {
	resp := PaymentResponse{
		ID:             entry.Payment.ID,
		MemberID:       entry.Payment.MemberID,
		Amount:         entry.Payment.Amount,
		PaymentDate:    entry.Payment.PaymentDate,
		PaymentMethod:  entry.Payment.PaymentMethod,
		MembershipPlan: entry.Payment.MembershipPlan,
		StaffName:      entry.Payment.StaffName,
	}
	if entry.Member != nil {
		resp.MemberName = entry.Member.Name
	}
	return resp
}
