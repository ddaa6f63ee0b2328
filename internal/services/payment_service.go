package services

import (
	"errors"
	"time"

	"gymtrack-backend/internal/models"

	"gorm.io/gorm"
)

const paymentListLimit = 100

type PaymentService struct {
	db *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{db: db}
}

// PaymentEntry pairs a payment with the member it references. Member is nil
// when the member record no longer exists.
type PaymentEntry struct {
	Payment models.Payment
	Member  *models.Member
}

// RecordPayment records a payment and resets the member's validity window
// from now. Renewal never stacks onto remaining time: the new window is
// [now, now+plan duration) regardless of the previous end date.
//
// The member update and the payment insert are two writes with no rollback;
// a failure between them leaves the window extended without a payment row.
func (s *PaymentService) RecordPayment(memberID uint, plan string, amount float64, staffName string) (*models.Payment, time.Time, error) {
	var member models.Member
	if err := s.db.First(&member, memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, time.Time{}, ErrMemberNotFound
		}
		return nil, time.Time{}, err
	}

	duration, ok := PlanDuration(plan)
	if !ok {
		return nil, time.Time{}, ErrInvalidPlan
	}

	startDate := time.Now().UTC()
	endDate := startDate.Add(duration)

	err := s.db.Model(&member).Updates(map[string]interface{}{
		"membership_type": plan,
		"start_date":      startDate,
		"end_date":        endDate,
		"status":          models.StatusActive,
	}).Error
	if err != nil {
		return nil, time.Time{}, err
	}

	payment := &models.Payment{
		MemberID:       memberID,
		Amount:         amount,
		PaymentDate:    startDate,
		PaymentMethod:  models.DefaultPaymentMethod,
		MembershipPlan: plan,
		StaffName:      staffName,
	}
	if err := s.db.Create(payment).Error; err != nil {
		return nil, time.Time{}, err
	}

	return payment, endDate, nil
}

// List returns payment history, newest first, capped at 100 records.
// A zero memberID matches all members.
func (s *PaymentService) List(memberID uint) ([]PaymentEntry, error) {
	query := s.db.Model(&models.Payment{})
	if memberID != 0 {
		query = query.Where("member_id = ?", memberID)
	}

	var payments []models.Payment
	if err := query.Order("payment_date DESC").Limit(paymentListLimit).Find(&payments).Error; err != nil {
		return nil, err
	}

	entries := make([]PaymentEntry, 0, len(payments))
	for _, payment := range payments {
		entry := PaymentEntry{Payment: payment}
		var member models.Member
		if err := s.db.First(&member, payment.MemberID).Error; err == nil {
			entry.Member = &member
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
