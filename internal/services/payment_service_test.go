package services

import (
	"testing"
	"time"

	"gymtrack-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestRecordPaymentResetsWindow(t *testing.T) {
	tests := []struct {
		plan string
		days int
	}{
		{models.PlanMonthly, 30},
		{models.PlanQuarterly, 90},
		{models.PlanAnnual, 365},
	}

	for _, tt := range tests {
		t.Run(tt.plan, func(t *testing.T) {
			db := setupTestDB(t)
			svc := NewPaymentService(db)

			// The member still has 10 days left; renewal must not stack
			// onto them.
			member := createTestMember(t, db, time.Now().UTC().Add(10*24*time.Hour))

			before := time.Now().UTC()
			payment, endDate, err := svc.RecordPayment(member.ID, tt.plan, 500, "Front Desk")
			after := time.Now().UTC()

			assert.NoError(t, err)
			assert.NotZero(t, payment.ID)
			assert.Equal(t, tt.plan, payment.MembershipPlan)
			assert.Equal(t, models.DefaultPaymentMethod, payment.PaymentMethod)
			assert.Equal(t, 500.0, payment.Amount)
			assert.Equal(t, "Front Desk", payment.StaffName)

			var updated models.Member
			assert.NoError(t, db.First(&updated, member.ID).Error)
			assert.Equal(t, tt.plan, updated.MembershipType)
			assert.Equal(t, models.StatusActive, updated.Status)

			// end = start + plan duration exactly, with start between the
			// instants bracketing the call.
			wantDuration := time.Duration(tt.days) * 24 * time.Hour
			assert.Equal(t, wantDuration, updated.EndDate.Sub(updated.StartDate))
			assert.Equal(t, endDate.Unix(), updated.EndDate.Unix())
			assert.False(t, updated.StartDate.Before(before.Truncate(time.Second)))
			assert.False(t, updated.StartDate.After(after))
		})
	}
}

func TestRecordPaymentUnknownMember(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db)

	_, _, err := svc.RecordPayment(999, models.PlanMonthly, 500, "Front Desk")
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestRecordPaymentInvalidPlanLeavesStoresUnchanged(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db)

	endDate := time.Now().UTC().Add(10 * 24 * time.Hour)
	member := createTestMember(t, db, endDate)

	_, _, err := svc.RecordPayment(member.ID, "Lifetime", 500, "Front Desk")
	assert.ErrorIs(t, err, ErrInvalidPlan)

	var paymentCount int64
	db.Model(&models.Payment{}).Count(&paymentCount)
	assert.Equal(t, int64(0), paymentCount)

	var unchanged models.Member
	assert.NoError(t, db.First(&unchanged, member.ID).Error)
	assert.Equal(t, endDate.Unix(), unchanged.EndDate.Unix())
	assert.Equal(t, member.MembershipType, unchanged.MembershipType)
}

func TestPaymentListFiltersAndOrders(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db)

	first := createTestMember(t, db, time.Now().UTC().Add(30*24*time.Hour))
	second := createTestMember(t, db, time.Now().UTC().Add(30*24*time.Hour))

	base := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	db.Create(&models.Payment{MemberID: first.ID, Amount: 100, PaymentDate: base})
	db.Create(&models.Payment{MemberID: first.ID, Amount: 200, PaymentDate: base.Add(48 * time.Hour)})
	db.Create(&models.Payment{MemberID: second.ID, Amount: 300, PaymentDate: base.Add(24 * time.Hour)})

	entries, err := svc.List(first.ID)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, 200.0, entries[0].Payment.Amount)
	assert.Equal(t, 100.0, entries[1].Payment.Amount)
	assert.NotNil(t, entries[0].Member)

	all, err := svc.List(0)
	assert.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestPaymentListCapsAtOneHundred(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPaymentService(db)

	member := createTestMember(t, db, time.Now().UTC().Add(30*24*time.Hour))

	base := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 105; i++ {
		db.Create(&models.Payment{
			MemberID:    member.ID,
			Amount:      float64(i),
			PaymentDate: base.Add(time.Duration(i) * time.Hour),
		})
	}

	entries, err := svc.List(member.ID)
	assert.NoError(t, err)
	assert.Len(t, entries, 100)
}
