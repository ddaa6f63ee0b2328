package services

import (
	"errors"
	"time"

	"gymtrack-backend/internal/models"
)

// ExpiringSoonWindow is how close to the end date a membership is reported
// as "Expiring Soon". The boundary is inclusive: exactly three days out is
// already Expiring Soon.
const ExpiringSoonWindow = 3 * 24 * time.Hour

var ErrInvalidPlan = errors.New("invalid membership plan")

// planDurations maps a membership plan name to the validity it buys.
var planDurations = map[string]time.Duration{
	models.PlanMonthly:   30 * 24 * time.Hour,
	models.PlanQuarterly: 90 * 24 * time.Hour,
	models.PlanAnnual:    365 * 24 * time.Hour,
}

// StatusAt classifies a membership end date against the given instant.
// It is a pure function; both arguments are expected in UTC.
func StatusAt(endDate, now time.Time) string {
	if endDate.Before(now) {
		return models.StatusExpired
	}
	if endDate.Sub(now) <= ExpiringSoonWindow {
		return models.StatusExpiringSoon
	}
	return models.StatusActive
}

// DeriveStatus recomputes the member's status from its end date at UTC now.
// It does not persist anything; callers decide when to refresh the stored
// status cache.
func DeriveStatus(m *models.Member) string {
	return StatusAt(m.EndDate, time.Now().UTC())
}

// PlanDuration resolves a plan name to its validity duration. The second
// return value is false for unknown plans.
func PlanDuration(plan string) (time.Duration, bool) {
	d, ok := planDurations[plan]
	return d, ok
}
