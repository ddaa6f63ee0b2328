package services

import (
	"testing"
	"time"

	"gymtrack-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestMemberListRefreshesStatusCache(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMemberService(db)

	// Stored status is stale: the window expired but the cache still says
	// Active.
	expired := createTestMember(t, db, time.Now().UTC().Add(-time.Hour))
	expiring := createTestMember(t, db, time.Now().UTC().Add(24*time.Hour))
	active := createTestMember(t, db, time.Now().UTC().Add(60*24*time.Hour))

	memberList, err := svc.List()
	assert.NoError(t, err)
	assert.Len(t, memberList, 3)

	byID := make(map[uint]models.Member, len(memberList))
	for _, m := range memberList {
		byID[m.ID] = m
	}
	assert.Equal(t, models.StatusExpired, byID[expired.ID].Status)
	assert.Equal(t, models.StatusExpiringSoon, byID[expiring.ID].Status)
	assert.Equal(t, models.StatusActive, byID[active.ID].Status)

	// The corrected status must be persisted, not just returned.
	var stored models.Member
	assert.NoError(t, db.First(&stored, expired.ID).Error)
	assert.Equal(t, models.StatusExpired, stored.Status)
}

func TestMemberGetRefreshesStatusCache(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMemberService(db)

	member := createTestMember(t, db, time.Now().UTC().Add(-time.Hour))

	got, err := svc.Get(member.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusExpired, got.Status)

	var stored models.Member
	assert.NoError(t, db.First(&stored, member.ID).Error)
	assert.Equal(t, models.StatusExpired, stored.Status)
}

func TestMemberGetNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMemberService(db)

	_, err := svc.Get(999)
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestMemberUpdatePartialFields(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMemberService(db)

	member := createTestMember(t, db, time.Now().UTC().Add(30*24*time.Hour))

	updated, err := svc.Update(member.ID, map[string]interface{}{
		"name":    "Renamed",
		"contact": "0987654321",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "0987654321", updated.Contact)

	// Untouched fields survive.
	var stored models.Member
	assert.NoError(t, db.First(&stored, member.ID).Error)
	assert.Equal(t, member.MembershipType, stored.MembershipType)
	assert.Equal(t, member.EndDate.Unix(), stored.EndDate.Unix())
}

func TestMemberUpdateNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMemberService(db)

	_, err := svc.Update(999, map[string]interface{}{"name": "Ghost"})
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestMemberDelete(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMemberService(db)

	member := createTestMember(t, db, time.Now().UTC().Add(30*24*time.Hour))

	assert.NoError(t, svc.Delete(member.ID))
	assert.ErrorIs(t, svc.Delete(member.ID), ErrMemberNotFound)
}

func TestMemberCreateDefaultsStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMemberService(db)

	member := &models.Member{
		Name:      "New Member",
		Contact:   "0911222333",
		StartDate: time.Now().UTC(),
		EndDate:   time.Now().UTC().Add(30 * 24 * time.Hour),
	}
	assert.NoError(t, svc.Create(member))
	assert.Equal(t, models.StatusActive, member.Status)
}
